package memo

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/graph"
	"github.com/hapycolor/colorreducer/pkg/reducer"
	"github.com/sirupsen/logrus"
)

// Cache stores removal sets by conflict graph signature.
type Cache interface {
	Get(signature string) (api.RemovalSet, bool)
	Add(signature string, removed api.RemovalSet)
}

type LRUCache struct {
	cache *lru.Cache[string, api.RemovalSet]
}

func NewLRU(size int) (*LRUCache, error) {
	cache, err := lru.New[string, api.RemovalSet](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{cache: cache}, nil
}

func (c *LRUCache) Get(signature string) (api.RemovalSet, bool) {
	removed, ok := c.cache.Get(signature)
	if !ok {
		return nil, false
	}
	return append(api.RemovalSet{}, removed...), true
}

func (c *LRUCache) Add(signature string, removed api.RemovalSet) {
	c.cache.Add(signature, append(api.RemovalSet{}, removed...))
}

func (c *LRUCache) Len() int {
	return c.cache.Len()
}

// Strategy answers from the cache when it can and otherwise asks Inner. While
// a signature stays cached, Inner runs at most once for it: concurrent callers
// with the same signature wait for the first one instead of searching again.
type Strategy struct {
	Inner reducer.Strategy
	Cache Cache

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func New(inner reducer.Strategy, cache Cache) *Strategy {
	return &Strategy{
		Inner: inner,
		Cache: cache,
		locks: map[string]*keyLock{},
	}
}

func (s *Strategy) Name() string {
	return s.Inner.Name()
}

func (s *Strategy) MinimumRemoval(ctx context.Context, g *graph.Graph) (api.Result, error) {
	signature := g.Signature()
	if removed, ok := s.Cache.Get(signature); ok {
		logrus.Debugf("memo hit for graph %s", signature)
		return api.Result{Removed: removed}, nil
	}

	unlock := s.lock(signature)
	defer unlock()

	if removed, ok := s.Cache.Get(signature); ok {
		logrus.Debugf("memo hit for graph %s after waiting", signature)
		return api.Result{Removed: removed}, nil
	}
	result, err := s.Inner.MinimumRemoval(ctx, g)
	if err != nil {
		return api.Result{}, err
	}
	s.Cache.Add(signature, result.Removed)
	return result, nil
}

func (s *Strategy) lock(signature string) func() {
	s.mu.Lock()
	l, exists := s.locks[signature]
	if !exists {
		l = &keyLock{}
		s.locks[signature] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, signature)
		}
		s.mu.Unlock()
	}
}
