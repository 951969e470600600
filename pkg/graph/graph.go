package graph

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Graph is a conflict graph. Every node owns an ascending, duplicate free
// list of the nodes it clashes with. Edges are always stored in both lists.
type Graph struct {
	nodes []api.ColorID
	lists map[api.ColorID][]api.ColorID
}

func New(ids ...api.ColorID) *Graph {
	g := &Graph{
		lists: map[api.ColorID][]api.ColorID{},
	}
	for _, id := range ids {
		g.AddNode(id)
	}
	return g
}

// Build connects every unordered pair of distinct colours whose distance is
// below threshold.
func Build(colors []api.Color, threshold float64, dist Distance) *Graph {
	g := New()
	for _, c := range colors {
		g.AddNode(c.ID)
	}
	for i := range colors {
		for j := i + 1; j < len(colors); j++ {
			if colors[i].ID == colors[j].ID {
				continue
			}
			if d := dist(colors[i], colors[j]); d < threshold {
				logrus.Debugf("%v clashes with %v (distance %v)", colors[i], colors[j], d)
				// IDs are distinct here, so AddEdge can't fail
				_ = g.AddEdge(colors[i].ID, colors[j].ID)
			}
		}
	}
	return g
}

func (g *Graph) AddNode(id api.ColorID) {
	if _, exists := g.lists[id]; exists {
		return
	}
	g.lists[id] = []api.ColorID{}
	i, _ := slices.BinarySearch(g.nodes, id)
	g.nodes = slices.Insert(g.nodes, i, id)
}

// AddEdge records a mutual conflict between u and v, adding the nodes if
// needed. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(u, v api.ColorID) error {
	if u == v {
		return fmt.Errorf("colour %d can't conflict with itself", u)
	}
	g.AddNode(u)
	g.AddNode(v)
	g.lists[u] = insertSorted(g.lists[u], v)
	g.lists[v] = insertSorted(g.lists[v], u)
	return nil
}

func insertSorted(list []api.ColorID, id api.ColorID) []api.ColorID {
	i, found := slices.BinarySearch(list, id)
	if found {
		return list
	}
	return slices.Insert(list, i, id)
}

// Nodes returns all remaining nodes in ascending order, isolated ones included.
func (g *Graph) Nodes() []api.ColorID {
	return slices.Clone(g.nodes)
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) Has(id api.ColorID) bool {
	_, exists := g.lists[id]
	return exists
}

func (g *Graph) Neighbours(id api.ColorID) []api.ColorID {
	return g.lists[id]
}

func (g *Graph) Degree(id api.ColorID) int {
	return len(g.lists[id])
}

func (g *Graph) Adjacent(u, v api.ColorID) bool {
	_, found := slices.BinarySearch(g.lists[u], v)
	return found
}

// HasAnyEdge reports whether some node still has a neighbour.
func (g *Graph) HasAnyEdge() bool {
	for _, id := range g.nodes {
		if len(g.lists[id]) > 0 {
			return true
		}
	}
	return false
}

// Conflicted returns, in ascending order, the nodes with at least one neighbour.
// Only these are worth removing.
func (g *Graph) Conflicted() []api.ColorID {
	var conflicted []api.ColorID
	for _, id := range g.nodes {
		if len(g.lists[id]) > 0 {
			conflicted = append(conflicted, id)
		}
	}
	return conflicted
}

func (g *Graph) EdgeCount() int {
	n := 0
	for _, id := range g.nodes {
		n += len(g.lists[id])
	}
	return n / 2
}

// Edges lists every edge once as (u, v) with u < v, ordered by u then v.
func (g *Graph) Edges() [][2]api.ColorID {
	var edges [][2]api.ColorID
	for _, u := range g.nodes {
		for _, v := range g.lists[u] {
			if u < v {
				edges = append(edges, [2]api.ColorID{u, v})
			}
		}
	}
	return edges
}

// DeriveChild returns a copy of the graph without removed and its edges.
// The receiver is left untouched.
func (g *Graph) DeriveChild(removed api.ColorID) *Graph {
	child := &Graph{
		nodes: make([]api.ColorID, 0, len(g.nodes)),
		lists: make(map[api.ColorID][]api.ColorID, len(g.lists)),
	}
	for _, id := range g.nodes {
		if id == removed {
			continue
		}
		child.nodes = append(child.nodes, id)
		list := g.lists[id]
		if i, found := slices.BinarySearch(list, removed); found {
			trimmed := make([]api.ColorID, 0, len(list)-1)
			trimmed = append(trimmed, list[:i]...)
			list = append(trimmed, list[i+1:]...)
		}
		// lists are never mutated in place, so unchanged ones can be shared
		child.lists[id] = list
	}
	return child
}

// Without removes all given nodes, one after the other.
func (g *Graph) Without(removed ...api.ColorID) *Graph {
	current := g
	for _, id := range removed {
		current = current.DeriveChild(id)
	}
	return current
}

// IsIndependent reports whether removing the given nodes leaves no edge behind.
func (g *Graph) IsIndependent(removed []api.ColorID) bool {
	gone := map[api.ColorID]struct{}{}
	for _, id := range removed {
		gone[id] = struct{}{}
	}
	for _, u := range g.nodes {
		if _, exists := gone[u]; exists {
			continue
		}
		for _, v := range g.lists[u] {
			if _, exists := gone[v]; !exists {
				return false
			}
		}
	}
	return true
}

// Signature is a stable digest of the graph shape: the ascending node list
// followed by every edge. Two graphs with the same signature have the same
// minimum removal sets.
func (g *Graph) Signature() string {
	h := sha256.New()
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(len(g.nodes)))
	h.Write(buf)
	for _, id := range g.nodes {
		binary.BigEndian.PutUint32(buf, uint32(id))
		h.Write(buf)
	}
	for _, e := range g.Edges() {
		binary.BigEndian.PutUint32(buf, uint32(e[0]))
		h.Write(buf)
		binary.BigEndian.PutUint32(buf, uint32(e[1]))
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (g *Graph) String() string {
	b := strings.Builder{}
	for _, id := range g.nodes {
		fmt.Fprintf(&b, "%d :", id)
		for _, n := range g.lists[id] {
			fmt.Fprintf(&b, " %d", n)
		}
		b.WriteString("\n")
	}
	return b.String()
}
