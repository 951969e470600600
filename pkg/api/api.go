package api

import (
	"fmt"
	"strings"
)

// ColorID identifies a colour within a single reduction. IDs are assigned
// sequentially from 0 in input order.
type ColorID uint32

// Triple is a perceptual L*a*b*-like value made of small integers.
type Triple struct {
	L uint8
	A int8
	B int8
}

func (t Triple) String() string {
	return fmt.Sprintf("%d,%d,%d", t.L, t.A, t.B)
}

type Color struct {
	ID     ColorID
	Scalar int
	Triple Triple
}

func (c Color) String() string {
	return fmt.Sprintf("#%d(%s)", c.ID, c.Triple)
}

// RemovalSet lists the colours to drop, in the order they were chosen.
type RemovalSet []ColorID

func (r RemovalSet) Contains(id ColorID) bool {
	for _, x := range r {
		if x == id {
			return true
		}
	}
	return false
}

func (r RemovalSet) String() string {
	parts := make([]string, 0, len(r))
	for _, id := range r {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Result is what a Strategy reports back. Visited and Pruned count search
// states and are zero for strategies which do not walk a search tree.
type Result struct {
	Removed RemovalSet
	Visited int
	Pruned  int
}
