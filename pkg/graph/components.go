package graph

import (
	"github.com/hapycolor/colorreducer/pkg/api"
	"golang.org/x/exp/slices"
)

// Components splits the graph into its connected components. Each component
// is sorted ascending and components are ordered by their smallest member.
// Isolated nodes form singleton components.
func (g *Graph) Components() [][]api.ColorID {
	seen := make(map[api.ColorID]bool, len(g.nodes))
	var comps [][]api.ColorID

	for _, root := range g.nodes {
		if seen[root] {
			continue
		}
		queue := []api.ColorID{root}
		seen[root] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.lists[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}
	return comps
}

// Subgraph returns the graph induced by ids. Unknown ids are ignored.
func (g *Graph) Subgraph(ids []api.ColorID) *Graph {
	keep := make(map[api.ColorID]struct{}, len(ids))
	for _, id := range ids {
		if g.Has(id) {
			keep[id] = struct{}{}
		}
	}
	sub := New()
	for id := range keep {
		sub.AddNode(id)
	}
	for id := range keep {
		var list []api.ColorID
		for _, n := range g.lists[id] {
			if _, exists := keep[n]; exists {
				list = append(list, n)
			}
		}
		if list != nil {
			sub.lists[id] = list
		}
	}
	return sub
}
