package reducer

import (
	"math/bits"
	"math/rand"

	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/hapycolor/colorreducer/pkg/graph"
)

func scalars(values ...int) []api.Color {
	colors := []api.Color{}
	for i, v := range values {
		colors = append(colors, api.Color{ID: api.ColorID(i), Scalar: v})
	}
	return colors
}

func newGraph(n int, edges ...[2]int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddNode(api.ColorID(i))
	}
	for _, e := range edges {
		if err := g.AddEdge(api.ColorID(e[0]), api.ColorID(e[1])); err != nil {
			panic(err)
		}
	}
	return g
}

func completeGraph(n int) *graph.Graph {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return newGraph(n, edges...)
}

func randomGraph(r *rand.Rand, n int, density float64) *graph.Graph {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < density {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return newGraph(n, edges...)
}

// bruteForceMinimum tries every subset of nodes and returns the size of the
// smallest one whose removal leaves no edge.
func bruteForceMinimum(g *graph.Graph) int {
	nodes := g.Nodes()
	best := len(nodes)
	for mask := 0; mask < 1<<len(nodes); mask++ {
		size := bits.OnesCount(uint(mask))
		if size >= best {
			continue
		}
		var removed []api.ColorID
		for i, id := range nodes {
			if mask&(1<<i) != 0 {
				removed = append(removed, id)
			}
		}
		if g.IsIndependent(removed) {
			best = size
		}
	}
	return best
}
