package graph

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/hapycolor/colorreducer/pkg/api"
)

func scalars(values ...int) []api.Color {
	colors := make([]api.Color, 0, len(values))
	for i, v := range values {
		colors = append(colors, api.Color{ID: api.ColorID(i), Scalar: v})
	}
	return colors
}

func ids(values ...int) []api.ColorID {
	r := []api.ColorID{}
	for _, v := range values {
		r = append(r, api.ColorID(v))
	}
	return r
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		values    []int
		threshold float64
		edges     [][2]api.ColorID
	}{
		{name: "no colours",
			threshold: 50,
		},
		{name: "neighbours below the threshold form a path",
			values:    []int{0, 30, 70, 100, 140},
			threshold: 50,
			edges:     [][2]api.ColorID{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
		},
		{name: "threshold is exclusive",
			values:    []int{0, 50, 100},
			threshold: 50,
		},
		{name: "chain",
			values:    []int{0, 2, 4, 6},
			threshold: 3,
			edges:     [][2]api.ColorID{{0, 1}, {1, 2}, {2, 3}},
		},
		{name: "identical values clash",
			values:    []int{7, 7},
			threshold: 1,
			edges:     [][2]api.ColorID{{0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			graph := Build(scalars(tt.values...), tt.threshold, Absolute)
			g.Expect(graph.Len()).To(Equal(len(tt.values)))
			g.Expect(graph.Edges()).To(Equal(tt.edges))
			g.Expect(graph.HasAnyEdge()).To(Equal(len(tt.edges) > 0))
		})
	}
}

func TestBuildIsSymmetric(t *testing.T) {
	g := NewGomegaWithT(t)
	graph := Build(scalars(1, 2, 3, 6, 7, 8), 3, Absolute)

	for _, u := range graph.Nodes() {
		for _, v := range graph.Neighbours(u) {
			g.Expect(graph.Neighbours(v)).To(ContainElement(u))
			g.Expect(v).ToNot(Equal(u))
		}
	}
	g.Expect(graph.Neighbours(0)).To(Equal(ids(1, 2)))
	g.Expect(graph.Neighbours(4)).To(Equal(ids(3, 5)))
}

func TestAddEdge(t *testing.T) {
	g := NewGomegaWithT(t)
	graph := New(0, 1, 2)

	g.Expect(graph.AddEdge(2, 0)).To(Succeed())
	g.Expect(graph.AddEdge(0, 2)).To(Succeed())
	g.Expect(graph.AddEdge(1, 1)).ToNot(Succeed())
	g.Expect(graph.EdgeCount()).To(Equal(1))
	g.Expect(graph.Adjacent(0, 2)).To(BeTrue())
	g.Expect(graph.Adjacent(0, 1)).To(BeFalse())
	g.Expect(graph.Conflicted()).To(Equal(ids(0, 2)))

	g.Expect(graph.AddEdge(5, 1)).To(Succeed())
	g.Expect(graph.Nodes()).To(Equal(ids(0, 1, 2, 5)))
}

func TestDeriveChild(t *testing.T) {
	g := NewGomegaWithT(t)
	parent := Build(scalars(0, 1, 2, 10), 3, Absolute)
	before := parent.String()

	child := parent.DeriveChild(1)
	g.Expect(parent.String()).To(Equal(before))
	g.Expect(child.Nodes()).To(Equal(ids(0, 2, 3)))
	g.Expect(child.Neighbours(0)).To(Equal(ids(2)))
	g.Expect(child.Neighbours(2)).To(Equal(ids(0)))
	g.Expect(child.Has(1)).To(BeFalse())

	grandchild := child.DeriveChild(0)
	g.Expect(grandchild.HasAnyEdge()).To(BeFalse())
	g.Expect(grandchild.Conflicted()).To(BeEmpty())
	g.Expect(grandchild.Nodes()).To(Equal(ids(2, 3)))
	g.Expect(child.HasAnyEdge()).To(BeTrue())
}

func TestDeriveChildOfUnknownNode(t *testing.T) {
	g := NewGomegaWithT(t)
	parent := Build(scalars(0, 1), 3, Absolute)
	child := parent.DeriveChild(42)
	g.Expect(child.Edges()).To(Equal(parent.Edges()))
}

func TestIsIndependent(t *testing.T) {
	g := NewGomegaWithT(t)
	graph := Build(scalars(0, 30, 70, 100, 140), 50, Absolute)

	g.Expect(graph.IsIndependent(ids(1, 3))).To(BeTrue())
	g.Expect(graph.IsIndependent(ids(0, 1, 2, 3, 4))).To(BeTrue())
	g.Expect(graph.IsIndependent(ids(0, 2))).To(BeFalse())
	g.Expect(graph.IsIndependent(ids(1))).To(BeFalse())
	g.Expect(graph.IsIndependent(nil)).To(BeFalse())
	g.Expect(graph.Without(1, 3).HasAnyEdge()).To(BeFalse())
}

func TestComponents(t *testing.T) {
	g := NewGomegaWithT(t)
	graph := New()
	for _, e := range [][2]api.ColorID{{0, 1}, {1, 3}, {0, 2}, {2, 4}, {4, 5}, {6, 7}} {
		g.Expect(graph.AddEdge(e[0], e[1])).To(Succeed())
	}
	graph.AddNode(8)

	g.Expect(graph.Components()).To(Equal([][]api.ColorID{
		ids(0, 1, 2, 3, 4, 5),
		ids(6, 7),
		ids(8),
	}))

	sub := graph.Subgraph(ids(0, 1, 3, 9))
	g.Expect(sub.Nodes()).To(Equal(ids(0, 1, 3)))
	g.Expect(sub.Edges()).To(Equal([][2]api.ColorID{{0, 1}, {1, 3}}))
}

func TestComponentsOfScalarGroups(t *testing.T) {
	g := NewGomegaWithT(t)
	graph := Build(scalars(0, 1, 2, 3, 6, 7, 8, 11, 12, 13, 14, 16), 3, Absolute)
	comps := graph.Components()

	g.Expect(comps).To(HaveLen(3))
	g.Expect(comps[0]).To(Equal(ids(0, 1, 2, 3)))
	g.Expect(comps[1]).To(Equal(ids(4, 5, 6)))
	g.Expect(comps[2]).To(Equal(ids(7, 8, 9, 10, 11)))
}

func TestSignature(t *testing.T) {
	g := NewGomegaWithT(t)
	a := Build(scalars(0, 30, 70, 100, 140), 50, Absolute)
	b := Build(scalars(5, 35, 75, 105, 145), 50, Absolute)
	c := Build(scalars(0, 30, 70, 100), 50, Absolute)
	d := Build(scalars(0, 30, 70, 140, 100), 50, Absolute)

	g.Expect(a.Signature()).To(Equal(b.Signature()))
	g.Expect(a.Signature()).ToNot(Equal(c.Signature()))
	g.Expect(a.Signature()).ToNot(Equal(d.Signature()))
	g.Expect(a.Signature()).To(HaveLen(64))
}
