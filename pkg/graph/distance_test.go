package graph

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/hapycolor/colorreducer/pkg/api"
)

func lab(l uint8, a, b int8) api.Color {
	return api.Color{Triple: api.Triple{L: l, A: a, B: b}}
}

func TestSquaredEuclidean(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(SquaredEuclidean(lab(10, 0, 0), lab(13, 4, 0))).To(Equal(25.0))
	g.Expect(SquaredEuclidean(lab(10, -5, 5), lab(10, 5, -5))).To(Equal(200.0))
	g.Expect(SquaredEuclidean(lab(255, 127, 127), lab(1, -128, -128))).To(Equal(254.0*254 + 255*255 + 255*255))
	g.Expect(SquaredEuclidean(lab(40, 3, 3), lab(40, 3, 3))).To(BeZero())
}

func TestAbsolute(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(Absolute(api.Color{Scalar: 30}, api.Color{Scalar: 0})).To(Equal(30.0))
	g.Expect(Absolute(api.Color{Scalar: 0}, api.Color{Scalar: 30})).To(Equal(30.0))
}

func TestCIEDE2000(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(CIEDE2000(lab(50, 10, 10), lab(50, 10, 10))).To(BeNumerically("~", 0, 1e-9))
	near := CIEDE2000(lab(50, 10, 10), lab(51, 10, 10))
	far := CIEDE2000(lab(50, 10, 10), lab(90, -40, 60))
	g.Expect(near).To(BeNumerically(">", 0))
	g.Expect(near).To(BeNumerically("<", 2))
	g.Expect(far).To(BeNumerically(">", 20))
	g.Expect(CIEDE2000(lab(90, -40, 60), lab(50, 10, 10))).To(BeNumerically("~", far, 1e-9))
}

func TestDistanceByName(t *testing.T) {
	g := NewGomegaWithT(t)

	for _, name := range []string{"", DistanceSquaredEuclidean, DistanceAbsolute, DistanceCIEDE2000} {
		d, err := DistanceByName(name)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(d).ToNot(BeNil())
	}
	_, err := DistanceByName("manhattan")
	g.Expect(err).To(MatchError(ContainSubstring("manhattan")))
}
