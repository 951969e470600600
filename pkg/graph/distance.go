package graph

import (
	"fmt"
	"math"

	"github.com/hapycolor/colorreducer/pkg/api"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	DistanceSquaredEuclidean = "squared-euclidean"
	DistanceAbsolute         = "absolute"
	DistanceCIEDE2000        = "ciede2000"
)

// Distance must be deterministic, symmetric and non-negative.
type Distance func(a, b api.Color) float64

// SquaredEuclidean compares the perceptual triples.
func SquaredEuclidean(a, b api.Color) float64 {
	dl := float64(a.Triple.L) - float64(b.Triple.L)
	da := float64(a.Triple.A) - float64(b.Triple.A)
	db := float64(a.Triple.B) - float64(b.Triple.B)
	return dl*dl + da*da + db*db
}

// Absolute compares the scalar values.
func Absolute(a, b api.Color) float64 {
	return math.Abs(float64(a.Scalar) - float64(b.Scalar))
}

// CIEDE2000 reads the triples as L*a*b* coordinates and returns the delta E
// 2000 difference on the usual 0-100 scale.
func CIEDE2000(a, b api.Color) float64 {
	return toLab(a.Triple).DistanceCIEDE2000(toLab(b.Triple)) * 100
}

func toLab(t api.Triple) colorful.Color {
	return colorful.Lab(float64(t.L)/100, float64(t.A)/100, float64(t.B)/100)
}

func DistanceByName(name string) (Distance, error) {
	switch name {
	case DistanceSquaredEuclidean, "":
		return SquaredEuclidean, nil
	case DistanceAbsolute:
		return Absolute, nil
	case DistanceCIEDE2000:
		return CIEDE2000, nil
	default:
		return nil, fmt.Errorf("unknown distance policy %q", name)
	}
}
