package surface

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid holds the sampled parameter values. U sweeps the center circle over
// [0, 2π]; V offsets across the strip over [-w/2, w/2].
type Grid struct {
	U []float64
	V []float64
}

// NewGrid spaces n samples evenly over each parameter range, both ends
// included. n must be at least MinResolution.
func NewGrid(w float64, n int) Grid {
	return Grid{
		U: span(0, 2*math.Pi, n),
		V: span(-w/2, w/2, n),
	}
}

// span pins the last sample to hi so the rounding of the step never moves
// the far end of the range.
func span(lo, hi float64, n int) []float64 {
	s := floats.Span(make([]float64, n), lo, hi)
	s[n-1] = hi
	return s
}

// Len returns the number of samples per axis.
func (g Grid) Len() int {
	return len(g.U)
}

func (g Grid) clone() Grid {
	return Grid{
		U: append([]float64(nil), g.U...),
		V: append([]float64(nil), g.V...),
	}
}
