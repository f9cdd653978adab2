package surface

import (
	"fmt"
	"math"
)

const (
	// MinResolution is the smallest grid resolution that still forms one patch.
	MinResolution = 2

	// MaxResolution bounds the grid at about 100 MB of samples.
	MaxResolution = 2048
)

// Params fully determines a strip and every value derived from it.
type Params struct {
	R float64 // center-line radius
	W float64 // strip width
	N int     // samples per grid axis
}

// Validate reports the first parameter that cannot form a grid.
// A zero width is accepted: the strip collapses onto its center circle.
func (p Params) Validate() error {
	if p.N < MinResolution {
		return &InvalidParameterError{Field: "n", Value: float64(p.N), Reason: "need at least 2 samples per axis"}
	}
	if p.N > MaxResolution {
		return &InvalidParameterError{Field: "n", Value: float64(p.N), Reason: fmt.Sprintf("at most %d samples per axis", MaxResolution)}
	}
	if math.IsNaN(p.R) || math.IsInf(p.R, 0) {
		return &InvalidParameterError{Field: "R", Value: p.R, Reason: "must be finite"}
	}
	if p.R <= 0 {
		return &InvalidParameterError{Field: "R", Value: p.R, Reason: "must be positive"}
	}
	if math.IsNaN(p.W) || math.IsInf(p.W, 0) {
		return &InvalidParameterError{Field: "w", Value: p.W, Reason: "must be finite"}
	}
	if p.W < 0 {
		return &InvalidParameterError{Field: "w", Value: p.W, Reason: "must not be negative"}
	}
	return nil
}
