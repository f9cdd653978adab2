package surface

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// AreaMethod selects how each grid quad is turned into triangles when
// estimating surface area.
type AreaMethod int

const (
	// AreaLowerTriangle counts only the triangle (i,j), (i+1,j), (i,j+1)
	// of each quad. It underestimates area, more so on coarse grids, and
	// is the default for compatibility with earlier results.
	AreaLowerTriangle AreaMethod = iota

	// AreaSplitAverage counts the whole quad, averaging the two ways of
	// splitting it along a diagonal.
	AreaSplitAverage
)

func (m AreaMethod) String() string {
	switch m {
	case AreaLowerTriangle:
		return "lower"
	case AreaSplitAverage:
		return "average"
	}
	return fmt.Sprintf("AreaMethod(%d)", int(m))
}

// ParseAreaMethod maps "lower" or "average" to an AreaMethod.
func ParseAreaMethod(s string) (AreaMethod, error) {
	switch s {
	case "lower", "":
		return AreaLowerTriangle, nil
	case "average":
		return AreaSplitAverage, nil
	}
	return 0, fmt.Errorf("surface: unknown area method %q, expected lower or average", s)
}

// Option configures an Approximator.
type Option func(*Approximator)

// WithAreaMethod sets the quad triangulation used by SurfaceArea.
func WithAreaMethod(m AreaMethod) Option {
	return func(a *Approximator) {
		a.method = m
	}
}

// Approximator holds a strip's parameter grid and sampled mesh. Both are
// computed by New and never change, so every method is a pure function of
// the construction parameters and is safe for concurrent use.
type Approximator struct {
	params Params
	method AreaMethod
	grid   Grid
	mesh   *Mesh
}

// New validates p and samples the strip.
func New(p Params, opts ...Option) (*Approximator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	a := &Approximator{params: p}
	for _, opt := range opts {
		opt(a)
	}
	if a.method != AreaLowerTriangle && a.method != AreaSplitAverage {
		return nil, fmt.Errorf("surface: unsupported area method %v", a.method)
	}
	a.grid = NewGrid(p.W, p.N)
	a.mesh = GenerateSurface(p.R, a.grid)
	return a, nil
}

// Params returns the construction parameters.
func (a *Approximator) Params() Params {
	return a.params
}

// AreaMethod returns the triangulation used by SurfaceArea.
func (a *Approximator) AreaMethod() AreaMethod {
	return a.method
}

// Grid returns a copy of the parameter grid.
func (a *Approximator) Grid() Grid {
	return a.grid.clone()
}

// Mesh returns a copy of the sampled surface.
func (a *Approximator) Mesh() *Mesh {
	return a.mesh.Clone()
}

// SurfaceArea sums triangle areas over all (n-1)² grid quads.
func (a *Approximator) SurfaceArea() float64 {
	n := a.params.N
	m := a.mesh
	var area float64
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			p00 := m.At(i, j)
			p10 := m.At(i+1, j)
			p01 := m.At(i, j+1)
			if a.method == AreaLowerTriangle {
				area += triangleArea(p00, p10, p01)
				continue
			}
			p11 := m.At(i+1, j+1)
			split := triangleArea(p00, p10, p01) + triangleArea(p11, p01, p10)
			other := triangleArea(p00, p10, p11) + triangleArea(p00, p11, p01)
			area += (split + other) / 2
		}
	}
	return area
}

// Boundary samples the edge curve v = w/2 at every u of the grid.
func (a *Approximator) Boundary() []r3.Vec {
	v := a.params.W / 2
	pts := make([]r3.Vec, len(a.grid.U))
	for j, u := range a.grid.U {
		pts[j] = Point(a.params.R, u, v)
	}
	return pts
}

// EdgeLength sums the n-1 segment lengths of the Boundary polyline. Only
// the v = w/2 edge is sampled.
func (a *Approximator) EdgeLength() float64 {
	pts := a.Boundary()
	segs := make([]float64, len(pts)-1)
	for k := range segs {
		segs[k] = r3.Norm(r3.Sub(pts[k+1], pts[k]))
	}
	return floats.Sum(segs)
}

// SeamGap returns the largest distance between a sample in the first
// column at v and the last-column sample at -v. The grid is never glued at
// the half twist; this only measures how closely the ends meet.
func (a *Approximator) SeamGap() float64 {
	n := a.params.N
	var gap float64
	for i := 0; i < n; i++ {
		d := r3.Norm(r3.Sub(a.mesh.At(i, 0), a.mesh.At(n-1-i, n-1)))
		gap = math.Max(gap, d)
	}
	return gap
}

// triangleArea is half the norm of the cross product of the two edges
// leaving a.
func triangleArea(a, b, c r3.Vec) float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}
