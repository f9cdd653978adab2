package surface

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point evaluates the Möbius parametrization at (u, v) for center-line
// radius r. The cross-section turns half a revolution as u goes 0 to 2π.
func Point(r, u, v float64) r3.Vec {
	radial := r + v*math.Cos(u/2)
	return r3.Vec{
		X: radial * math.Cos(u),
		Y: radial * math.Sin(u),
		Z: v * math.Sin(u/2),
	}
}

// Mesh stores the sampled surface as three n×n coordinate matrices.
// Row i follows Grid.V[i], column j follows Grid.U[j].
type Mesh struct {
	X, Y, Z *mat.Dense
}

// GenerateSurface evaluates Point over every (u, v) pair of g.
func GenerateSurface(r float64, g Grid) *Mesh {
	rows, cols := len(g.V), len(g.U)
	m := &Mesh{
		X: mat.NewDense(rows, cols, nil),
		Y: mat.NewDense(rows, cols, nil),
		Z: mat.NewDense(rows, cols, nil),
	}
	for i, v := range g.V {
		for j, u := range g.U {
			p := Point(r, u, v)
			m.X.Set(i, j, p.X)
			m.Y.Set(i, j, p.Y)
			m.Z.Set(i, j, p.Z)
		}
	}
	return m
}

// Dims returns the shape shared by X, Y and Z.
func (m *Mesh) Dims() (rows, cols int) {
	return m.X.Dims()
}

// At returns the 3D sample at row i, column j.
func (m *Mesh) At(i, j int) r3.Vec {
	return r3.Vec{X: m.X.At(i, j), Y: m.Y.At(i, j), Z: m.Z.At(i, j)}
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		X: mat.DenseCopyOf(m.X),
		Y: mat.DenseCopyOf(m.Y),
		Z: mat.DenseCopyOf(m.Z),
	}
}
