// Package tessellate turns a sampled surface grid into an indexed
// triangle mesh. Every grid quad becomes two triangles; vertices are
// shared between neighbouring quads.
package tessellate

import (
	"github.com/chazu/mobius/pkg/kernel"
	"github.com/chazu/mobius/pkg/surface"
	"gonum.org/v1/gonum/spatial/r3"
)

// Strip pairs a sampled surface with the name it is shown under.
type Strip struct {
	Name string
	Mesh *surface.Mesh
}

// Tessellate converts one surface grid into a triangle mesh. The grid is
// left open at the seam, matching the sampled surface. Vertex normals are
// the normalized sum of adjacent face normals; a vertex whose faces are
// all degenerate gets a zero normal.
func Tessellate(m *surface.Mesh, name string) *kernel.Mesh {
	if m == nil {
		return &kernel.Mesh{PartName: name}
	}
	rows, cols := m.Dims()
	index := func(i, j int) uint32 { return uint32(i*cols + j) }

	points := make([]r3.Vec, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			points = append(points, m.At(i, j))
		}
	}

	indices := make([]uint32, 0, 6*(rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			// Split along the (i+1,j)-(i,j+1) diagonal so the first
			// triangle is the one the area estimate counts.
			indices = append(indices,
				index(i, j), index(i+1, j), index(i, j+1),
				index(i+1, j+1), index(i, j+1), index(i+1, j),
			)
		}
	}

	normals := vertexNormals(points, indices)

	out := &kernel.Mesh{
		Vertices: make([]float32, 0, 3*len(points)),
		Normals:  make([]float32, 0, 3*len(points)),
		Indices:  indices,
		PartName: name,
	}
	for k, p := range points {
		n := normals[k]
		out.Vertices = append(out.Vertices, float32(p.X), float32(p.Y), float32(p.Z))
		out.Normals = append(out.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	return out
}

// TessellateAll converts several strips, one mesh per strip, in order.
func TessellateAll(strips []Strip) []*kernel.Mesh {
	meshes := make([]*kernel.Mesh, 0, len(strips))
	for _, s := range strips {
		meshes = append(meshes, Tessellate(s.Mesh, s.Name))
	}
	return meshes
}

// vertexNormals accumulates area-weighted face normals per vertex.
func vertexNormals(points []r3.Vec, indices []uint32) []r3.Vec {
	acc := make([]r3.Vec, len(points))
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		face := r3.Cross(r3.Sub(points[b], points[a]), r3.Sub(points[c], points[a]))
		acc[a] = r3.Add(acc[a], face)
		acc[b] = r3.Add(acc[b], face)
		acc[c] = r3.Add(acc[c], face)
	}
	for k, n := range acc {
		if l := r3.Norm(n); l > 0 {
			acc[k] = r3.Scale(1/l, n)
		}
	}
	return acc
}
