package kernel

import "math"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"` // which strip this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Vertex returns vertex i as float64 coordinates.
func (m *Mesh) Vertex(i int) [3]float64 {
	v := m.Vertices[3*i : 3*i+3]
	return [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Triangle returns the three corners of triangle k.
func (m *Mesh) Triangle(k int) [3][3]float64 {
	idx := m.Indices[3*k : 3*k+3]
	return [3][3]float64{m.Vertex(int(idx[0])), m.Vertex(int(idx[1])), m.Vertex(int(idx[2]))}
}

// Bounds returns the axis-aligned bounding box of all vertices.
// An empty mesh returns zero vectors.
func (m *Mesh) Bounds() (min, max [3]float64) {
	if m.IsEmpty() {
		return min, max
	}
	for k := 0; k < 3; k++ {
		min[k] = math.Inf(1)
		max[k] = math.Inf(-1)
	}
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		for k := 0; k < 3; k++ {
			min[k] = math.Min(min[k], v[k])
			max[k] = math.Max(max[k], v[k])
		}
	}
	return min, max
}
