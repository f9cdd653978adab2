// Package sdfx implements the kernel.Exporter interface using the
// github.com/deadsy/sdfx CAD library's STL writer.
package sdfx

import (
	"fmt"

	"github.com/chazu/mobius/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Exporter = (*STLExporter)(nil)

// STLExporter writes binary STL files through sdfx.
type STLExporter struct{}

// New returns a new STLExporter.
func New() *STLExporter {
	return &STLExporter{}
}

// Format returns "stl".
func (e *STLExporter) Format() string {
	return "stl"
}

// Export writes every triangle of m to path. Degenerate triangles are
// kept so the file mirrors the mesh one to one.
func (e *STLExporter) Export(m *kernel.Mesh, path string) error {
	if m == nil || m.IsEmpty() {
		return fmt.Errorf("sdfx: refusing to write empty mesh to %s", path)
	}
	if err := render.SaveSTL(path, ToTriangles(m)); err != nil {
		return fmt.Errorf("sdfx: save %s: %w", path, err)
	}
	return nil
}

// ToTriangles converts an indexed kernel mesh into sdfx triangles.
func ToTriangles(m *kernel.Mesh) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for k := 0; k < m.TriangleCount(); k++ {
		corners := m.Triangle(k)
		var tri sdf.Triangle3
		for j, c := range corners {
			tri[j] = v3.Vec{X: c[0], Y: c[1], Z: c[2]}
		}
		tris = append(tris, &tri)
	}
	return tris
}
