package render

import (
	"fmt"

	"github.com/chazu/mobius/pkg/kernel"
	"github.com/chazu/mobius/pkg/kernel/sdfx"
	"github.com/chazu/mobius/pkg/surface"
	"github.com/chazu/mobius/pkg/tessellate"
)

// STL tessellates the surface and writes it through an exporter.
type STL struct {
	Path     string
	Exporter kernel.Exporter
}

// NewSTL returns an STL renderer backed by the sdfx exporter.
func NewSTL(path string) *STL {
	return &STL{Path: path, Exporter: sdfx.New()}
}

// Render writes m to s.Path.
func (s *STL) Render(m *surface.Mesh) error {
	if m == nil {
		return ErrNilMesh
	}
	mesh := tessellate.Tessellate(m, "mobius")
	if err := s.Exporter.Export(mesh, s.Path); err != nil {
		return fmt.Errorf("render: %s export: %w", s.Exporter.Format(), err)
	}
	return nil
}
