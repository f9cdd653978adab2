package render

import (
	"fmt"
	"io"

	"github.com/chazu/mobius/pkg/surface"
	"github.com/chazu/mobius/pkg/tessellate"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultTermHeight = 10
	defaultTermWidth  = 60
)

// Term draws the height of the last grid row (the v = w/2 edge) against u
// as an ASCII chart. Useful over SSH where no window can open.
type Term struct {
	W      io.Writer
	Height int
	Width  int
}

// Render writes a one-line summary (grid size and bounding box) and the
// chart to t.W.
func (t *Term) Render(m *surface.Mesh) error {
	if m == nil {
		return ErrNilMesh
	}
	rows, cols := m.Dims()
	edge := mat.Row(nil, rows-1, m.Z)

	h, w := t.Height, t.Width
	if h <= 0 {
		h = defaultTermHeight
	}
	if w <= 0 {
		w = defaultTermWidth
	}
	chart := asciigraph.Plot(edge,
		asciigraph.Height(h),
		asciigraph.Width(w),
		asciigraph.Caption("edge height z(u)"),
	)
	low, high := tessellate.Tessellate(m, "mobius").Bounds()
	summary := fmt.Sprintf("mesh %dx%d, bounds (%.3g, %.3g, %.3g) to (%.3g, %.3g, %.3g)",
		rows, cols, low[0], low[1], low[2], high[0], high[1], high[2])
	if _, err := fmt.Fprintf(t.W, "%s\n%s\n", summary, chart); err != nil {
		return fmt.Errorf("render: write chart: %w", err)
	}
	return nil
}
