package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/chazu/mobius/pkg/kernel"
	"github.com/chazu/mobius/pkg/surface"
	"github.com/chazu/mobius/pkg/tessellate"
)

// Palette is the default set of colors assigned to strips in order.
var Palette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// ColorFor returns the palette color for the i-th strip.
func ColorFor(i int) string {
	return Palette[i%len(Palette)]
}

// MeshData is the JSON-serializable mesh format sent to viewers.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// NewMeshData pairs a triangle mesh with a display color.
func NewMeshData(m *kernel.Mesh, color string) MeshData {
	return MeshData{
		Vertices: m.Vertices,
		Normals:  m.Normals,
		Indices:  m.Indices,
		PartName: m.PartName,
		Color:    color,
	}
}

// JSON writes the tessellated surface as one MeshData document.
type JSON struct {
	W    io.Writer
	Name string
}

// Render encodes m to j.W.
func (j *JSON) Render(m *surface.Mesh) error {
	if m == nil {
		return ErrNilMesh
	}
	data := NewMeshData(tessellate.Tessellate(m, j.Name), ColorFor(0))
	if err := json.NewEncoder(j.W).Encode(data); err != nil {
		return fmt.Errorf("render: encode json: %w", err)
	}
	return nil
}

// JSONFile writes the MeshData document to a file.
type JSONFile struct {
	Path string
	Name string
}

// Render creates j.Path and encodes m into it.
func (j *JSONFile) Render(m *surface.Mesh) (err error) {
	f, err := os.Create(j.Path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: close %s: %w", j.Path, cerr)
		}
	}()
	return (&JSON{W: f, Name: j.Name}).Render(m)
}
