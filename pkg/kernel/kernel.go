// Package kernel defines the triangle mesh handed to exporters and
// viewers, and the Exporter interface that file-format backends (sdfx)
// implement. The abstraction keeps the numeric core free of any
// particular output library.
package kernel

// Exporter writes a triangle mesh to a file.
// Implementations (sdfx) choose the on-disk format.
type Exporter interface {
	// Format names the file format, e.g. "stl".
	Format() string

	// Export writes m to path, replacing any existing file.
	Export(m *Mesh, path string) error
}
