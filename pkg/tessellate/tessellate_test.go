package tessellate_test

import (
	"math"
	"testing"

	"github.com/chazu/mobius/pkg/surface"
	"github.com/chazu/mobius/pkg/tessellate"
)

// newStrip samples a strip for testing.
func newStrip(t *testing.T, p surface.Params) *surface.Approximator {
	t.Helper()
	a, err := surface.New(p)
	if err != nil {
		t.Fatalf("surface.New(%+v) error = %v", p, err)
	}
	return a
}

func TestTessellateCounts(t *testing.T) {
	for _, n := range []int{2, 3, 10, 25} {
		a := newStrip(t, surface.Params{R: 1, W: 0.3, N: n})
		mesh := tessellate.Tessellate(a.Mesh(), "strip")

		if got := mesh.VertexCount(); got != n*n {
			t.Errorf("n=%d: VertexCount() = %d, want %d", n, got, n*n)
		}
		if got := mesh.TriangleCount(); got != 2*(n-1)*(n-1) {
			t.Errorf("n=%d: TriangleCount() = %d, want %d", n, got, 2*(n-1)*(n-1))
		}
		if len(mesh.Normals) != len(mesh.Vertices) {
			t.Errorf("n=%d: normals length %d != vertices length %d", n, len(mesh.Normals), len(mesh.Vertices))
		}
		if mesh.PartName != "strip" {
			t.Errorf("n=%d: PartName = %q, want strip", n, mesh.PartName)
		}
	}
}

func TestTessellateIndicesInRange(t *testing.T) {
	a := newStrip(t, surface.Params{R: 2, W: 0.5, N: 9})
	mesh := tessellate.Tessellate(a.Mesh(), "s")
	for k, idx := range mesh.Indices {
		if int(idx) >= mesh.VertexCount() {
			t.Fatalf("index %d = %d out of range (%d vertices)", k, idx, mesh.VertexCount())
		}
	}
}

func TestTessellateVerticesMatchGrid(t *testing.T) {
	a := newStrip(t, surface.Params{R: 1.5, W: 0.6, N: 6})
	m := a.Mesh()
	mesh := tessellate.Tessellate(m, "s")
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			p := m.At(i, j)
			v := mesh.Vertex(i*6 + j)
			if math.Abs(v[0]-p.X) > 1e-6 || math.Abs(v[1]-p.Y) > 1e-6 || math.Abs(v[2]-p.Z) > 1e-6 {
				t.Fatalf("vertex (%d,%d) = %v, want %v", i, j, v, p)
			}
		}
	}
}

func TestTessellateFirstTriangleMatchesAreaEstimate(t *testing.T) {
	a := newStrip(t, surface.Params{R: 1, W: 1, N: 3})
	mesh := tessellate.Tessellate(a.Mesh(), "s")

	// Every even triangle is the one SurfaceArea counts.
	var area float64
	for k := 0; k < mesh.TriangleCount(); k += 2 {
		tri := mesh.Triangle(k)
		area += triangleArea(tri)
	}
	if want := a.SurfaceArea(); math.Abs(area-want) > 1e-5 {
		t.Errorf("sum of counted triangles = %v, want %v", area, want)
	}
}

func TestTessellateNormalsUnitOrZero(t *testing.T) {
	for _, w := range []float64{0, 0.4} {
		a := newStrip(t, surface.Params{R: 1, W: w, N: 8})
		mesh := tessellate.Tessellate(a.Mesh(), "s")
		for k := 0; k < mesh.VertexCount(); k++ {
			n := mesh.Normals[3*k : 3*k+3]
			l := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
			if math.IsNaN(l) {
				t.Fatalf("w=%v: normal %d is NaN", w, k)
			}
			if w == 0 && l != 0 {
				t.Fatalf("w=0: normal %d has length %v, want 0 on a collapsed strip", k, l)
			}
			if w > 0 && math.Abs(l-1) > 1e-5 {
				t.Fatalf("w=%v: normal %d has length %v, want 1", w, k, l)
			}
		}
	}
}

func TestTessellateNil(t *testing.T) {
	mesh := tessellate.Tessellate(nil, "none")
	if !mesh.IsEmpty() {
		t.Error("Tessellate(nil) should return an empty mesh")
	}
	if mesh.PartName != "none" {
		t.Errorf("PartName = %q, want none", mesh.PartName)
	}
}

func TestTessellateAllKeepsOrder(t *testing.T) {
	strips := []tessellate.Strip{
		{Name: "first", Mesh: newStrip(t, surface.Params{R: 1, W: 0.1, N: 4}).Mesh()},
		{Name: "second", Mesh: newStrip(t, surface.Params{R: 2, W: 0.2, N: 5}).Mesh()},
	}
	meshes := tessellate.TessellateAll(strips)
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if meshes[0].PartName != "first" || meshes[1].PartName != "second" {
		t.Errorf("part names = %q, %q, want first, second", meshes[0].PartName, meshes[1].PartName)
	}
	if meshes[1].VertexCount() != 25 {
		t.Errorf("second mesh VertexCount() = %d, want 25", meshes[1].VertexCount())
	}
}

func triangleArea(tri [3][3]float64) float64 {
	var e1, e2 [3]float64
	for k := 0; k < 3; k++ {
		e1[k] = tri[1][k] - tri[0][k]
		e2[k] = tri[2][k] - tri[0][k]
	}
	cx := e1[1]*e2[2] - e1[2]*e2[1]
	cy := e1[2]*e2[0] - e1[0]*e2[2]
	cz := e1[0]*e2[1] - e1[1]*e2[0]
	return 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
}
