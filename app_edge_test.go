package main

import (
	"math"
	"strings"
	"testing"
)

// evalOK evaluates source on a fresh App and fails on any reported error.
func evalOK(t *testing.T, source string) EvalResult {
	t.Helper()
	result := NewApp().Evaluate(source)
	if len(result.Errors) > 0 {
		t.Fatalf("Evaluate(%q): %v", source, result.Errors)
	}
	return result
}

// ---------------------------------------------------------------------------
// 1. Empty editor: empty string -> 0 meshes, 0 errors.
//    (TestE2EEmptySource already exists; this verifies additional invariants.)
// ---------------------------------------------------------------------------

func TestE2EEmptySourceExtended(t *testing.T) {
	result := evalOK(t, "")
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes for empty source, got %d", len(result.Meshes))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected 0 warnings for empty source, got %d", len(result.Warnings))
	}
	// Ensure slices are non-nil (JSON should serialize as [] not null).
	if result.Meshes == nil {
		t.Error("Meshes should be non-nil empty slice, got nil")
	}
	if result.Measures == nil {
		t.Error("Measures should be non-nil empty slice, got nil")
	}
	if result.Errors == nil {
		t.Error("Errors should be non-nil empty slice, got nil")
	}
	if result.Warnings == nil {
		t.Error("Warnings should be non-nil empty slice, got nil")
	}
}

// ---------------------------------------------------------------------------
// 2. Syntax error mid-expression: unmatched parens -> eval error, 0 meshes.
// ---------------------------------------------------------------------------

func TestE2ESyntaxErrorWithLineInfo(t *testing.T) {
	app := NewApp()

	// Put valid code on line 1, broken code on line 2 so line info is meaningful.
	source := "(+ 1 2)\n(strip :radius 1"
	result := app.Evaluate(source)

	if len(result.Errors) == 0 {
		t.Fatal("expected at least one eval error for unmatched parens")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes on syntax error, got %d", len(result.Meshes))
	}

	e := result.Errors[0]
	if e.Message == "" {
		t.Error("syntax error should have a non-empty message")
	}
	t.Logf("syntax error: line=%d, col=%d, message=%q", e.Line, e.Col, e.Message)
}

// ---------------------------------------------------------------------------
// 3. Invalid parameters surface as eval errors naming the field.
// ---------------------------------------------------------------------------

func TestE2EInvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{"resolution too small", `(strip :radius 1 :width 1 :n 1)`, "invalid parameter n"},
		{"zero radius", `(strip :radius 0 :width 1 :n 10)`, "invalid parameter R"},
		{"negative width", `(strip :radius 1 :width -0.5 :n 10)`, "invalid parameter w"},
		{"missing width", `(strip :radius 1 :n 10)`, "missing :width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewApp().Evaluate(tt.source)
			if len(result.Errors) == 0 {
				t.Fatal("expected eval error")
			}
			if !strings.Contains(result.Errors[0].Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", result.Errors[0].Message, tt.wantMsg)
			}
			if len(result.Meshes) != 0 {
				t.Errorf("expected 0 meshes on error, got %d", len(result.Meshes))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// 4. Degenerate strips: zero width still tessellates, area is zero.
// ---------------------------------------------------------------------------

func TestE2EZeroWidthStrip(t *testing.T) {
	result := evalOK(t, `(strip :radius 5 :width 0 :n 50 :name "ring")`)
	if len(result.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(result.Meshes))
	}
	if got := result.Measures[0].SurfaceArea; math.Abs(got) > 1e-9 {
		t.Errorf("zero-width area = %v, want 0", got)
	}
	for i, n := range result.Meshes[0].Normals {
		if n != 0 {
			t.Fatalf("normal component %d = %v, want 0 for a degenerate strip", i, n)
		}
	}
}

func TestE2EMinimalResolution(t *testing.T) {
	result := evalOK(t, `(strip :radius 1 :width 1 :n 2)`)
	m := result.Meshes[0]
	if len(m.Vertices) != 12 || len(m.Indices) != 6 {
		t.Errorf("n=2 mesh has %d vertex floats and %d indices, want 12 and 6", len(m.Vertices), len(m.Indices))
	}
}

// ---------------------------------------------------------------------------
// 5. Rapid sequential evaluation.
// ---------------------------------------------------------------------------

func TestE2ERapidEvaluation(t *testing.T) {
	// Simulates debounce: rapid sequential calls to Evaluate on the same App.
	// zygomys has internal global state that is not safe for concurrent
	// sandbox creation, so calls are sequential.
	app := NewApp()

	sources := []string{
		`(strip :radius 1 :width 0.1 :n 10)`,
		`(strip :radius 2 :width 0.2 :n 20)`,
		`(+ 1 2)`,
		``,
		`(strip :radius 3 :width 0.3 :n 30)`,
		`(strip :radius 1 :width 1 :n 3 :method :average)`,
		`(+ 100 200)`,
		``,
		`(mobius-area 1 1 3)`,
		`(strip :radius 4 :width 0.5 :n 40)`,
	}

	for i, source := range sources {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("iteration %d panicked: %v", i, r)
				}
			}()
			result := app.Evaluate(source)
			if len(result.Errors) > 0 {
				t.Errorf("iteration %d: unexpected errors: %v", i, result.Errors)
			}
		}()
	}
}

func TestE2ERapidEvaluationAlternating(t *testing.T) {
	// Alternates between valid and invalid sources rapidly.
	// Ensures the engine recovers cleanly between error and success states.
	app := NewApp()

	sources := []string{
		`(strip :radius 1 :width 0.1 :n 10 :name "ok")`,
		`(strip :radius 1`,
		``,
		`(surface-area 42)`,
		`(strip :radius 2 :width 0.1 :n 10 :name "also-ok")`,
		`(+ 1 2)`,
		`;; just a comment`,
		`(strip :radius 3 :width 0.1 :n 10 :name "fine")`,
		`(undefined-func 1 2 3)`,
		`(strip :radius 4 :width 0.1 :n 10 :name "last")`,
	}

	for i, source := range sources {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("iteration %d panicked on source %q: %v", i, source, r)
				}
			}()
			_ = app.Evaluate(source)
		}()
	}

	// The engine is still usable afterwards.
	result := app.Evaluate(`(strip :radius 1 :width 0.1 :n 10 :name "after")`)
	if len(result.Errors) > 0 || len(result.Meshes) != 1 {
		t.Fatalf("engine did not recover: errors=%v meshes=%d", result.Errors, len(result.Meshes))
	}
}

// ---------------------------------------------------------------------------
// 6. Comments and whitespace.
// ---------------------------------------------------------------------------

func TestE2ECommentsOnly(t *testing.T) {
	result := evalOK(t, ";; a comment\n; another :keyword (strip)\n")
	if len(result.Meshes) != 0 {
		t.Errorf("comments produced %d meshes", len(result.Meshes))
	}
}

func TestE2EWhitespaceOnly(t *testing.T) {
	result := evalOK(t, "  \n\t\n  ")
	if len(result.Meshes) != 0 {
		t.Errorf("whitespace produced %d meshes", len(result.Meshes))
	}
}

// ---------------------------------------------------------------------------
// 7. Arithmetic feeding strip parameters.
// ---------------------------------------------------------------------------

func TestE2EArithmeticParameters(t *testing.T) {
	result := evalOK(t, `
(def r (* 1.5 2.0))
(def w (/ r 6.0))
(strip :radius r :width w :n (+ 10 10) :name "computed")
`)
	if len(result.Measures) != 1 {
		t.Fatalf("expected 1 measure, got %d", len(result.Measures))
	}
	// R=3 so the boundary runs roughly once around a circle of radius 3.
	if got := result.Measures[0].EdgeLength; got < 2*math.Pi*2.5 || got > 2*math.Pi*3.5 {
		t.Errorf("edge length %v outside the expected range for R=3", got)
	}
}

// ---------------------------------------------------------------------------
// 8. Warnings and colors.
// ---------------------------------------------------------------------------

func TestE2EWideStripWarning(t *testing.T) {
	result := evalOK(t, `(strip :radius 1 :width 5 :n 10 :name "fat")`)
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(result.Warnings))
	}
	if !strings.HasPrefix(result.Warnings[0].Message, "fat: ") {
		t.Errorf("warning %q should name the strip", result.Warnings[0].Message)
	}
	if len(result.Meshes) != 1 {
		t.Errorf("a warning should not drop the mesh, got %d meshes", len(result.Meshes))
	}
}

func TestE2EColorPaletteWrapping(t *testing.T) {
	// More strips than the palette has colors.
	result := evalOK(t, strings.Repeat("(strip :radius 1 :width 0.2 :n 6)\n", 9))
	if len(result.Meshes) != 9 {
		t.Fatalf("expected 9 meshes, got %d", len(result.Meshes))
	}

	for _, m := range result.Meshes {
		if m.Color == "" {
			t.Errorf("mesh %q should have a color assigned (palette wrapping)", m.PartName)
		}
	}
	if result.Meshes[0].Color != result.Meshes[8].Color {
		t.Errorf("9th mesh color %q should wrap to the first %q", result.Meshes[8].Color, result.Meshes[0].Color)
	}
}
