package main

import (
	"context"
	"log"

	"github.com/chazu/mobius/pkg/engine"
	"github.com/chazu/mobius/pkg/render"
	"github.com/chazu/mobius/pkg/surface"
	"github.com/chazu/mobius/pkg/tessellate"
	"github.com/samber/lo"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine

	source  string
	initial EvalResult
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// MeasureData carries the numbers printed by the CLI for one strip.
type MeasureData struct {
	Name        string  `json:"name"`
	SurfaceArea float64 `json:"surfaceArea"`
	EdgeLength  float64 `json:"edgeLength"`
	SeamGap     float64 `json:"seamGap"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Meshes   []render.MeshData `json:"meshes"`
	Measures []MeasureData     `json:"measures"`
	Errors   []EvalErrorData   `json:"errors"`
	Warnings []EvalErrorData   `json:"warnings"`
}

func newEvalResult() EvalResult {
	return EvalResult{
		Meshes:   []render.MeshData{},
		Measures: []MeasureData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}
}

// NewApp creates a new App with a fresh engine.
func NewApp() *App {
	return &App{
		engine:  engine.NewEngine(),
		initial: newEvalResult(),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes script source and returns mesh data + errors.
// This is the primary binding called by the frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := newEvalResult()

	b, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, superseded).
		log.Printf("script: evaluate: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	if len(evalErrs) > 0 {
		result.Errors = lo.Map(evalErrs, func(e engine.EvalError, _ int) EvalErrorData {
			return EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message}
		})
		return result
	}

	result.Warnings = lo.Map(b.Warnings, func(w engine.EvalWarning, _ int) EvalErrorData {
		return EvalErrorData{Message: w.Strip + ": " + w.Message}
	})

	strips := lo.Map(b.Strips, func(s engine.Strip, _ int) tessellate.Strip {
		return tessellate.Strip{Name: s.Name, Mesh: s.Approx.Mesh()}
	})
	for i, m := range tessellate.TessellateAll(strips) {
		result.Meshes = append(result.Meshes, render.NewMeshData(m, render.ColorFor(i)))
	}
	for _, s := range b.Strips {
		result.Measures = append(result.Measures, measure(s.Name, s.Approx))
	}
	return result
}

// Initial returns what the window shows before the user edits anything.
func (a *App) Initial() EvalResult {
	return a.initial
}

// Source returns the script the window was opened with, if any.
func (a *App) Source() string {
	return a.source
}

// showMesh makes a bare surface grid the initial view.
func (a *App) showMesh(name string, m *surface.Mesh) {
	result := newEvalResult()
	result.Meshes = append(result.Meshes, render.NewMeshData(tessellate.Tessellate(m, name), render.ColorFor(0)))
	a.initial = result
}

// showScript evaluates source and makes its strips the initial view.
func (a *App) showScript(source string) {
	a.source = source
	a.initial = a.Evaluate(source)
}

func measure(name string, a *surface.Approximator) MeasureData {
	return MeasureData{
		Name:        name,
		SurfaceArea: a.SurfaceArea(),
		EdgeLength:  a.EdgeLength(),
		SeamGap:     a.SeamGap(),
	}
}
