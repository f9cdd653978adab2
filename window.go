package main

import (
	"embed"
	"io"

	"github.com/chazu/mobius/pkg/render"
	"github.com/chazu/mobius/pkg/surface"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

// runWindow opens the desktop viewer and blocks until it is closed.
// Tests replace it.
var runWindow = func(app *App) error {
	return wails.Run(&options.App{
		Title:  "mobius",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		Bind: []interface{}{
			app,
		},
	})
}

// windowRenderer shows surfaces in the Wails viewer.
type windowRenderer struct {
	app *App
}

func newWindowRenderer(string, io.Writer) (render.Renderer, error) {
	return &windowRenderer{app: NewApp()}, nil
}

// Render opens the viewer on a single surface.
func (w *windowRenderer) Render(m *surface.Mesh) error {
	if m == nil {
		return render.ErrNilMesh
	}
	w.app.showMesh("mobius", m)
	return runWindow(w.app)
}

// RenderScript opens the viewer with the script loaded in the editor.
func (w *windowRenderer) RenderScript(source string) error {
	w.app.showScript(source)
	return runWindow(w.app)
}

// scriptRenderer is implemented by renderers that show a whole script
// at once instead of one strip at a time.
type scriptRenderer interface {
	RenderScript(source string) error
}

// newRegistry returns the package renderers plus the desktop window.
func newRegistry() *render.Registry {
	reg := render.NewRegistry()
	reg.Register("window", newWindowRenderer)
	return reg
}
