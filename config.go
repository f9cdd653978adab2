package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chazu/mobius/pkg/render"
	"github.com/chazu/mobius/pkg/surface"
	"github.com/samber/lo"
)

// config holds the command-line flags.
type config struct {
	Render     string
	Out        string
	AreaMethod string
	Script     string
}

// validate checks every flag before any computation starts.
func (c config) validate(reg *render.Registry) error {
	if !lo.Contains(reg.Names(), c.Render) {
		return fmt.Errorf("config: --render %q, expected one of %v", c.Render, reg.Names())
	}
	if _, err := surface.ParseAreaMethod(c.AreaMethod); err != nil {
		return fmt.Errorf("config: --area-method: %w", err)
	}
	if c.Out == "-" && c.Render != "json" {
		return fmt.Errorf("config: --out - is only supported with --render json")
	}
	return nil
}

// outputExt is the default file extension of renderers that write files.
var outputExt = map[string]string{
	"stl":  ".stl",
	"json": ".json",
}

// stripOut derives a per-strip output path so that strips from one script
// do not overwrite each other: mobius.stl becomes mobius-thin.stl.
func (c config) stripOut(strip string) string {
	if c.Out == "-" {
		return c.Out
	}
	ext, ok := outputExt[c.Render]
	if !ok {
		return c.Out
	}
	out := c.Out
	if out == "" {
		out = "mobius" + ext
	}
	if e := filepath.Ext(out); e != "" {
		ext = e
	}
	return strings.TrimSuffix(out, ext) + "-" + strip + ext
}
