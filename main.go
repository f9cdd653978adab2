// Command mobius approximates the surface area and boundary length of a
// discretized Möbius strip and renders the sampled surface.
//
//	mobius [flags] <R> <w> <n>
//	mobius [flags] -- <R> <w> <n>     (when R is negative)
//	mobius --script examples/sweep.mobius --render json --out strips.json
//
// Flags go before the positional arguments. The desktop viewer is only
// available in builds made with `wails build` (tags desktop,production);
// other builds default to --render term.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chazu/mobius/pkg/engine"
	"github.com/chazu/mobius/pkg/render"
	"github.com/chazu/mobius/pkg/surface"
	"github.com/spf13/cobra"
)

const usage = "Usage: mobius <R> <w> <n>"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	reg := newRegistry()

	cmd := &cobra.Command{
		Use:   "mobius [flags] <R> <w> <n>",
		Short: "Approximate a Möbius strip",
		Long: `Sample a Möbius strip of center radius R and width w on an n by n grid,
print its approximate surface area and boundary edge length, then render it.

Flags must come before R, w and n. Use -- before a negative R:
  mobius --render none -- -1 0.5 10`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(3)(cmd, args); err != nil {
				return fmt.Errorf("%w; flags must come before R w n", err)
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(reg); err != nil {
				return err
			}
			if cfg.Script != "" {
				return runScript(cfg, reg, cmd.OutOrStdout())
			}
			return runStrip(cfg, reg, args, cmd.OutOrStdout())
		},
	}
	// Stop flag parsing at the first positional so a negative width is
	// read as a value: mobius 1 -0.5 10.
	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w; use -- before a negative R", err)
	})

	cmd.Flags().StringVarP(&cfg.Render, "render", "r", defaultRender, fmt.Sprintf("renderer, one of %v", reg.Names()))
	cmd.Flags().StringVarP(&cfg.Out, "out", "o", "", "output path for stl and json renderers (- for stdout)")
	cmd.Flags().StringVar(&cfg.AreaMethod, "area-method", "lower", "area estimate: lower or average")
	cmd.Flags().StringVarP(&cfg.Script, "script", "s", "", "evaluate a mobius script instead of positional arguments")
	return cmd
}

// runStrip handles the positional form: mobius R w n.
func runStrip(cfg config, reg *render.Registry, args []string, stdout io.Writer) error {
	if len(args) < 3 {
		fmt.Fprintln(stdout, usage)
		return nil
	}
	p, err := parseParams(args)
	if err != nil {
		return err
	}
	method, err := surface.ParseAreaMethod(cfg.AreaMethod)
	if err != nil {
		return err
	}
	a, err := surface.New(p, surface.WithAreaMethod(method))
	if err != nil {
		return err
	}

	printMeasures(stdout, a.SurfaceArea(), a.EdgeLength())

	r, err := reg.New(cfg.Render, cfg.Out, stdout)
	if err != nil {
		return err
	}
	if err := r.Render(a.Mesh()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// runScript evaluates a script, prints measurements for every strip it
// records and renders them.
func runScript(cfg config, reg *render.Registry, stdout io.Writer) error {
	src, err := os.ReadFile(cfg.Script)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}

	b, evalErrs, err := engine.NewEngine().Evaluate(string(src))
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			log.Printf("script: %s: %v", cfg.Script, e)
		}
		return fmt.Errorf("script: %s: %w", cfg.Script, evalErrs[0])
	}
	for _, w := range b.Warnings {
		log.Printf("script: %s: %s", w.Strip, w.Message)
	}

	for _, s := range b.Strips {
		fmt.Fprintf(stdout, "%s:\n", s.Name)
		printMeasures(stdout, s.Approx.SurfaceArea(), s.Approx.EdgeLength())
	}

	r, err := reg.New(cfg.Render, cfg.Out, stdout)
	if err != nil {
		return err
	}
	if sr, ok := r.(scriptRenderer); ok {
		if err := sr.RenderScript(string(src)); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return nil
	}
	for _, s := range b.Strips {
		r, err := reg.New(cfg.Render, cfg.stripOut(s.Name), stdout)
		if err != nil {
			return err
		}
		if err := r.Render(s.Approx.Mesh()); err != nil {
			return fmt.Errorf("render %s: %w", s.Name, err)
		}
	}
	return nil
}
