package engine

import (
	"fmt"

	"github.com/chazu/mobius/pkg/surface"
	zygo "github.com/glycerine/zygomys/zygo"
)

// sexpStrip wraps a recorded Strip so it can be passed between builtins.
type sexpStrip struct {
	strip Strip
}

func (s *sexpStrip) SexpString(ps *zygo.PrintState) string {
	p := s.strip.Approx.Params()
	return fmt.Sprintf("(strip %q :radius %v :width %v :n %d)", s.strip.Name, p.R, p.W, p.N)
}
func (s *sexpStrip) Type() *zygo.RegisteredType { return nil }

// toStrip extracts a Strip from a sexpStrip.
func toStrip(s zygo.Sexp) (Strip, error) {
	if st, ok := s.(*sexpStrip); ok {
		return st.strip, nil
	}
	return Strip{}, fmt.Errorf("expected strip, got %T (%s)", s, s.SexpString(nil))
}

func float(f float64) zygo.Sexp {
	return &zygo.SexpFloat{Val: f}
}

// paramsFromPositional reads (R w n) positional arguments.
func paramsFromPositional(fn string, args []zygo.Sexp) (surface.Params, error) {
	if len(args) != 3 {
		return surface.Params{}, fmt.Errorf("%s requires exactly 3 arguments (R w n), got %d", fn, len(args))
	}
	r, err := toFloat64(args[0])
	if err != nil {
		return surface.Params{}, fmt.Errorf("%s: R: %w", fn, err)
	}
	w, err := toFloat64(args[1])
	if err != nil {
		return surface.Params{}, fmt.Errorf("%s: w: %w", fn, err)
	}
	n, err := toInt(args[2])
	if err != nil {
		return surface.Params{}, fmt.Errorf("%s: n: %w", fn, err)
	}
	return surface.Params{R: r, W: w, N: n}, nil
}

// registerBuiltins installs the mobius builtins into a zygomys environment.
// Strips built with `strip` are appended to b in evaluation order.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, b *Batch) {

	// -----------------------------------------------------------------------
	// (strip :radius 1 :width 0.1 :n 100 :method :average :name "thin")
	// -----------------------------------------------------------------------
	env.AddFunction("strip", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var p surface.Params

		for _, field := range []string{"radius", "width", "n"} {
			if _, ok := pa.kw[field]; !ok {
				return zygo.SexpNull, fmt.Errorf("strip: missing :%s", field)
			}
		}
		r, err := toFloat64(pa.kw["radius"])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("strip: radius: %w", err)
		}
		p.R = r
		w, err := toFloat64(pa.kw["width"])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("strip: width: %w", err)
		}
		p.W = w
		n, err := toInt(pa.kw["n"])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("strip: n: %w", err)
		}
		p.N = n

		method := surface.AreaLowerTriangle
		if v, ok := pa.kw["method"]; ok {
			s, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("strip: method: %w", err)
			}
			if method, err = surface.ParseAreaMethod(s); err != nil {
				return zygo.SexpNull, fmt.Errorf("strip: %w", err)
			}
		}

		stripName := fmt.Sprintf("strip-%d", len(b.Strips)+1)
		if v, ok := pa.kw["name"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("strip: name: %w", err)
			}
			stripName = s
		}
		if b.Lookup(stripName) != nil {
			return zygo.SexpNull, fmt.Errorf("strip: duplicate name %q", stripName)
		}

		a, err := surface.New(p, surface.WithAreaMethod(method))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("strip %q: %w", stripName, err)
		}
		st := Strip{Name: stripName, Approx: a}
		b.Strips = append(b.Strips, st)

		if p.W > 2*p.R {
			b.Warnings = append(b.Warnings, EvalWarning{
				Strip:   stripName,
				Message: fmt.Sprintf("width %v exceeds diameter %v; the strip passes through its own axis", p.W, 2*p.R),
			})
		}
		return &sexpStrip{strip: st}, nil
	})

	// -----------------------------------------------------------------------
	// (surface-area s) / (edge-length s) / (seam-gap s)
	// -----------------------------------------------------------------------
	measures := map[string]func(*surface.Approximator) float64{
		"surface_area": (*surface.Approximator).SurfaceArea,
		"edge_length":  (*surface.Approximator).EdgeLength,
		"seam_gap":     (*surface.Approximator).SeamGap,
	}
	for fn, measure := range measures {
		fn, measure := fn, measure
		env.AddFunction(fn, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires a strip argument", fn)
			}
			st, err := toStrip(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			return float(measure(st.Approx)), nil
		})
	}

	// -----------------------------------------------------------------------
	// (mobius-area R w n) / (mobius-edge R w n): measure without recording
	// -----------------------------------------------------------------------
	env.AddFunction("mobius_area", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, err := paramsFromPositional("mobius-area", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		a, err := surface.New(p)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mobius-area: %w", err)
		}
		return float(a.SurfaceArea()), nil
	})

	env.AddFunction("mobius_edge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, err := paramsFromPositional("mobius-edge", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		a, err := surface.New(p)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mobius-edge: %w", err)
		}
		return float(a.EdgeLength()), nil
	})
}
