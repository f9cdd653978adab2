package main

import (
	"fmt"
	"strconv"

	"github.com/chazu/mobius/pkg/surface"
)

// ArgumentParseError reports a positional argument that is not a number
// of the expected kind.
type ArgumentParseError struct {
	Arg   string
	Value string
	Err   error
}

func (e *ArgumentParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Arg, e.Value, e.Err)
}

func (e *ArgumentParseError) Unwrap() error { return e.Err }

// parseParams reads R, w and n from the first three positional arguments.
// Range checks are left to surface.New.
func parseParams(args []string) (surface.Params, error) {
	var p surface.Params
	if len(args) < 3 {
		return p, fmt.Errorf("need 3 arguments, got %d", len(args))
	}
	r, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return p, &ArgumentParseError{Arg: "R", Value: args[0], Err: unwrapNum(err)}
	}
	w, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return p, &ArgumentParseError{Arg: "w", Value: args[1], Err: unwrapNum(err)}
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return p, &ArgumentParseError{Arg: "n", Value: args[2], Err: unwrapNum(err)}
	}
	return surface.Params{R: r, W: w, N: n}, nil
}

// unwrapNum drops the strconv wrapper, whose message repeats the input.
func unwrapNum(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
