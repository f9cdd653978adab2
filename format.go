package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// formatFloat prints f in the shortest form that round-trips, with the
// layout of the reference tool's output: whole numbers keep a ".0" and
// exponents are used below 1e-4 and from 1e16 up (0.0, 2.0, 1e-05, 1e+16).
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprint(f)
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// printMeasures writes the two result lines for one strip.
func printMeasures(w io.Writer, area, edge float64) {
	fmt.Fprintln(w, "Surface Area:", formatFloat(area))
	fmt.Fprintln(w, "Edge Length:", formatFloat(edge))
}
