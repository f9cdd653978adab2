// Package surface samples the Möbius strip on a regular (u, v) parameter
// grid and approximates its surface area and boundary length from the
// samples. An Approximator is built once from Params and never mutated.
package surface
