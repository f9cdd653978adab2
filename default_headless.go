//go:build !desktop && !production && !dev

package main

// defaultRender is the terminal chart in plain go builds. Wails refuses to
// start a window without its build tags.
const defaultRender = "term"
