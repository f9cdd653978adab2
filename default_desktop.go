//go:build desktop || production || dev

package main

// defaultRender opens the viewer in builds made with the wails CLI, which
// sets these tags.
const defaultRender = "window"
