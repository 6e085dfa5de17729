// Package app is the interactive terminal viewer for scene files. It
// renders a scene with termrender, turns mouse motion into pointer events
// on the scene's tooltip targets, and drives delayed tooltips from the
// bubbletea event loop.
package app

// FireEvent delivers a scheduled callback back into the update loop.
type FireEvent struct {
	ID uint64
}

// ThemeChangeEvent switches the active palette and rebuilds the scene.
type ThemeChangeEvent struct {
	Theme string
}

// ReloadEvent rebuilds the scene from its description.
type ReloadEvent struct{}
