// Package ui provides the terminal presentation for statable loaders.
//
// # Components Overview
//
//	Ring      - Draws an angle as a circle of cells with a gradient tail
//	Loader    - Bubble Tea component owning an angle and its driving state
//	Picker    - Segmented control over spinning/paused/stopped
//	Spinner   - Inline single-line loader for plain CLI output
//	PromptState - Huh select for choosing a state up front
//
// # Loader
//
// A Loader owns the rotation angle. State changes go through SetState, which
// hands them to an anim.Controller; frames (FrameMsg) sample the anim.Engine,
// which writes the angle back. Frames are only scheduled while spinning.
//
//	l, _ := ui.NewLoader(ui.DefaultLoaderOptions())
//	cmd := l.SetState(anim.Spinning)
//	// forward FrameMsg values to l.Update from the parent model
//
// # Colors
//
// Status colors are ANSI codes; the ring gradient is computed in RGB with
// go-colorful from Background toward Accent, starting at Fade opacity.
// Use DisableColors() for monochrome output (for --no-color).
package ui
