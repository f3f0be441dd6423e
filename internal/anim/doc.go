// Package anim drives a single rotation angle from a three-state model.
//
// # States
//
// State is a closed enum with three variants, iterated in declared order:
//
//	Spinning - the angle loops linearly toward the sweep end, forever
//	Paused   - the angle freezes wherever it currently is
//	Stopped  - the angle snaps back to the stop value
//
// # Engine and Controller
//
// The host owns the angle. An Engine interpolates it over time and writes it
// back through a sink callback; the host calls Tick once per frame. The
// Controller never interpolates: it maps each observed state transition to one
// Engine command.
//
//	var angle float64
//	eng := anim.NewEngine(-90, func(v float64) { angle = v })
//	ctrl := anim.NewController(eng, anim.ControllerConfig{End: 270, Stop: -90})
//
//	ctrl.Transition(anim.Spinning) // loops -90 -> 270 every second
//	ctrl.Transition(anim.Paused)   // freezes at the in-flight angle
//	ctrl.Transition(anim.Stopped)  // back to -90
//
// A Spinning transition while already spinning is ignored, so re-writing the
// same state never restarts the sweep.
package anim
