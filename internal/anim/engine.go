package anim

import (
	"math"
	"time"
)

// Clock returns the current time. Engines read time only through it.
type Clock func() time.Time

// sweep is one linear animation command in flight.
type sweep struct {
	from     float64
	to       float64
	duration time.Duration
	loop     bool
	started  time.Time
}

// at returns the interpolated value at t and whether a one-shot sweep has finished.
func (s *sweep) at(t time.Time) (float64, bool) {
	elapsed := t.Sub(s.started)
	if elapsed < 0 {
		elapsed = 0
	}
	progress := float64(elapsed) / float64(s.duration)
	if s.loop {
		// Non-reversing: every cycle restarts from the same from-value.
		progress -= math.Floor(progress)
	} else if progress >= 1 {
		return s.to, true
	}
	return s.from + (s.to-s.from)*progress, false
}

// Engine interpolates a single scalar and pushes every new value to a sink
// owned by the host. At most one sweep is in flight; any new command
// supersedes it.
type Engine struct {
	now    Clock
	sink   func(float64)
	value  float64
	active *sweep
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock replaces time.Now, mostly for tests.
func WithClock(c Clock) EngineOption {
	return func(e *Engine) {
		if c != nil {
			e.now = c
		}
	}
}

// NewEngine creates an idle engine holding initial. sink receives every value
// the engine settles on or samples; it may be nil.
func NewEngine(initial float64, sink func(float64), opts ...EngineOption) *Engine {
	e := &Engine{
		now:   time.Now,
		sink:  sink,
		value: initial,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Set assigns v instantly, cancelling any sweep in flight.
func (e *Engine) Set(v float64) {
	e.active = nil
	e.settle(v)
}

// Animate starts a linear sweep from the current in-flight value to `to`
// over d. With loop the sweep repeats forever without reversing. A
// non-positive duration is an instant Set.
func (e *Engine) Animate(to float64, d time.Duration, loop bool) {
	if d <= 0 {
		e.Set(to)
		return
	}
	from := e.Value()
	e.active = &sweep{
		from:     from,
		to:       to,
		duration: d,
		loop:     loop,
		started:  e.now(),
	}
	e.settle(from)
}

// Cancel halts the sweep in flight, freezing the scalar at its current
// interpolated value, and returns that value.
func (e *Engine) Cancel() float64 {
	v := e.Value()
	e.active = nil
	e.settle(v)
	return v
}

// Tick samples the sweep at the current time and pushes the value to the
// sink. Finished one-shot sweeps leave the engine idle at their target.
func (e *Engine) Tick() float64 {
	if e.active == nil {
		e.settle(e.value)
		return e.value
	}
	v, done := e.active.at(e.now())
	if done {
		e.active = nil
	}
	e.settle(v)
	return v
}

// Value returns the in-flight value at the current time without pushing it.
func (e *Engine) Value() float64 {
	if e.active == nil {
		return e.value
	}
	v, _ := e.active.at(e.now())
	return v
}

// Running reports whether a sweep is still in flight.
func (e *Engine) Running() bool {
	if e.active == nil {
		return false
	}
	if e.active.loop {
		return true
	}
	_, done := e.active.at(e.now())
	return !done
}

// Looping reports whether the sweep in flight repeats forever.
func (e *Engine) Looping() bool {
	return e.active != nil && e.active.loop
}

func (e *Engine) settle(v float64) {
	e.value = v
	if e.sink != nil {
		e.sink(v)
	}
}
