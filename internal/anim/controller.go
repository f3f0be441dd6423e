package anim

import (
	"time"

	"github.com/rileyhilliard/statable/internal/logger"
)

// DefaultCycle is the duration of one full sweep while spinning.
const DefaultCycle = time.Second

// Animator is the command surface a Controller drives. *Engine implements it.
type Animator interface {
	Set(v float64)
	Animate(to float64, d time.Duration, loop bool)
	Cancel() float64
}

// ControllerConfig holds the values a Controller animates between.
type ControllerConfig struct {
	// End is the value a spinning sweep moves toward, usually start + 360.
	End float64
	// Stop is the value assigned when the state becomes Stopped.
	Stop float64
	// Cycle is the duration of one sweep. Zero means DefaultCycle.
	Cycle time.Duration
}

// Controller maps state transitions onto Animator commands. It remembers only
// the previously processed state, which starts as Stopped.
type Controller struct {
	anim     Animator
	end      float64
	stop     float64
	cycle    time.Duration
	previous State
	log      logger.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used for transition tracing.
func WithLogger(l logger.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController creates a controller driving a. End == Stop is allowed; the
// sweep then has no visible motion.
func NewController(a Animator, cfg ControllerConfig, opts ...ControllerOption) *Controller {
	cycle := cfg.Cycle
	if cycle <= 0 {
		cycle = DefaultCycle
	}
	c := &Controller{
		anim:     a,
		end:      cfg.End,
		stop:     cfg.Stop,
		cycle:    cycle,
		previous: Stopped,
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Transition reacts to the driving state changing to s.
func (c *Controller) Transition(s State) {
	if !s.Valid() {
		c.log.Warn("ignoring transition to %s", s)
		return
	}

	switch s {
	case Spinning:
		if c.previous == Spinning {
			c.log.Debug("already spinning, keeping current sweep")
			return
		}
		c.log.Debug("%s -> spinning: sweep to %.1f every %s", c.previous, c.end, c.cycle)
		c.anim.Animate(c.end, c.cycle, true)
	case Paused:
		v := c.anim.Cancel()
		c.log.Debug("%s -> paused: frozen at %.1f", c.previous, v)
	case Stopped:
		c.log.Debug("%s -> stopped: reset to %.1f", c.previous, c.stop)
		c.anim.Set(c.stop)
	}

	c.previous = s
}

// Sync records s as the current state without issuing any command. Hosts call
// it when the widget first appears so an initial Spinning is not replayed as
// a fresh transition.
func (c *Controller) Sync(s State) {
	if s.Valid() {
		c.previous = s
	}
}

// Previous returns the last processed state.
func (c *Controller) Previous() State {
	return c.previous
}

// SetEnd retargets the sweep end. It takes effect on the next transition
// into Spinning; a sweep already in flight keeps its target.
func (c *Controller) SetEnd(end float64) {
	c.end = end
}

// End returns the current sweep end.
func (c *Controller) End() float64 {
	return c.end
}

// Stop returns the value assigned on Stopped.
func (c *Controller) Stop() float64 {
	return c.stop
}

// Cycle returns the duration of one sweep.
func (c *Controller) Cycle() time.Duration {
	return c.cycle
}
