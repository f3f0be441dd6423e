package anim

import (
	"fmt"
	"testing"
	"time"

	"github.com/rileyhilliard/statable/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingAnimator captures the commands a Controller issues.
type recordingAnimator struct {
	calls  []string
	cancel float64
}

func (r *recordingAnimator) Set(v float64) {
	r.calls = append(r.calls, fmt.Sprintf("set %.0f", v))
}

func (r *recordingAnimator) Animate(to float64, d time.Duration, loop bool) {
	r.calls = append(r.calls, fmt.Sprintf("animate %.0f %s loop=%t", to, d, loop))
}

func (r *recordingAnimator) Cancel() float64 {
	r.calls = append(r.calls, "cancel")
	return r.cancel
}

func TestNewControllerDefaults(t *testing.T) {
	c := NewController(&recordingAnimator{}, ControllerConfig{End: 270, Stop: -90})

	assert.Equal(t, Stopped, c.Previous(), "memory starts as stopped")
	assert.Equal(t, DefaultCycle, c.Cycle())
	assert.InDelta(t, 270, c.End(), delta)
	assert.InDelta(t, -90, c.Stop(), delta)
}

func TestControllerTransitionTable(t *testing.T) {
	spin := "animate 270 1s loop=true"

	tests := []struct {
		from State
		to   State
		want []string
	}{
		{Spinning, Spinning, nil},
		{Paused, Spinning, []string{spin}},
		{Stopped, Spinning, []string{spin}},
		{Spinning, Paused, []string{"cancel"}},
		{Paused, Paused, []string{"cancel"}},
		{Stopped, Paused, []string{"cancel"}},
		{Spinning, Stopped, []string{"set -90"}},
		{Paused, Stopped, []string{"set -90"}},
		{Stopped, Stopped, []string{"set -90"}},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			rec := &recordingAnimator{}
			c := NewController(rec, ControllerConfig{End: 270, Stop: -90})
			c.Sync(tt.from)

			c.Transition(tt.to)

			assert.Equal(t, tt.want, rec.calls)
			assert.Equal(t, tt.to, c.Previous())
		})
	}
}

func TestControllerMemoryTracksEveryState(t *testing.T) {
	c := NewController(&recordingAnimator{}, ControllerConfig{})

	for _, s := range []State{Paused, Spinning, Spinning, Stopped, Paused, Stopped, Spinning} {
		c.Transition(s)
		assert.Equal(t, s, c.Previous())
	}
}

func TestControllerIgnoresInvalidState(t *testing.T) {
	rec := &recordingAnimator{}
	log := logger.NewBufferLogger()
	c := NewController(rec, ControllerConfig{}, WithLogger(log))
	c.Transition(Paused)
	rec.calls = nil

	c.Transition(State(42))

	assert.Empty(t, rec.calls)
	assert.Equal(t, Paused, c.Previous())
	assert.True(t, log.HasLevel("warn"))
}

func TestControllerLogsTransitions(t *testing.T) {
	log := logger.NewBufferLogger()
	c := NewController(&recordingAnimator{}, ControllerConfig{End: 270, Stop: -90}, WithLogger(log))

	c.Transition(Spinning)
	c.Transition(Spinning)

	require.Len(t, log.Messages, 2)
	assert.Contains(t, log.Messages[0].Message, "stopped -> spinning")
	assert.Contains(t, log.Messages[1].Message, "already spinning")
}

// loaderScenario wires an Engine and Controller the way a host widget does.
type loaderScenario struct {
	angle float64
	clock *fakeClock
	eng   *Engine
	ctrl  *Controller
}

func newLoaderScenario(start, end, stop float64) *loaderScenario {
	s := &loaderScenario{angle: start, clock: newFakeClock()}
	s.eng = NewEngine(start, func(v float64) { s.angle = v }, WithClock(s.clock.Now))
	s.ctrl = NewController(s.eng, ControllerConfig{End: end, Stop: stop})
	return s
}

func (s *loaderScenario) advance(d time.Duration) float64 {
	s.clock.Advance(d)
	return s.eng.Tick()
}

func TestScenarioSpinPauseStop(t *testing.T) {
	s := newLoaderScenario(-90, 270, -90)

	s.ctrl.Transition(Spinning)
	assert.InDelta(t, -90, s.angle, delta)

	assert.InDelta(t, 0, s.advance(250*time.Millisecond), delta)
	s.clock.Advance(250 * time.Millisecond)

	s.ctrl.Transition(Paused)
	assert.InDelta(t, 90, s.angle, delta, "pause freezes the interpolated value")

	assert.InDelta(t, 90, s.advance(3*time.Second), delta, "no motion while paused")

	s.ctrl.Transition(Stopped)
	assert.InDelta(t, -90, s.angle, delta, "stop snaps to the stop value")
	assert.False(t, s.eng.Running())
}

func TestScenarioSpinLoopsForever(t *testing.T) {
	s := newLoaderScenario(-90, 270, -90)
	s.ctrl.Transition(Spinning)

	assert.InDelta(t, 90, s.advance(500*time.Millisecond), delta)
	assert.InDelta(t, -90+0.75*360, s.advance(1250*time.Millisecond), 1e-6)
	assert.True(t, s.eng.Looping())
}

func TestScenarioRedundantSpinningKeepsTrajectory(t *testing.T) {
	s := newLoaderScenario(-90, 270, -90)
	s.ctrl.Transition(Spinning)
	s.advance(300 * time.Millisecond)
	before := s.eng.Value()

	for i := 0; i < 3; i++ {
		s.ctrl.Transition(Spinning)
		assert.InDelta(t, before, s.eng.Value(), delta, "redundant transition must not jump")
	}

	// A restart would begin a fresh sweep from `before`; the original sweep is at 90.
	assert.InDelta(t, 90, s.advance(200*time.Millisecond), delta)
}

func TestScenarioPauseThenResume(t *testing.T) {
	s := newLoaderScenario(-90, 270, -90)
	s.ctrl.Transition(Spinning)
	s.clock.Advance(500 * time.Millisecond)
	s.ctrl.Transition(Paused)
	require.InDelta(t, 90, s.angle, delta)

	s.clock.Advance(time.Second)
	s.ctrl.Transition(Spinning)
	assert.InDelta(t, 90, s.angle, delta, "resume starts from the frozen value")

	// Fresh sweep 90 -> 270 over one cycle.
	assert.InDelta(t, 180, s.advance(500*time.Millisecond), delta)
	assert.InDelta(t, 90, s.advance(500*time.Millisecond), delta, "loop restarts at the frozen value")
}

func TestScenarioResumeWithRetargetedEnd(t *testing.T) {
	s := newLoaderScenario(-90, 270, -90)
	s.ctrl.Transition(Spinning)
	s.clock.Advance(500 * time.Millisecond)
	s.ctrl.Transition(Paused)

	s.ctrl.SetEnd(s.angle + 360)
	s.ctrl.Transition(Spinning)

	assert.InDelta(t, 270, s.advance(500*time.Millisecond), delta)
	assert.InDelta(t, 360, s.advance(250*time.Millisecond), delta)
}

func TestScenarioDegenerateArc(t *testing.T) {
	s := newLoaderScenario(-90, -90, -90)

	assert.NotPanics(t, func() {
		s.ctrl.Transition(Spinning)
	})
	assert.InDelta(t, -90, s.advance(700*time.Millisecond), delta)
	assert.InDelta(t, -90, s.advance(700*time.Millisecond), delta)
}

func TestScenarioStopFromEveryState(t *testing.T) {
	for _, from := range States() {
		t.Run(from.String(), func(t *testing.T) {
			s := newLoaderScenario(-90, 270, -90)
			s.ctrl.Transition(Spinning)
			s.clock.Advance(400 * time.Millisecond)
			s.ctrl.Transition(from)

			s.ctrl.Transition(Stopped)

			assert.InDelta(t, -90, s.angle, delta)
			assert.InDelta(t, -90, s.advance(time.Second), delta)
		})
	}
}
