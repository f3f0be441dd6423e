package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/logger"
)

// Spinner is an inline, single-line loader for plain CLI output. It runs the
// same engine and controller as Loader, driven by its own ticker goroutine
// instead of a Bubble Tea program.
type Spinner struct {
	mu           sync.Mutex
	label        string
	state        anim.State
	angle        float64
	sweep        float64
	interval     time.Duration
	ring         *Ring
	engine       *anim.Engine
	ctrl         *anim.Controller
	startTime    time.Time
	stopChan     chan struct{}
	doneChan     chan struct{}
	output       func(string)
	running      bool
	lastRendered string
}

// NewSpinner creates a stopped inline spinner. Output defaults to fmt.Print;
// use SetOutput to customize.
func NewSpinner(opts LoaderOptions) (*Spinner, error) {
	ring, err := NewRing(opts.Ring)
	if err != nil {
		return nil, err
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	s := &Spinner{
		label:    opts.Label,
		state:    anim.Stopped,
		angle:    opts.Start,
		sweep:    opts.Sweep,
		interval: time.Second / time.Duration(fps),
		ring:     ring,
		output:   func(str string) { fmt.Print(str) },
	}

	var engineOpts []anim.EngineOption
	if opts.Clock != nil {
		engineOpts = append(engineOpts, anim.WithClock(opts.Clock))
	}
	// The sink only runs with s.mu held: every engine call happens under the lock.
	s.engine = anim.NewEngine(opts.Start, func(v float64) { s.angle = v }, engineOpts...)
	s.ctrl = anim.NewController(s.engine, anim.ControllerConfig{
		End:   opts.Start + opts.Sweep,
		Stop:  opts.Stop,
		Cycle: opts.Cycle,
	}, anim.WithLogger(log))

	return s, nil
}

// SetOutput sets the output function for the spinner.
func (s *Spinner) SetOutput(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = fn
}

// Spin is SetState(anim.Spinning).
func (s *Spinner) Spin() { s.SetState(anim.Spinning) }

// Pause is SetState(anim.Paused).
func (s *Spinner) Pause() { s.SetState(anim.Paused) }

// Stop is SetState(anim.Stopped).
func (s *Spinner) Stop() { s.SetState(anim.Stopped) }

// SetState routes a state change through the controller and starts or joins
// the animation goroutine as needed.
func (s *Spinner) SetState(state anim.State) {
	if !state.Valid() {
		return
	}

	s.mu.Lock()
	if state == anim.Spinning && s.ctrl.Previous() != anim.Spinning {
		s.ctrl.SetEnd(s.angle + s.sweep)
	}
	s.ctrl.Transition(state)
	s.state = state
	if s.startTime.IsZero() {
		s.startTime = time.Now()
	}

	start := state == anim.Spinning && !s.running
	stop := state != anim.Spinning && s.running
	var done chan struct{}
	switch {
	case start:
		s.running = true
		s.stopChan = make(chan struct{})
		s.doneChan = make(chan struct{})
	case stop:
		s.running = false
		close(s.stopChan)
		done = s.doneChan
	}
	stopChan, doneChan := s.stopChan, s.doneChan
	s.mu.Unlock()

	if done != nil {
		<-done
	}
	s.render()
	if start {
		go s.animate(stopChan, doneChan)
	}
}

// Done stops the spinner and prints a final line with the elapsed time.
func (s *Spinner) Done() {
	s.SetState(anim.Stopped)
	s.renderFinal()
}

// State returns the current state.
func (s *Spinner) State() anim.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Angle returns the current rotation in degrees.
func (s *Spinner) Angle() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.angle
}

// Running reports whether the animation goroutine is active.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns the time since the first state change.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// SetLabel updates the spinner's label.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
}

func (s *Spinner) animate(stop <-chan struct{}, done chan<- struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(done)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.engine.Tick()
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := s.state.String()
	stateStyle := lipgloss.NewStyle().Foreground(StateColor(name))
	line := fmt.Sprintf("\r%s %s %s", s.ring.Glyph(s.angle), s.label, stateStyle.Render(name))

	s.clearLine()
	s.output(line)
	s.lastRendered = line
}

func (s *Spinner) renderFinal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbolStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	timingStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	timing := formatDuration(time.Since(s.startTime))

	s.clearLine()
	s.output(fmt.Sprintf("%s %s %s\n", symbolStyle.Render(SymbolComplete), s.label, timingStyle.Render(timing)))
	s.lastRendered = ""
}

// clearLine blanks the previously rendered line. Callers hold s.mu.
func (s *Spinner) clearLine() {
	if s.lastRendered == "" {
		return
	}
	width := runewidth.StringWidth(ansi.Strip(s.lastRendered))
	s.output("\r" + strings.Repeat(" ", width) + "\r")
}

// formatDuration formats a duration for display (e.g., "0.3s", "1.2s").
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
