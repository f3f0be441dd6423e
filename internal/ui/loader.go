package ui

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/logger"
)

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	Label   string
	Start   float64       // Initial angle in degrees
	Sweep   float64       // Degrees covered per cycle; the end is angle + Sweep
	Stop    float64       // Angle assigned when stopped
	Cycle   time.Duration // Duration of one sweep
	FPS     int           // Frames per second while spinning
	Initial anim.State
	Ring    RingStyle
	Clock   anim.Clock
	Logger  logger.Logger
}

// DefaultLoaderOptions returns a stopped loader starting at twelve o'clock.
func DefaultLoaderOptions() LoaderOptions {
	return LoaderOptions{
		Label:   "Loading",
		Start:   -90,
		Sweep:   360,
		Stop:    -90,
		Cycle:   anim.DefaultCycle,
		FPS:     30,
		Initial: anim.Stopped,
		Ring:    DefaultRingStyle(),
	}
}

// TraceLen is how many recent angle samples a Loader keeps for its trace.
const TraceLen = 48

var lastLoaderID int64

func nextLoaderID() int {
	return int(atomic.AddInt64(&lastLoaderID, 1))
}

// FrameMsg asks a spinning loader to sample its engine. It is scoped to a
// loader and to the sweep that scheduled it, so stale frames are dropped.
type FrameMsg struct {
	ID   int
	tag  int
	Time time.Time
}

// Loader is a Bubble Tea component that owns a rotation angle and the state
// driving it. State changes go through an anim.Controller; frames sample the
// anim.Engine, which writes the angle back.
type Loader struct {
	id       int
	tag      int
	label    string
	state    anim.State
	angle    float64
	sweep    float64
	interval time.Duration
	ring     *Ring
	engine   *anim.Engine
	ctrl     *anim.Controller
	trace    []float64
}

// NewLoader builds a loader from opts.
func NewLoader(opts LoaderOptions) (*Loader, error) {
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

	l := &Loader{
		id:       nextLoaderID(),
		label:    opts.Label,
		state:    anim.Stopped,
		angle:    opts.Start,
		sweep:    opts.Sweep,
		interval: time.Second / time.Duration(fps),
		ring:     ring,
	}

	var engineOpts []anim.EngineOption
	if opts.Clock != nil {
		engineOpts = append(engineOpts, anim.WithClock(opts.Clock))
	}
	l.engine = anim.NewEngine(opts.Start, l.record, engineOpts...)
	l.ctrl = anim.NewController(l.engine, anim.ControllerConfig{
		End:   opts.Start + opts.Sweep,
		Stop:  opts.Stop,
		Cycle: opts.Cycle,
	}, anim.WithLogger(log))

	if opts.Initial == anim.Spinning {
		l.SetState(anim.Spinning)
	} else if opts.Initial.Valid() {
		l.state = opts.Initial
		l.ctrl.Sync(opts.Initial)
	}

	return l, nil
}

// ID returns the loader's message scope.
func (l *Loader) ID() int {
	return l.id
}

// Init starts frame ticks when the loader begins spinning.
func (l *Loader) Init() tea.Cmd {
	if l.state != anim.Spinning {
		return nil
	}
	return l.frame()
}

// SetState writes the driving state and routes the change through the
// controller. It returns the frame command when a new sweep starts.
func (l *Loader) SetState(s anim.State) tea.Cmd {
	if !s.Valid() {
		return nil
	}
	startsSweep := s == anim.Spinning && l.ctrl.Previous() != anim.Spinning

	// A fresh sweep covers one full turn from wherever the angle is now.
	if startsSweep {
		l.ctrl.SetEnd(l.angle + l.sweep)
	}
	l.state = s
	l.ctrl.Transition(s)

	if !startsSweep {
		return nil
	}
	l.tag++
	return l.frame()
}

// State returns the driving state.
func (l *Loader) State() anim.State {
	return l.state
}

// Angle returns the current rotation in degrees.
func (l *Loader) Angle() float64 {
	return l.angle
}

// Trace returns the most recent angles written by the engine, oldest first.
func (l *Loader) Trace() []float64 {
	return append([]float64(nil), l.trace...)
}

// record is the engine's sink.
func (l *Loader) record(v float64) {
	l.angle = v
	if len(l.trace) == TraceLen {
		l.trace = l.trace[1:]
	}
	l.trace = append(l.trace, v)
}

// Label returns the loader's label.
func (l *Loader) Label() string {
	return l.label
}

// SetLabel updates the loader's label.
func (l *Loader) SetLabel(label string) {
	l.label = label
}

// Update samples the engine on this loader's frames.
func (l *Loader) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != l.id || frame.tag != l.tag {
		return nil
	}
	if l.state != anim.Spinning {
		return nil
	}
	l.engine.Tick()
	return l.frame()
}

// View renders the ring above a status line.
func (l *Loader) View() string {
	return l.ring.Render(l.angle) + "\n\n" + l.StatusLine()
}

// StatusLine renders "<symbol> <label> <state>".
func (l *Loader) StatusLine() string {
	name := l.state.String()
	symbolStyle := lipgloss.NewStyle().Foreground(StateColor(name))
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return fmt.Sprintf("%s %s %s",
		symbolStyle.Render(StateSymbol(name)),
		l.label,
		mutedStyle.Render(fmt.Sprintf("%s %4.0f°", name, l.angle)),
	)
}

func (l *Loader) frame() tea.Cmd {
	id, tag := l.id, l.tag
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag, Time: t}
	})
}
