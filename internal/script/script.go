// Package script plays a timed sequence of loader states, e.g.
//
//	spinning:2s,paused:500ms,spinning:1s,stopped
//
// Each step names a state and how long to hold it. A step without a duration
// holds for the configured default, except the last step, which is applied
// and ends playback immediately.
package script

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/errors"
	"github.com/rileyhilliard/statable/internal/logger"
	"github.com/rileyhilliard/statable/internal/util"
)

// Step is one state held for a duration.
type Step struct {
	State anim.State
	Hold  time.Duration
}

// String renders the step in script syntax. The hold is always written, so a
// zero hold stays zero when parsed again instead of taking the default.
func (s Step) String() string {
	return fmt.Sprintf("%s:%s", s.State, s.Hold)
}

// Format renders steps as a script that Parse reads back to the same steps.
func Format(steps []Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// Player receives the states of a script. *ui.Spinner implements it.
type Player interface {
	SetState(anim.State)
}

// Parse splits a comma-separated script into steps. defaultHold applies to
// steps without an explicit duration, other than the last.
func Parse(src string, defaultHold time.Duration) ([]Step, error) {
	parts := strings.Split(src, ",")
	steps := make([]Step, 0, len(parts))

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.New(errors.ErrScript,
				fmt.Sprintf("Step %d is empty", i+1),
				"Separate steps with single commas, e.g. spinning:1s,paused")
		}

		name, holdText, hasHold := strings.Cut(part, ":")
		state, err := anim.ParseState(name)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrScript,
				fmt.Sprintf("Step %d has an unknown state %q", i+1, name),
				"Use one of: "+util.JoinOrDefault(anim.StateNames(), "(none)"))
		}

		step := Step{State: state}
		switch {
		case hasHold:
			hold, err := time.ParseDuration(strings.TrimSpace(holdText))
			if err != nil {
				return nil, errors.WrapWithCode(err, errors.ErrScript,
					fmt.Sprintf("Step %d has an invalid duration %q", i+1, holdText),
					"Use a duration like 500ms or 2s")
			}
			if hold < 0 {
				return nil, errors.New(errors.ErrScript,
					fmt.Sprintf("Step %d has a negative duration", i+1),
					"Durations must be zero or positive")
			}
			step.Hold = hold
		case i < len(parts)-1:
			step.Hold = defaultHold
		}
		steps = append(steps, step)
	}

	return steps, nil
}

// Total returns the summed hold time of steps.
func Total(steps []Step) time.Duration {
	var total time.Duration
	for _, s := range steps {
		total += s.Hold
	}
	return total
}

// Play applies each step to p and waits out its hold. It returns ctx.Err() if
// the context ends first, leaving p in the state of the interrupted step.
func Play(ctx context.Context, p Player, steps []Step, log logger.Logger) error {
	if log == nil {
		log = logger.Noop()
	}

	for i, step := range steps {
		log.Debug("step %d/%d: %s", i+1, len(steps), step)
		p.SetState(step.State)

		if step.Hold == 0 {
			continue
		}
		timer := time.NewTimer(step.Hold)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
