package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/statable/internal/errors"
	"github.com/rileyhilliard/statable/internal/script"
	"github.com/rileyhilliard/statable/internal/ui"
	"github.com/rileyhilliard/statable/internal/util"
)

// ScriptOptions holds options for the script command.
type ScriptOptions struct {
	Steps  string
	Hold   string // Overrides script.hold when set
	Label  string // Overrides loader.label when set
	DryRun bool
	Out    io.Writer
}

// scriptStep is the JSON form of a parsed step.
type scriptStep struct {
	State  string `json:"state"`
	HoldMS int64  `json:"hold_ms"`
}

func scriptCommand(ctx context.Context, opts ScriptOptions) error {
	c := currentConfig()

	hold := c.Script.Hold
	if opts.Hold != "" {
		d, err := time.ParseDuration(opts.Hold)
		if err != nil || d <= 0 {
			return errors.New(errors.ErrScript,
				fmt.Sprintf("'%s' doesn't look like a valid hold", opts.Hold),
				"Try something like 500ms or 2s.")
		}
		hold = d
	}

	steps, err := script.Parse(opts.Steps, hold)
	if err != nil {
		return err
	}

	if opts.DryRun {
		return printPlan(opts.Out, steps)
	}

	loader := loaderOptions(c)
	if opts.Label != "" {
		loader.Label = opts.Label
	}
	spinner, err := ui.NewSpinner(loader)
	if err != nil {
		return err
	}
	spinner.SetOutput(func(s string) { fmt.Fprint(opts.Out, s) })

	fmt.Fprint(opts.Out, ui.RenderHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		Tagline: script.Total(steps).String() + " of scripted states",
		Config:  cfgPath,
	}))

	err = script.Play(ctx, spinner, steps, log)
	spinner.Done()
	if stderrors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printPlan(w io.Writer, steps []script.Step) error {
	if machineMode {
		plan := make([]scriptStep, len(steps))
		for i, s := range steps {
			plan[i] = scriptStep{State: s.State.String(), HoldMS: s.Hold.Milliseconds()}
		}
		return WriteJSONSuccess(w, plan)
	}

	for i, s := range steps {
		hold := s.Hold.String()
		if s.Hold == 0 && i == len(steps)-1 {
			hold = "end"
		}
		fmt.Fprintf(w, "%2d. %s %-8s %s\n", i+1, ui.StateSymbol(s.State.String()), s.State, hold)
	}
	fmt.Fprintf(w, "total: %s over %d %s\n", script.Total(steps), len(steps), util.Pluralize(len(steps), "step", "steps"))
	fmt.Fprintf(w, "script: %s\n", script.Format(steps))
	return nil
}
