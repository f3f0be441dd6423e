package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/errors"
)

// stateOptions builds select options in declared state order.
func stateOptions() []huh.Option[anim.State] {
	options := make([]huh.Option[anim.State], 0, len(anim.States()))
	for _, s := range anim.States() {
		options = append(options, huh.NewOption(StateSymbol(s.String())+" "+s.String(), s))
	}
	return options
}

// PromptState asks for a loader state with a Huh select. The current value is
// preselected. Cancelling returns current unchanged with an error.
func PromptState(current anim.State) (anim.State, error) {
	selected := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[anim.State]().
				Title("Start the loader as").
				Options(stateOptions()...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return current, errors.WrapWithCode(err, errors.ErrUI,
			"State selection cancelled",
			"Pass --state to skip the prompt")
	}
	return selected, nil
}
