package cli

import (
	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/config"
	"github.com/rileyhilliard/statable/internal/ui"
	"github.com/spf13/cobra"
)

// loaderOptions converts the loader section of cfg into widget options.
func loaderOptions(cfg *config.Config) ui.LoaderOptions {
	l := cfg.Loader
	return ui.LoaderOptions{
		Label:   l.Label,
		Start:   l.Start,
		Sweep:   l.Sweep,
		Stop:    l.Stop,
		Cycle:   l.Cycle,
		FPS:     l.FPS,
		Initial: anim.Stopped,
		Ring: ui.RingStyle{
			Radius:     l.Radius,
			Segments:   l.Segments,
			Accent:     l.Accent,
			Background: l.Background,
			Fade:       l.Fade,
		},
		Logger: log,
	}
}

// parseStateFlag resolves a --state value, falling back to def when empty.
func parseStateFlag(value string, def anim.State) (anim.State, error) {
	if value == "" {
		return def, nil
	}
	return anim.ParseState(value)
}

// completeStates offers state names for --state and script arguments.
func completeStates(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return anim.StateNames(), cobra.ShellCompDirectiveNoFileComp
}
