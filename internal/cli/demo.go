package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/config"
	"github.com/rileyhilliard/statable/internal/demo"
	"github.com/rileyhilliard/statable/internal/errors"
	"github.com/rileyhilliard/statable/internal/ui"
)

// DemoOptions holds options for the demo command.
type DemoOptions struct {
	State     string // Initial state; empty uses demo.initial
	Pick      bool   // Prompt for the initial state
	Remember  bool   // Save the final state to the config
	AltScreen bool
}

func demoCommand(ctx context.Context, opts DemoOptions) error {
	c := currentConfig()

	configured, err := anim.ParseState(c.Demo.Initial)
	if err != nil {
		return err
	}
	initial, err := parseStateFlag(opts.State, configured)
	if err != nil {
		return err
	}
	if opts.Pick {
		if initial, err = ui.PromptState(initial); err != nil {
			return err
		}
	}

	loader := loaderOptions(c)
	loader.Initial = initial

	final, err := demo.Run(ctx, demo.Options{
		Loader:    loader,
		AltScreen: opts.AltScreen || c.Demo.AltScreen,
	})
	if err != nil {
		return err
	}
	log.Debug("demo finished in state %s", final)

	if opts.Remember {
		path, err := rememberState(cfgPath, final)
		if err != nil {
			return err
		}
		fmt.Printf("%s Saved demo.initial: %s to %s\n", ui.SymbolComplete, final, path)
	}
	return nil
}

// rememberState writes state as demo.initial. With no config in play it
// creates a project config in the current directory.
func rememberState(path string, state anim.State) (string, error) {
	if path == "" {
		path = filepath.Join(".", config.ConfigFileName)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fresh := config.DefaultConfig()
		fresh.Demo.Initial = state.String()
		return path, config.Write(path, fresh, false)
	}

	if err := config.SetDemoInitial(path, state.String()); err != nil {
		return path, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't save the demo state to "+path,
			"Check the file is valid YAML, or run 'statable init --force'")
	}
	return path, nil
}
