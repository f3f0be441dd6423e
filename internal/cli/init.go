package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/statable/internal/config"
	"github.com/rileyhilliard/statable/internal/errors"
	"github.com/rileyhilliard/statable/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory for the project config; defaults to "."
	Global         bool   // Write ~/.config/statable/config.yaml instead
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Never prompt
	Out            io.Writer
}

// Init writes a config file populated with the defaults.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	path, err := initPath(opts)
	if err != nil {
		return err
	}

	overwrite := opts.Overwrite
	if _, err := os.Stat(path); err == nil && !overwrite && !opts.NonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(path, config.DefaultConfig(), overwrite); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Wrote %s\n", ui.SymbolComplete, path)
	return nil
}

func initPath(opts InitOptions) (string, error) {
	if opts.Global {
		return globalConfigPath()
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, config.ConfigFileName), nil
}

func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Can't locate your home directory",
			"Set HOME or write a project config without --global")
	}
	return filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile), nil
}
