package demo

import (
	"context"
	stderrors "errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/errors"
	"github.com/rileyhilliard/statable/internal/logger"
	"github.com/rileyhilliard/statable/internal/ui"
	"golang.org/x/term"
)

// DebugLogFile receives Bubble Tea debug output when STATABLE_DEBUG is set,
// since stderr is owned by the program while it runs.
const DebugLogFile = "statable-debug.log"

// Options configures Run.
type Options struct {
	Loader    ui.LoaderOptions
	AltScreen bool
}

// Run starts the demo and blocks until the user quits or ctx ends. It returns
// the state the loader was left in.
func Run(ctx context.Context, opts Options) (anim.State, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return opts.Loader.Initial, errors.New(errors.ErrUI,
			"The demo needs an interactive terminal",
			"Use 'statable script spinning:2s,paused:1s,stopped' for non-interactive output.")
	}

	if logger.DebugEnabled() {
		f, err := tea.LogToFile(DebugLogFile, "demo")
		if err != nil {
			return opts.Loader.Initial, errors.WrapWithCode(err, errors.ErrUI,
				"Couldn't open the debug log",
				"Unset STATABLE_DEBUG or make the current directory writable.")
		}
		defer f.Close()
		opts.Loader.Logger = logger.NewEnvLogger("[demo]")
	}

	loader, err := ui.NewLoader(opts.Loader)
	if err != nil {
		return opts.Loader.Initial, err
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(NewModel(loader), programOpts...).Run()
	if err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
		return loader.State(), errors.WrapWithCode(err, errors.ErrUI,
			"The demo exited unexpectedly",
			"Try again with STATABLE_DEBUG=1 and check "+DebugLogFile+".")
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return loader.State(), nil
}
