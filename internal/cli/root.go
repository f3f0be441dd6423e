package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/config"
	"github.com/rileyhilliard/statable/internal/logger"
	"github.com/rileyhilliard/statable/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// Loaded by PersistentPreRunE; commands read these instead of reloading.
var (
	cfg     *config.Config
	cfgPath string
)

var log = logger.NewEnvLogger("[cli]")

var rootCmd = &cobra.Command{
	Use:   "statable",
	Short: "A loading indicator driven by spinning, paused and stopped states",
	Long: `statable renders a rotating ring whose motion is driven by a three-state
model. Spinning starts a looping sweep, paused freezes the ring where it is,
and stopped resets it to the rest angle.

Try the interactive demo, or play a script of states inline:
  statable demo
  statable script spinning:2s,paused:1s,spinning:1s,stopped`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .statable.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "print machine-readable JSON where supported")
}

// loadConfig resolves, loads and validates the config, then applies output
// settings. Commands that don't need it still get the color handling.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg, cfgPath = loaded, path

	if path != "" {
		log.Debug("loaded config from %s", path)
	}
	applyColorMode(loaded.Output.Color, noColor)
	return nil
}

// applyColorMode maps --no-color, NO_COLOR and output.color onto the lipgloss
// color profile. "auto" keeps lipgloss's own terminal detection.
func applyColorMode(mode string, flag bool) {
	switch {
	case flag || mode == "never" || os.Getenv("NO_COLOR") != "":
		ui.DisableColors()
	case mode == "always":
		ui.ForceColors()
	}
}

// Execute runs the root command and exits non-zero on failure. An interrupt
// cancels the command's context so inline playback can finish its line.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	if machineMode {
		_ = WriteJSONFromError(os.Stdout, err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	if isUnknownCommandError(err) {
		if hint := unknownCommandHint(extractUnknownCommand(err)); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
	}
	os.Exit(1)
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the quoted command out of cobra's
// `unknown command "foo" for "statable"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// unknownCommandHint points people who type a state as a command at the
// flag that takes it.
func unknownCommandHint(name string) string {
	if name == "" {
		return ""
	}
	if _, err := anim.ParseState(name); err == nil {
		return fmt.Sprintf("  Did you mean: statable demo --state %s", strings.ToLower(name))
	}
	return "  Run 'statable --help' to see available commands."
}

// currentConfig returns the loaded config, or defaults when a command runs
// without the root pre-run (tests).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}
