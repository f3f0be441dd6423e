package cli

import (
	"os"

	"github.com/rileyhilliard/statable/internal/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Command-specific flags
var (
	demoStateFlag      string
	demoPick           bool
	demoRemember       bool
	demoAltScreen      bool
	scriptHoldFlag     string
	scriptLabelFlag    string
	scriptDryRun       bool
	statesTransitions  bool
	initForce          bool
	initGlobal         bool
	initNonInteractive bool
)

// demoCmd runs the interactive loader with a state picker
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive loader with a state picker",
	Long: `Open the interactive demo: a ring loader above a segmented picker for
spinning, paused and stopped.

Keys:
  ←/→ or h/l  move the picker     enter  apply
  1-3         jump and apply      space  toggle spinning/paused
  s           stop                q      quit

Examples:
  statable demo
  statable demo --state spinning
  statable demo --pick --remember`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoCommand(cmd.Context(), DemoOptions{
			State:     demoStateFlag,
			Pick:      demoPick,
			Remember:  demoRemember,
			AltScreen: demoAltScreen,
		})
	},
}

// scriptCmd plays a sequence of states inline
var scriptCmd = &cobra.Command{
	Use:   "script <steps>",
	Short: "Play a timed sequence of states inline",
	Long: `Play comma-separated state[:duration] steps on an inline loader.

Steps without a duration hold for --hold (or script.hold in config), except
the last one, which ends playback.

Examples:
  statable script spinning:2s,paused:500ms,spinning:1s,stopped
  statable script --hold 300ms spinning,paused,spinning,stopped
  statable script --dry-run --json spinning:1s,stopped`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scriptCommand(cmd.Context(), ScriptOptions{
			Steps:  args[0],
			Hold:   scriptHoldFlag,
			Label:  scriptLabelFlag,
			DryRun: scriptDryRun,
			Out:    cmd.OutOrStdout(),
		})
	},
}

// statesCmd lists the driving states
var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List the loader states",
	Long: `List the states that drive the loader.

With --transitions, print what the controller does for every pair of
previous and next state, using the loader settings from your config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statesCommand(cmd.OutOrStdout(), statesTransitions)
	},
}

// initCmd writes a default config
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .statable.yaml with the default settings",
	Long: `Write a config file with every setting at its default value.

The project config lands in the current directory; --global writes
~/.config/statable/config.yaml instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Global:         initGlobal,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive || os.Getenv("CI") != "" || !term.IsTerminal(int(os.Stdin.Fd())),
			Out:            cmd.OutOrStdout(),
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for statable.

Examples:
  # Bash
  statable completion bash > /etc/bash_completion.d/statable

  # Zsh
  statable completion zsh > "${fpath[1]}/_statable"

  # Fish
  statable completion fish > ~/.config/fish/completions/statable.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrUI,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// demo command flags
	demoCmd.Flags().StringVar(&demoStateFlag, "state", "", "initial state (spinning, paused, stopped)")
	demoCmd.Flags().BoolVar(&demoPick, "pick", false, "choose the initial state from a menu")
	demoCmd.Flags().BoolVar(&demoRemember, "remember", false, "save the final state as demo.initial in the config")
	demoCmd.Flags().BoolVar(&demoAltScreen, "alt-screen", false, "run full screen (overrides demo.alt_screen)")
	_ = demoCmd.RegisterFlagCompletionFunc("state", completeStates)

	// script command flags
	scriptCmd.Flags().StringVar(&scriptHoldFlag, "hold", "", "hold for steps without a duration (e.g., 500ms, 2s)")
	scriptCmd.Flags().StringVar(&scriptLabelFlag, "label", "", "label shown next to the loader")
	scriptCmd.Flags().BoolVar(&scriptDryRun, "dry-run", false, "print the parsed steps without playing them")

	// states command flags
	statesCmd.Flags().BoolVar(&statesTransitions, "transitions", false, "show the controller's transition table")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write the global config instead")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "never prompt")

	// Register all commands
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(statesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
