// Package cli implements the statable command-line interface.
//
// Commands are Cobra commands registered on rootCmd in init functions. Each
// RunE delegates to a plain function (demoCommand, scriptCommand, Init) so the
// behavior can be tested without going through flag parsing.
//
// # Command Structure
//
//	statable demo [--state s] [--pick]  - Interactive loader and state picker
//	statable script <steps>             - Play state[:duration] steps inline
//	statable states                     - List the driving states
//	statable init [--force] [--global]  - Write a default .statable.yaml
//	statable version                    - Build information
//	statable completion <shell>         - Shell completion scripts
//
// # Configuration
//
// The root PersistentPreRunE loads and validates the config once (explicit
// --config, then .statable.yaml searched upward, then the global file) and
// applies --no-color. Commands read it through currentConfig.
//
// # Machine Output
//
// --json switches states, script --dry-run, version and errors to the JSON
// envelope in json.go.
package cli
