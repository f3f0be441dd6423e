package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/statable/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".statable.yaml"
	// GlobalConfigDir is the directory for global config, relative to home.
	GlobalConfigDir = ".config/statable"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'statable init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .statable.yaml in current directory
// 3. .statable.yaml in parent directories (stops at git root or home)
// 4. ~/.config/statable/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	home, _ := os.UserHomeDir()
	if path := findUpward(cwd, home); path != "" {
		return path, nil
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// findUpward walks from dir toward the root looking for ConfigFileName. It
// stops after checking a git root and never climbs above home.
func findUpward(dir, home string) string {
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		if isGitRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir || (home != "" && parent == home) {
			return ""
		}
		dir = parent
	}
}

// LoadOrDefault loads config from the found path, or returns defaults if not
// found. The returned path is empty when defaults are used.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	return cfg, nil
}

// setDefaults registers every default with viper so partially specified
// sections still merge. Durations are handled by viper's decode hooks.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("loader.label", d.Loader.Label)
	v.SetDefault("loader.start", d.Loader.Start)
	v.SetDefault("loader.sweep", d.Loader.Sweep)
	v.SetDefault("loader.stop", d.Loader.Stop)
	v.SetDefault("loader.cycle", d.Loader.Cycle.String())
	v.SetDefault("loader.fps", d.Loader.FPS)
	v.SetDefault("loader.radius", d.Loader.Radius)
	v.SetDefault("loader.segments", d.Loader.Segments)
	v.SetDefault("loader.accent", d.Loader.Accent)
	v.SetDefault("loader.background", d.Loader.Background)
	v.SetDefault("loader.fade", d.Loader.Fade)
	v.SetDefault("demo.initial", d.Demo.Initial)
	v.SetDefault("demo.alt_screen", d.Demo.AltScreen)
	v.SetDefault("script.hold", d.Script.Hold.String())
	v.SetDefault("output.color", d.Output.Color)
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
