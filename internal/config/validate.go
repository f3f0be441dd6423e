package config

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/errors"
	"github.com/rileyhilliard/statable/internal/util"
)

// ColorModes are the accepted values for output.color.
var ColorModes = []string{"auto", "always", "never"}

const maxFPS = 120

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but statable only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade statable or lower the version field")
	}

	if err := validateLoader(cfg.Loader); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'loader' section in your "+ConfigFileName+".")
	}

	if _, err := anim.ParseState(cfg.Demo.Initial); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("demo.initial %q is not a state", cfg.Demo.Initial),
			"Use one of: "+util.JoinOrDefault(anim.StateNames(), "(none)"))
	}

	if cfg.Script.Hold <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("script.hold must be positive, got %s", cfg.Script.Hold),
			"Use a duration like 500ms or 1s")
	}

	if !contains(ColorModes, cfg.Output.Color) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color %q isn't a color mode", cfg.Output.Color),
			"Use one of: "+util.JoinOrDefault(ColorModes, "(none)"))
	}

	return nil
}

func validateLoader(l LoaderConfig) error {
	angles := []struct {
		key   string
		value float64
	}{
		{"loader.start", l.Start},
		{"loader.sweep", l.Sweep},
		{"loader.stop", l.Stop},
	}
	for _, a := range angles {
		if !finite(a.value) {
			return fmt.Errorf("%s must be a finite angle, got %g", a.key, a.value)
		}
	}
	// A zero sweep is allowed: the loader spins in place without visible motion.
	if l.Cycle <= 0 {
		return fmt.Errorf("loader.cycle must be positive, got %s", l.Cycle)
	}
	if l.FPS < 1 || l.FPS > maxFPS {
		return fmt.Errorf("loader.fps must be between 1 and %d, got %d", maxFPS, l.FPS)
	}
	if l.Radius < 1 {
		return fmt.Errorf("loader.radius must be at least 1, got %d", l.Radius)
	}
	if l.Segments < 4 {
		return fmt.Errorf("loader.segments must be at least 4, got %d", l.Segments)
	}
	if !finite(l.Fade) || l.Fade < 0 || l.Fade > 1 {
		return fmt.Errorf("loader.fade must be between 0 and 1, got %g", l.Fade)
	}
	if _, err := colorful.Hex(l.Accent); err != nil {
		return fmt.Errorf("loader.accent %q is not a hex color", l.Accent)
	}
	if _, err := colorful.Hex(l.Background); err != nil {
		return fmt.Errorf("loader.background %q is not a hex color", l.Background)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
