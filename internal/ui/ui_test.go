package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSymbol(t *testing.T) {
	assert.Equal(t, SymbolSpinning, StateSymbol("spinning"))
	assert.Equal(t, SymbolPaused, StateSymbol("paused"))
	assert.Equal(t, SymbolStopped, StateSymbol("stopped"))
	assert.Equal(t, SymbolStopped, StateSymbol("unknown"))
}

func TestStateColor(t *testing.T) {
	assert.Equal(t, ColorInfo, StateColor("spinning"))
	assert.Equal(t, ColorWarning, StateColor("paused"))
	assert.Equal(t, ColorMuted, StateColor("stopped"))
}

func TestDisableColors(t *testing.T) {
	plainOutput(t)
	DisableColors()
	assert.False(t, ColorsEnabled())
}

func TestForceColors(t *testing.T) {
	plainOutput(t)
	ForceColors()
	assert.True(t, ColorsEnabled())
}

func TestRenderHeader(t *testing.T) {
	plainOutput(t)

	out := RenderHeader(HeaderInfo{Version: "v1.0.0", Tagline: "state-driven loader", Config: "/tmp/.statable.yaml"})

	assert.Contains(t, out, "statable v1.0.0")
	assert.Contains(t, out, "state-driven loader")
	assert.Contains(t, out, "config: /tmp/.statable.yaml")
	assert.Contains(t, out, "━━━━")
}

func TestRenderHeaderMinimal(t *testing.T) {
	plainOutput(t)

	out := RenderHeader(HeaderInfo{})

	assert.Contains(t, out, "statable\n")
	assert.NotContains(t, out, "config:")
}
