package script

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/errors"
	"github.com/rileyhilliard/statable/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPlayer struct {
	mu     sync.Mutex
	states []anim.State
}

func (p *recordingPlayer) SetState(s anim.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, s)
}

func (p *recordingPlayer) recorded() []anim.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]anim.State(nil), p.states...)
}

func TestParse(t *testing.T) {
	steps, err := Parse("spinning:2s, paused:500ms,spinning,stopped", time.Second)
	require.NoError(t, err)

	assert.Equal(t, []Step{
		{State: anim.Spinning, Hold: 2 * time.Second},
		{State: anim.Paused, Hold: 500 * time.Millisecond},
		{State: anim.Spinning, Hold: time.Second},
		{State: anim.Stopped, Hold: 0},
	}, steps)
	assert.Equal(t, 3500*time.Millisecond, Total(steps))
}

func TestParseLastStepKeepsExplicitHold(t *testing.T) {
	steps, err := Parse("spinning:3s", time.Second)
	require.NoError(t, err)
	assert.Equal(t, []Step{{State: anim.Spinning, Hold: 3 * time.Second}}, steps)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"empty", "", "Step 1 is empty"},
		{"double comma", "spinning,,stopped", "Step 2 is empty"},
		{"unknown state", "spinning,running", "unknown state"},
		{"bad duration", "spinning:fast", "invalid duration"},
		{"negative duration", "paused:-1s", "negative duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src, time.Second)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrScript))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "paused:1.5s", Step{State: anim.Paused, Hold: 1500 * time.Millisecond}.String())
	assert.Equal(t, "stopped:0s", Step{State: anim.Stopped}.String())
}

func TestFormatRoundTrips(t *testing.T) {
	tests := []string{
		"spinning:0s,paused",
		"spinning:2s,paused,spinning:250ms,stopped",
		"paused:0s,spinning:0s,stopped:1s",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			steps, err := Parse(src, time.Second)
			require.NoError(t, err)

			again, err := Parse(Format(steps), 5*time.Second)
			require.NoError(t, err)
			assert.Equal(t, steps, again, "formatted as %q", Format(steps))
		})
	}

	steps, err := Parse("spinning:0s,paused", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "spinning:0s,paused:0s", Format(steps))
}

func TestPlay(t *testing.T) {
	p := &recordingPlayer{}
	log := logger.NewBufferLogger()
	steps := []Step{
		{State: anim.Spinning, Hold: 10 * time.Millisecond},
		{State: anim.Paused, Hold: 10 * time.Millisecond},
		{State: anim.Stopped},
	}

	require.NoError(t, Play(context.Background(), p, steps, log))

	assert.Equal(t, []anim.State{anim.Spinning, anim.Paused, anim.Stopped}, p.recorded())
	assert.Equal(t, 3, log.Count("debug"))
}

func TestPlayCancelled(t *testing.T) {
	p := &recordingPlayer{}
	ctx, cancel := context.WithCancel(context.Background())
	steps := []Step{
		{State: anim.Spinning, Hold: time.Hour},
		{State: anim.Stopped},
	}

	done := make(chan error, 1)
	go func() { done <- Play(ctx, p, steps, nil) }()

	require.Eventually(t, func() bool { return len(p.recorded()) == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Play did not return after cancel")
	}
	assert.Equal(t, []anim.State{anim.Spinning}, p.recorded())
}
