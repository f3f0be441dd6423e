package anim

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/statable/internal/errors"
)

// State is the driving state of a loader animation.
type State int

const (
	Spinning State = iota
	Paused
	Stopped
)

var stateNames = [...]string{
	Spinning: "spinning",
	Paused:   "paused",
	Stopped:  "stopped",
}

// States returns every state in declared order, for pickers and completion.
func States() []State {
	return []State{Spinning, Paused, Stopped}
}

// StateNames returns the names of States() in the same order.
func StateNames() []string {
	names := make([]string, 0, len(stateNames))
	for _, s := range States() {
		names = append(names, s.String())
	}
	return names
}

// String returns the lowercase state name.
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// ID returns the stable key used for list identity in the UI.
func (s State) ID() string {
	return s.String()
}

// Valid reports whether s is one of the three declared states.
func (s State) Valid() bool {
	return s >= Spinning && s <= Stopped
}

// ParseState converts a state name (case-insensitive) into a State.
func ParseState(name string) (State, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for _, s := range States() {
		if s.String() == trimmed {
			return s, nil
		}
	}
	return Stopped, errors.New(errors.ErrState,
		fmt.Sprintf("Unknown state %q", name),
		"Use one of: "+strings.Join(StateNames(), ", "))
}

// MarshalText implements encoding.TextMarshaler so states round-trip through
// config files and flags by name.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.New(errors.ErrState,
			fmt.Sprintf("Cannot encode state %d", int(s)),
			"Use one of: "+strings.Join(StateNames(), ", "))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
