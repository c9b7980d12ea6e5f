package multistate

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ViewState is one of the mutually exclusive states a MultiStateView shows.
// The numeric values match the declarative attribute values hosts use.
type ViewState int

const (
	// StateUnknown is the "no state" sentinel. It never has a view.
	StateUnknown ViewState = -1
	// StateContent shows the loaded data.
	StateContent ViewState = 0
	// StateError shows a failure.
	StateError ViewState = 1
	// StateEmpty shows that loading succeeded with nothing to display.
	StateEmpty ViewState = 2
	// StateLoading shows progress.
	StateLoading ViewState = 3
)

// Slots returns the four concrete states in declaration order.
func Slots() []ViewState {
	return []ViewState{StateContent, StateError, StateEmpty, StateLoading}
}

// IsSlot reports whether s is a concrete state that can hold a view.
func (s ViewState) IsSlot() bool {
	switch s {
	case StateContent, StateError, StateEmpty, StateLoading:
		return true
	default:
		return false
	}
}

// String returns a human-readable representation of the view state.
func (s ViewState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateContent:
		return "content"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	default:
		return fmt.Sprintf("ViewState(%d)", int(s))
	}
}

// ParseViewState parses a state name ("loading"), a prefixed constant name
// ("STATE_LOADING") or its numeric value ("3"). Matching is case-insensitive.
func ParseViewState(text string) (ViewState, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	name = strings.TrimPrefix(name, "state_")
	if n, err := strconv.Atoi(name); err == nil {
		s := ViewState(n)
		if s == StateUnknown || s.IsSlot() {
			return s, nil
		}
		return StateUnknown, fmt.Errorf("unknown view state %d", n)
	}
	for _, s := range append([]ViewState{StateUnknown}, Slots()...) {
		if s.String() == name {
			return s, nil
		}
	}
	return StateUnknown, fmt.Errorf("unknown view state %q", text)
}

// MarshalText implements encoding.TextMarshaler.
func (s ViewState) MarshalText() ([]byte, error) {
	if s != StateUnknown && !s.IsSlot() {
		return nil, fmt.Errorf("unknown view state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ViewState) UnmarshalText(text []byte) error {
	parsed, err := ParseViewState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML writes the state by name.
func (s ViewState) MarshalYAML() (any, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML accepts any form ParseViewState accepts.
func (s *ViewState) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: view state must be a scalar", node.Line)
	}
	parsed, err := ParseViewState(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = parsed
	return nil
}
