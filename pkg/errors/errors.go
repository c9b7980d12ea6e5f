// Package errors provides structured error handling for multi-state views.
//
// Misconfiguration (activating a state that has no bound view, binding the
// Unknown state, binding one view into two slots) is reported as a
// [StateError]. The error is both returned to the caller and sent to the
// global [ErrorHandler], so a configuration bug is loud even when a caller
// drops the returned error.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMissingView indicates a state was activated without a bound view.
	KindMissingView
	// KindInvalidState indicates the Unknown state was used where a slot was required.
	KindInvalidState
	// KindUsage indicates an API misuse, such as binding one view to two slots.
	KindUsage
	// KindConfig indicates invalid declarative configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingView:
		return "missing_view"
	case KindInvalidState:
		return "invalid_state"
	case KindUsage:
		return "usage"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by [StateError]. Match them with errors.Is.
var (
	// ErrMissingView is wrapped when the state being shown has no bound view.
	ErrMissingView = stderrors.New("no view bound to state")
	// ErrInvalidState is wrapped when Unknown is bound or activated as a slot.
	ErrInvalidState = stderrors.New("state is not a concrete slot")
	// ErrDuplicateView is wrapped when a view is already bound to another slot.
	ErrDuplicateView = stderrors.New("view is already bound to another slot")
	// ErrAlreadyParented is wrapped when a view is inserted into a second parent.
	ErrAlreadyParented = stderrors.New("view already has a parent")
)

// StateError represents a structured error raised by a multi-state view.
type StateError struct {
	// Op is the operation that failed (e.g., "multistate.SetViewState").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// State is the name of the view state involved, if applicable.
	State string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StateError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("%s [%s] state=%s: %v", e.Op, e.Kind, e.State, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// MissingView returns a KindMissingView error for the given state.
func MissingView(op, state string) *StateError {
	return &StateError{Op: op, Kind: KindMissingView, State: state, Err: ErrMissingView}
}

// InvalidState returns a KindInvalidState error for the given state.
func InvalidState(op, state string) *StateError {
	return &StateError{Op: op, Kind: KindInvalidState, State: state, Err: ErrInvalidState}
}

// Usage returns a KindUsage error wrapping err.
func Usage(op, state string, err error) *StateError {
	return &StateError{Op: op, Kind: KindUsage, State: state, Err: err}
}

// Config returns a KindConfig error wrapping err.
func Config(op string, err error) *StateError {
	return &StateError{Op: op, Kind: KindConfig, Err: err}
}

// KindOf returns the kind of the first StateError in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var se *StateError
	if stderrors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "multistate.onFadeOutEnd").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by multi-state views.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StateError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
