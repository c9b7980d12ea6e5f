package multistate

// OnStateChangeListener is notified after every effective state change.
type OnStateChangeListener interface {
	// OnStateChanged receives the state that was switched to. It runs after
	// the views' visibility has been updated, possibly before a fade ends.
	OnStateChanged(state ViewState)
}

// StateChangeFunc adapts a function to OnStateChangeListener.
type StateChangeFunc func(state ViewState)

// OnStateChanged calls f(state).
func (f StateChangeFunc) OnStateChanged(state ViewState) {
	f(state)
}
