package multistate

import (
	"github.com/go-drift/multistate/pkg/errors"
	"github.com/go-drift/multistate/pkg/view"
)

// Registry binds each concrete ViewState to at most one view.
//
// It is a fixed record rather than a map, so the set of slots is closed.
// The registry holds references only; the owning container inserts and
// removes the views.
type Registry struct {
	content view.View
	errorV  view.View
	empty   view.View
	loading view.View
}

func (r *Registry) slot(state ViewState) *view.View {
	switch state {
	case StateContent:
		return &r.content
	case StateError:
		return &r.errorV
	case StateEmpty:
		return &r.empty
	case StateLoading:
		return &r.loading
	default:
		return nil
	}
}

// Register binds v to state and returns the view it displaced, if any.
// Binding the same view to its current slot is a no-op. A view bound to a
// different slot is rejected with ErrDuplicateView.
func (r *Registry) Register(state ViewState, v view.View) (evicted view.View, err error) {
	const op = "multistate.Registry.Register"
	slot := r.slot(state)
	if slot == nil {
		return nil, errors.InvalidState(op, state.String())
	}
	if view.IsNil(v) {
		return nil, errors.Usage(op, state.String(), view.ErrNilView)
	}
	if owner := r.SlotOf(v); owner != StateUnknown {
		if owner == state {
			return nil, nil
		}
		return nil, errors.Usage(op, state.String(), errors.ErrDuplicateView)
	}
	evicted = *slot
	*slot = v
	return evicted, nil
}

// Unbind clears state's slot and returns the view that was bound.
func (r *Registry) Unbind(state ViewState) view.View {
	slot := r.slot(state)
	if slot == nil {
		return nil
	}
	v := *slot
	*slot = nil
	return v
}

// Resolve returns the view bound to state, or nil for Unknown or an unbound slot.
func (r *Registry) Resolve(state ViewState) view.View {
	if slot := r.slot(state); slot != nil {
		return *slot
	}
	return nil
}

// SlotOf returns the state v is bound to, or StateUnknown.
func (r *Registry) SlotOf(v view.View) ViewState {
	if v == nil {
		return StateUnknown
	}
	for _, s := range Slots() {
		if r.Resolve(s) == v {
			return s
		}
	}
	return StateUnknown
}

// IsReservedView reports whether v is the current loading, error or empty view.
// Reserved views are never adopted as content.
func (r *Registry) IsReservedView(v view.View) bool {
	if v == nil {
		return false
	}
	return v == r.loading || v == r.errorV || v == r.empty
}

// Views returns the bound views in slot order.
func (r *Registry) Views() []view.View {
	var out []view.View
	for _, s := range Slots() {
		if v := r.Resolve(s); v != nil {
			out = append(out, v)
		}
	}
	return out
}
