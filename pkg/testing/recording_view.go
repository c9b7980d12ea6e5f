package testing

import (
	"github.com/go-drift/multistate/pkg/view"
)

// RecordingView is a leaf view that records every visibility and alpha write.
type RecordingView struct {
	view.ViewBase

	// VisibilityWrites lists every SetVisibility argument, in order.
	VisibilityWrites []view.Visibility
	// AlphaWrites lists every SetAlpha argument, in order.
	AlphaWrites []float64
}

// NewRecordingView returns a visible, opaque RecordingView.
func NewRecordingView(name string) *RecordingView {
	v := &RecordingView{}
	v.SetName(name)
	return v
}

// SetVisibility records and applies v.
func (r *RecordingView) SetVisibility(v view.Visibility) {
	r.VisibilityWrites = append(r.VisibilityWrites, v)
	r.ViewBase.SetVisibility(v)
}

// SetAlpha records and applies alpha.
func (r *RecordingView) SetAlpha(alpha float64) {
	r.AlphaWrites = append(r.AlphaWrites, alpha)
	r.ViewBase.SetAlpha(alpha)
}

// Writes returns the total number of recorded writes.
func (r *RecordingView) Writes() int {
	return len(r.VisibilityWrites) + len(r.AlphaWrites)
}

// Reset clears the recorded writes.
func (r *RecordingView) Reset() {
	r.VisibilityWrites = nil
	r.AlphaWrites = nil
}
