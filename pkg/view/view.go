// Package view is the small retained view hierarchy a multi-state container
// lives in.
//
// A [View] has a visibility and an alpha and belongs to at most one [Group].
// Views are identified by pointer. Concrete views embed [ViewBase], which
// implements the whole interface:
//
//	type spinner struct {
//	    view.ViewBase
//	    frames int
//	}
//
// Layout and painting are out of scope; pkg/snapshot renders a group's visible
// children for debugging.
package view

import (
	"fmt"

	"github.com/google/uuid"
)

// Visibility controls whether a view is shown.
type Visibility int

const (
	// Visible views are shown.
	Visible Visibility = iota
	// Invisible views are not shown but keep their space.
	Invisible
	// Gone views are not shown and take no space.
	Gone
)

// String returns a human-readable representation of the visibility.
func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// View is a node in the view hierarchy.
type View interface {
	// Name is a human-readable label used in logs and snapshots.
	Name() string
	// ID is a stable unique identifier.
	ID() uuid.UUID
	Visibility() Visibility
	SetVisibility(v Visibility)
	// Alpha is the opacity in [0, 1]. New views are fully opaque.
	Alpha() float64
	SetAlpha(alpha float64)
	// Parent returns the group holding the view, or nil.
	Parent() *Group

	base() *ViewBase
}

// ViewBase implements View. Embed it in concrete views.
// The zero value is a visible, fully opaque, unnamed view.
type ViewBase struct {
	name       string
	id         uuid.UUID
	visibility Visibility
	// transparency is 1-alpha so the zero value is opaque.
	transparency float64
	parent       *Group
}

func (b *ViewBase) base() *ViewBase { return b }

// Name returns the view's label.
func (b *ViewBase) Name() string {
	if b.name == "" {
		return "view"
	}
	return b.name
}

// SetName sets the view's label.
func (b *ViewBase) SetName(name string) {
	b.name = name
}

// ID returns the view's identifier, assigning one on first use.
func (b *ViewBase) ID() uuid.UUID {
	if b.id == uuid.Nil {
		b.id = uuid.New()
	}
	return b.id
}

// Visibility returns the current visibility.
func (b *ViewBase) Visibility() Visibility {
	return b.visibility
}

// SetVisibility sets the visibility.
func (b *ViewBase) SetVisibility(v Visibility) {
	b.visibility = v
}

// IsShown reports whether the view is visible with non-zero alpha.
func (b *ViewBase) IsShown() bool {
	return b.visibility == Visible && b.Alpha() > 0
}

// Alpha returns the opacity.
func (b *ViewBase) Alpha() float64 {
	return 1 - b.transparency
}

// SetAlpha sets the opacity, clamped to [0, 1].
func (b *ViewBase) SetAlpha(alpha float64) {
	switch {
	case alpha < 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	b.transparency = 1 - alpha
}

// Parent returns the group holding the view, or nil.
func (b *ViewBase) Parent() *Group {
	return b.parent
}

// Box is a plain leaf view.
type Box struct {
	ViewBase
}

// NewBox returns a visible, opaque box with the given name.
func NewBox(name string) *Box {
	b := &Box{}
	b.SetName(name)
	b.ID()
	return b
}

func (b *Box) String() string {
	return fmt.Sprintf("Box(%s)", b.Name())
}
