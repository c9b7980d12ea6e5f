package view

import (
	stderrors "errors"
	"reflect"
	"slices"

	"github.com/go-drift/multistate/pkg/errors"
)

// ErrNilView is returned when a nil view is inserted.
var ErrNilView = stderrors.New("view is nil")

// Group is a view that owns an ordered list of children, drawn on top of
// each other in insertion order. The zero value is an empty, visible group.
type Group struct {
	ViewBase
	children []View

	// OnChildAdded runs for every insertion, after validation and before the
	// child joins the group. Containers use it to classify new children.
	OnChildAdded func(child View)
}

// NewGroup returns an empty group with the given name.
func NewGroup(name string) *Group {
	g := &Group{}
	g.SetName(name)
	return g
}

// AddView appends a child.
func (g *Group) AddView(child View) error {
	return g.AddViewAt(child, -1)
}

// AddViewAt inserts a child at index. A negative or out-of-range index
// appends. A view may only have one parent.
func (g *Group) AddViewAt(child View, index int) error {
	const op = "view.Group.AddView"
	if IsNil(child) {
		return errors.Usage(op, "", ErrNilView)
	}
	if child.Parent() != nil {
		return errors.Usage(op, "", errors.ErrAlreadyParented)
	}
	if g.OnChildAdded != nil {
		g.OnChildAdded(child)
	}
	if index < 0 || index > len(g.children) {
		index = len(g.children)
	}
	g.children = slices.Insert(g.children, index, child)
	child.base().parent = g
	return nil
}

// RemoveView detaches a child. It reports whether the child was present.
func (g *Group) RemoveView(child View) bool {
	i := g.IndexOf(child)
	if i < 0 {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	child.base().parent = nil
	return true
}

// RemoveAllViews detaches every child.
func (g *Group) RemoveAllViews() {
	for _, child := range g.children {
		child.base().parent = nil
	}
	g.children = nil
}

// IndexOf returns the child's index, or -1.
func (g *Group) IndexOf(child View) int {
	if IsNil(child) {
		return -1
	}
	return slices.IndexFunc(g.children, func(v View) bool { return v == child })
}

// Contains reports whether child is a direct child of g.
func (g *Group) Contains(child View) bool {
	return g.IndexOf(child) >= 0
}

// ChildCount returns the number of children.
func (g *Group) ChildCount() int {
	return len(g.children)
}

// ChildAt returns the child at index, or nil when out of range.
func (g *Group) ChildAt(index int) View {
	if index < 0 || index >= len(g.children) {
		return nil
	}
	return g.children[index]
}

// Children returns a copy of the child list.
func (g *Group) Children() []View {
	return slices.Clone(g.children)
}

// VisibleChildren returns the children whose visibility is Visible.
func (g *Group) VisibleChildren() []View {
	var out []View
	for _, child := range g.children {
		if child.Visibility() == Visible {
			out = append(out, child)
		}
	}
	return out
}

// IsNil reports whether v is nil or a nil pointer held in the View interface,
// such as (*Box)(nil).
func IsNil(v View) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
