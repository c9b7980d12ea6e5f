package view

import (
	stderrors "errors"
	"fmt"
	"slices"
	"sync"

	"github.com/go-drift/multistate/pkg/errors"
)

// ErrUnknownTemplate is returned when an Inflater has no template for a ref.
var ErrUnknownTemplate = stderrors.New("unknown view template")

// Inflater turns a template reference into a new, unparented view.
// The parent is passed for context only; the inflater must not insert the
// view into it.
type Inflater interface {
	Inflate(ref string, parent *Group) (View, error)
}

// InflaterFunc adapts a function to Inflater.
type InflaterFunc func(ref string, parent *Group) (View, error)

// Inflate calls f(ref, parent).
func (f InflaterFunc) Inflate(ref string, parent *Group) (View, error) {
	return f(ref, parent)
}

// TemplateInflater resolves references against registered factories.
// It is safe for concurrent registration and inflation.
type TemplateInflater struct {
	mu        sync.RWMutex
	factories map[string]func() View
}

// NewTemplateInflater returns an empty TemplateInflater.
func NewTemplateInflater() *TemplateInflater {
	return &TemplateInflater{factories: make(map[string]func() View)}
}

// Register binds name to factory, replacing any previous factory.
func (t *TemplateInflater) Register(name string, factory func() View) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.factories[name] = factory
}

// Names returns the registered template names, sorted.
func (t *TemplateInflater) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.factories))
	for name := range t.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Inflate builds a new view from the template registered under ref.
func (t *TemplateInflater) Inflate(ref string, parent *Group) (View, error) {
	const op = "view.TemplateInflater.Inflate"
	t.mu.RLock()
	factory, ok := t.factories[ref]
	t.mu.RUnlock()
	if !ok {
		return nil, errors.Config(op, fmt.Errorf("%w: %q", ErrUnknownTemplate, ref))
	}
	v := factory()
	if IsNil(v) {
		return nil, errors.Config(op, fmt.Errorf("template %q produced a nil view", ref))
	}
	if v.Parent() != nil {
		return nil, errors.Usage(op, "", errors.ErrAlreadyParented)
	}
	return v, nil
}
