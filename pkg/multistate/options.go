package multistate

import (
	"time"

	"github.com/go-drift/multistate/pkg/view"
)

// Options configures a MultiStateView at construction.
//
// The zero value is valid: initial state Content, no animation, no
// templates. pkg/config builds Options from a YAML file.
type Options struct {
	// Name labels the container in logs and snapshots.
	Name string

	// LoadingTemplate, EmptyTemplate and ErrorTemplate are references
	// resolved through Inflater at construction. Empty means unset.
	LoadingTemplate string
	EmptyTemplate   string
	ErrorTemplate   string

	// ViewState is the state rendered on first Attach.
	ViewState ViewState

	// AnimateViewChanges fades between states.
	AnimateViewChanges bool

	// FadeDuration is the length of each fade. Zero means DefaultFadeDuration.
	FadeDuration time.Duration

	// FadeCurve shapes the default animator's fades. Nil means
	// animation.AccelerateDecelerate. Ignored when Animator is set.
	FadeCurve func(float64) float64

	// Inflater resolves template references. Required when a template is set
	// or SetViewForTemplate is used.
	Inflater view.Inflater

	// Animator runs fades. Nil means animation.NewFader().
	Animator Animator
}

// DefaultOptions returns Options with the documented defaults spelled out.
func DefaultOptions() Options {
	return Options{
		Name:         "multi_state_view",
		ViewState:    StateContent,
		FadeDuration: DefaultFadeDuration,
	}
}
