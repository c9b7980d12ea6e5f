package multistate

import (
	"fmt"
	"log"
	"time"

	"github.com/go-drift/multistate/pkg/animation"
	"github.com/go-drift/multistate/pkg/errors"
	"github.com/go-drift/multistate/pkg/view"
)

// DebugMode enables a log line for every rendered transition.
var DebugMode = false

// SetDebugMode enables or disables transition tracing.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// transition tracks an animated state change. gen invalidates fade
// callbacks that belong to a transition which has since been settled.
type transition struct {
	phase  Phase
	from   view.View
	to     view.View
	cancel func()
	gen    uint64
}

// MultiStateView is a container that shows exactly one of its state views.
//
// The container is a view.Group. The first plain child inserted with AddView
// that is not the loading, error or empty view becomes the content view.
// Every method must be called from the UI thread.
type MultiStateView struct {
	view.Group

	registry     Registry
	state        ViewState
	animate      bool
	fadeDuration time.Duration
	animator     Animator
	inflater     view.Inflater
	listener     OnStateChangeListener
	attached     bool
	trans        transition
}

// New creates a MultiStateView. Configured templates are inflated and
// inserted in loading, empty, error order. The initial state is rendered on
// Attach.
func New(opts Options) (*MultiStateView, error) {
	const op = "multistate.New"
	if opts.ViewState != StateUnknown && !opts.ViewState.IsSlot() {
		return nil, errors.Report(errors.InvalidState(op, opts.ViewState.String()))
	}
	if opts.FadeDuration < 0 {
		return nil, errors.Report(errors.Config(op, fmt.Errorf("negative fade duration %v", opts.FadeDuration)))
	}

	m := &MultiStateView{
		state:        opts.ViewState,
		animate:      opts.AnimateViewChanges,
		fadeDuration: opts.FadeDuration,
		animator:     opts.Animator,
		inflater:     opts.Inflater,
	}
	if m.fadeDuration == 0 {
		m.fadeDuration = DefaultFadeDuration
	}
	if m.animator == nil {
		fader := animation.NewFader()
		if opts.FadeCurve != nil {
			fader.Curve = opts.FadeCurve
		}
		m.animator = fader
	}
	name := opts.Name
	if name == "" {
		name = "multi_state_view"
	}
	m.SetName(name)
	m.OnChildAdded = m.adoptChild

	templates := []struct {
		state ViewState
		ref   string
	}{
		{StateLoading, opts.LoadingTemplate},
		{StateEmpty, opts.EmptyTemplate},
		{StateError, opts.ErrorTemplate},
	}
	for _, tmpl := range templates {
		if tmpl.ref == "" {
			continue
		}
		v, err := m.inflate(op, tmpl.ref)
		if err != nil {
			return nil, err
		}
		if _, err := m.registry.Register(tmpl.state, v); err != nil {
			return nil, errors.Report(asStateError(err))
		}
		if err := m.AddView(v); err != nil {
			return nil, errors.Report(asStateError(err))
		}
	}
	return m, nil
}

// adoptChild is the child-insertion hook. It adopts the first plain child as
// content. Later plain children stay in the group unmanaged.
func (m *MultiStateView) adoptChild(child view.View) {
	if m.registry.IsReservedView(child) {
		return
	}
	content := m.registry.Resolve(StateContent)
	if content == nil {
		m.registry.content = child
		return
	}
	if content != child {
		log.Printf("WARNING: multistate: %s already has content view %q (%s); %q (%s) is added as an unmanaged child. "+
			"Use SetViewForState to replace the content view.", m.Name(), content.Name(), content.ID(), child.Name(), child.ID())
	}
}

// View returns the view bound to state, or nil.
func (m *MultiStateView) View(state ViewState) view.View {
	return m.registry.Resolve(state)
}

// ViewState returns the current state.
func (m *MultiStateView) ViewState() ViewState {
	return m.state
}

// Phase returns the phase of the current transition.
func (m *MultiStateView) Phase() Phase {
	return m.trans.phase
}

// IsAttached reports whether Attach has run without a matching Detach.
func (m *MultiStateView) IsAttached() bool {
	return m.attached
}

// AnimateLayoutChanges reports whether state changes fade.
func (m *MultiStateView) AnimateLayoutChanges() bool {
	return m.animate
}

// SetAnimateLayoutChanges sets whether future state changes fade.
func (m *MultiStateView) SetAnimateLayoutChanges(animate bool) {
	m.animate = animate
}

// FadeDuration returns the length of each fade.
func (m *MultiStateView) FadeDuration() time.Duration {
	return m.fadeDuration
}

// SetOnStateChangeListener replaces the listener. Nil removes it.
func (m *MultiStateView) SetOnStateChangeListener(listener OnStateChangeListener) {
	if f, ok := listener.(StateChangeFunc); ok && f == nil {
		listener = nil
	}
	m.listener = listener
}

// Attach activates the container and renders the current state without
// animation. It fails with a MissingView error, changing nothing, when no
// content view is bound or the current state has no view.
func (m *MultiStateView) Attach() error {
	const op = "multistate.Attach"
	if m.registry.Resolve(StateContent) == nil {
		return errors.Report(errors.MissingView(op, StateContent.String()))
	}
	if err := m.checkRenderable(op, m.state); err != nil {
		return err
	}
	m.attached = true
	m.render(StateUnknown)
	return nil
}

// Detach deactivates the container and settles any running fade.
func (m *MultiStateView) Detach() {
	m.settle()
	m.attached = false
}

// SetViewState switches to state. Setting the current state is a no-op and
// does not notify. On success the listener is called once, after the views'
// visibility is updated. Unknown cannot be shown and is rejected; a state
// with no bound view is rejected without touching any view.
func (m *MultiStateView) SetViewState(state ViewState) error {
	const op = "multistate.SetViewState"
	if state == m.state {
		return nil
	}
	if !state.IsSlot() {
		return errors.Report(errors.InvalidState(op, state.String()))
	}
	if err := m.checkRenderable(op, state); err != nil {
		return err
	}

	previous := m.state
	m.state = state
	m.render(previous)
	if m.listener != nil {
		m.listener.OnStateChanged(state)
	}
	return nil
}

// SetViewForState binds v to state, replacing and removing any view bound
// there before, and inserts v into the container. The current state is then
// rendered again without animation, and when switchToState is set the
// container switches to state.
//
// If the current state has no view the binding is kept and a MissingView
// error is returned.
func (m *MultiStateView) SetViewForState(v view.View, state ViewState, switchToState bool) error {
	const op = "multistate.SetViewForState"
	if !view.IsNil(v) {
		if p := v.Parent(); p != nil && p != &m.Group {
			return errors.Report(errors.Usage(op, state.String(), errors.ErrAlreadyParented))
		}
	}
	evicted, err := m.registry.Register(state, v)
	if err != nil {
		return errors.Report(asStateError(err))
	}
	if evicted != nil {
		m.RemoveView(evicted)
	}
	if !m.Contains(v) {
		if err := m.AddView(v); err != nil {
			return errors.Report(asStateError(err))
		}
	}

	if err := m.checkRenderable(op, m.state); err != nil {
		return err
	}
	m.render(StateUnknown)

	if switchToState {
		return m.SetViewState(state)
	}
	return nil
}

// SetViewForTemplate inflates ref through the configured Inflater and
// passes the result to SetViewForState.
func (m *MultiStateView) SetViewForTemplate(ref string, state ViewState, switchToState bool) error {
	const op = "multistate.SetViewForTemplate"
	if !state.IsSlot() {
		return errors.Report(errors.InvalidState(op, state.String()))
	}
	v, err := m.inflate(op, ref)
	if err != nil {
		return err
	}
	return m.SetViewForState(v, state, switchToState)
}

func (m *MultiStateView) inflate(op, ref string) (view.View, error) {
	if m.inflater == nil {
		return nil, errors.Report(errors.Config(op, fmt.Errorf("no inflater configured for template %q", ref)))
	}
	v, err := m.inflater.Inflate(ref, &m.Group)
	if err != nil {
		return nil, errors.Report(asStateError(err))
	}
	return v, nil
}

// checkRenderable fails when state is a slot with no bound view.
func (m *MultiStateView) checkRenderable(op string, state ViewState) error {
	if state == StateUnknown {
		return nil
	}
	if m.registry.Resolve(state) == nil {
		return errors.Report(errors.MissingView(op, state.String()))
	}
	return nil
}

// render shows the current state's view. Callers have checked that it exists.
// With animation enabled and a previous view to fade from, the previous view
// fades out, then the new one fades in; otherwise the new view is shown at
// once.
func (m *MultiStateView) render(previousState ViewState) {
	m.settle()

	target := m.registry.Resolve(m.state)
	for _, v := range m.registry.Views() {
		v.SetVisibility(view.Gone)
	}
	if target == nil {
		return
	}

	if DebugMode {
		log.Printf("multistate: %s %s -> %s view=%q id=%s (animate=%v)",
			m.Name(), previousState, m.state, target.Name(), target.ID(), m.animate)
	}

	if !m.animate {
		show(target)
		return
	}
	previous := m.registry.Resolve(previousState)
	if previous == nil || previous == target {
		show(target)
		return
	}

	m.trans = transition{
		phase: PhaseFadingOut,
		from:  previous,
		to:    target,
		gen:   m.trans.gen + 1,
	}
	gen := m.trans.gen
	previous.SetVisibility(view.Visible)
	cancel := m.animator.Fade(previous, 1, 0, m.fadeDuration, func() { m.onFadeOutEnd(gen) })
	m.keepCancel(gen, PhaseFadingOut, cancel)
}

func (m *MultiStateView) onFadeOutEnd(gen uint64) {
	defer errors.Recover("multistate.onFadeOutEnd")
	if m.trans.gen != gen || m.trans.phase != PhaseFadingOut {
		return
	}
	from, to := m.trans.from, m.trans.to
	from.SetVisibility(view.Gone)
	to.SetVisibility(view.Visible)

	m.trans.phase = PhaseFadingIn
	m.trans.cancel = nil
	cancel := m.animator.Fade(to, 0, 1, m.fadeDuration, func() { m.onFadeInEnd(gen) })
	m.keepCancel(gen, PhaseFadingIn, cancel)
}

func (m *MultiStateView) onFadeInEnd(gen uint64) {
	defer errors.Recover("multistate.onFadeInEnd")
	if m.trans.gen != gen || m.trans.phase != PhaseFadingIn {
		return
	}
	m.trans = transition{gen: gen}
}

// keepCancel stores cancel unless the fade already finished synchronously.
func (m *MultiStateView) keepCancel(gen uint64, phase Phase, cancel func()) {
	if m.trans.gen == gen && m.trans.phase == phase {
		m.trans.cancel = cancel
	}
}

// settle stops a running fade and leaves both of its views opaque. Visibility
// is left to the caller.
func (m *MultiStateView) settle() {
	if m.trans.phase == PhaseSettled {
		return
	}
	if m.trans.cancel != nil {
		m.trans.cancel()
	}
	from, to := m.trans.from, m.trans.to
	m.trans = transition{gen: m.trans.gen + 1}
	from.SetVisibility(view.Gone)
	from.SetAlpha(1)
	to.SetVisibility(view.Visible)
	to.SetAlpha(1)
}

func show(v view.View) {
	v.SetAlpha(1)
	v.SetVisibility(view.Visible)
}

func asStateError(err error) *errors.StateError {
	if se, ok := err.(*errors.StateError); ok {
		return se
	}
	return &errors.StateError{Op: "multistate", Kind: errors.KindUnknown, Err: err}
}
