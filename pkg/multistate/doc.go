// Package multistate provides MultiStateView, a container that shows exactly
// one of several mutually exclusive views: content, loading, error or empty.
//
// # Binding views
//
// Views are bound to states in three ways:
//
//   - Options.LoadingTemplate, EmptyTemplate and ErrorTemplate are inflated
//     when the container is created.
//   - The first plain child inserted with AddView becomes the content view.
//   - SetViewForState and SetViewForTemplate bind or replace any slot.
//
// # Switching states
//
//	msv, err := multistate.New(multistate.Options{
//	    LoadingTemplate: "loading",
//	    Inflater:        templates,
//	})
//	if err != nil {
//	    return err
//	}
//	msv.AddView(list) // adopted as content
//	msv.SetOnStateChangeListener(multistate.StateChangeFunc(func(s multistate.ViewState) {
//	    log.Printf("state changed to %s", s)
//	}))
//	if err := msv.Attach(); err != nil {
//	    return err
//	}
//	msv.SetViewState(multistate.StateLoading)
//
// Attach renders the configured initial state without animation and fails
// when no content view is bound. SetViewState hides every slot view and
// shows the target's; with animation enabled the previous view fades out
// over FadeDuration, then the target fades in over the same duration.
//
// # Errors
//
// Showing a state that has no view, binding StateUnknown, or binding one view
// to two slots returns a *errors.StateError from pkg/errors. The error is
// also sent to the global errors handler. Failed calls leave the container
// unchanged.
package multistate
