// Package testing provides deterministic test tooling for multi-state views.
//
// # Quick Start
//
// Install a fake clock, drive fades frame by frame and assert on the view
// tree:
//
//	func TestFade(t *testing.T) {
//	    tester := mstest.NewTesterWithT(t)
//	    msv, _ := multistate.New(multistate.Options{AnimateViewChanges: true})
//	    ...
//	    msv.SetViewState(multistate.StateLoading)
//	    tester.PumpFor(250 * time.Millisecond)
//
//	    tester.CaptureSnapshot(msv).MatchesFile(t, "testdata/loading.snapshot.json")
//	}
//
// # Animators
//
// Transition logic can also be tested without frames: [ManualAnimator]
// records each fade and completes it on request, [ImmediateAnimator]
// completes every fade synchronously.
//
// # Snapshot Testing
//
// Update golden files with:
//
//	MULTISTATE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import mstest "github.com/go-drift/multistate/pkg/testing"
package testing
