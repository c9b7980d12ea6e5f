package testing

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/multistate/pkg/animation"
	"github.com/go-drift/multistate/pkg/view"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestTester_InstallsClock(t *testing.T) {
	tester := NewTesterWithT(t)
	before := animation.Now()
	tester.Clock().Advance(time.Second)
	if got := animation.Now().Sub(before); got != time.Second {
		t.Errorf("animation clock advanced %v, want 1s", got)
	}
}

func TestTester_PumpForDrivesFade(t *testing.T) {
	tester := NewTesterWithT(t)
	box := view.NewBox("panel")
	done := false

	animation.NewFader().Fade(box, 1, 0, 100*time.Millisecond, func() { done = true })

	tester.PumpFor(50 * time.Millisecond)
	if done {
		t.Fatal("fade finished early")
	}
	if box.Alpha() <= 0 || box.Alpha() >= 1 {
		t.Errorf("alpha = %v, want mid-fade", box.Alpha())
	}

	tester.PumpFor(50 * time.Millisecond)
	if !done || box.Alpha() != 0 {
		t.Errorf("done=%v alpha=%v, want finished at 0", done, box.Alpha())
	}
	if tester.Frames() == 0 {
		t.Error("expected frames to be counted")
	}
}

func TestTester_PumpAndSettle(t *testing.T) {
	tester := NewTesterWithT(t)
	box := view.NewBox("panel")
	animation.NewFader().Fade(box, 0, 1, 200*time.Millisecond, nil)

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if box.Alpha() != 1 {
		t.Errorf("alpha = %v, want 1", box.Alpha())
	}
}

func TestTester_PumpAndSettleTimeout(t *testing.T) {
	tester := NewTesterWithT(t)
	box := view.NewBox("panel")
	animation.NewFader().Fade(box, 0, 1, time.Hour, nil)

	if err := tester.PumpAndSettle(100 * time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("err = %v, want ErrSettleTimeout", err)
	}
}

func TestImmediateAnimator(t *testing.T) {
	var a ImmediateAnimator
	box := view.NewBox("panel")
	calls := 0
	a.Fade(box, 1, 0, time.Second, func() { calls++ })

	if calls != 1 || box.Alpha() != 0 {
		t.Errorf("calls=%d alpha=%v, want 1/0", calls, box.Alpha())
	}
	if len(a.Fades) != 1 || !a.Fades[0].Done {
		t.Errorf("Fades = %+v", a.Fades)
	}
}

func TestManualAnimator(t *testing.T) {
	var a ManualAnimator
	first, second := view.NewBox("first"), view.NewBox("second")
	var order []string

	a.Fade(first, 1, 0, time.Second, func() {
		order = append(order, "first")
		a.Fade(second, 0, 1, time.Second, func() { order = append(order, "second") })
	})
	if first.Alpha() != 1 {
		t.Errorf("start alpha = %v, want 1", first.Alpha())
	}
	if len(a.Pending()) != 1 {
		t.Fatalf("pending = %d, want 1", len(a.Pending()))
	}

	if n := a.CompleteAll(); n != 2 {
		t.Errorf("CompleteAll = %d, want 2", n)
	}
	if strings.Join(order, ",") != "first,second" {
		t.Errorf("order = %v", order)
	}
	if first.Alpha() != 0 || second.Alpha() != 1 {
		t.Errorf("alphas = %v/%v, want 0/1", first.Alpha(), second.Alpha())
	}
	if a.Complete() {
		t.Error("Complete with nothing pending should report false")
	}
}

func TestManualAnimator_Cancel(t *testing.T) {
	var a ManualAnimator
	box := view.NewBox("panel")
	called := false
	cancel := a.Fade(box, 1, 0, time.Second, func() { called = true })
	cancel()

	if a.Complete() || called {
		t.Error("cancelled fade should not complete")
	}
	if !a.Fades()[0].Cancelled {
		t.Error("fade should be marked cancelled")
	}
}

func TestRecordingView(t *testing.T) {
	v := NewRecordingView("rec")
	var as view.View = v
	as.SetVisibility(view.Gone)
	as.SetAlpha(0.5)

	if v.Visibility() != view.Gone || v.Alpha() != 0.5 {
		t.Errorf("state = %v/%v", v.Visibility(), v.Alpha())
	}
	if v.Writes() != 2 {
		t.Errorf("writes = %d, want 2", v.Writes())
	}
	v.Reset()
	if v.Writes() != 0 {
		t.Error("Reset should clear writes")
	}
}

func TestShown(t *testing.T) {
	g := view.NewGroup("root")
	a, b, c := view.NewBox("a"), view.NewBox("b"), view.NewBox("c")
	for _, v := range []view.View{a, b, c} {
		_ = g.AddView(v)
	}
	b.SetVisibility(view.Gone)
	c.SetAlpha(0)

	got := Shown(g)
	if len(got) != 1 || got[0] != a {
		t.Errorf("Shown = %v, want [a]", got)
	}
}

func TestSnapshot_MatchesFile(t *testing.T) {
	g := view.NewGroup("root")
	content, loading := view.NewBox("content"), view.NewBox("loading")
	_ = g.AddView(content)
	_ = g.AddView(loading)
	content.SetVisibility(view.Gone)
	loading.SetAlpha(0.333)

	CaptureSnapshot(g).MatchesFile(t, filepath.Join("testdata", "group.snapshot.json"))
}

func TestSnapshot_Diff(t *testing.T) {
	g := view.NewGroup("root")
	box := view.NewBox("content")
	_ = g.AddView(box)

	before := CaptureSnapshot(g)
	if diff := before.Diff(CaptureSnapshot(g)); diff != "" {
		t.Fatalf("identical snapshots differ:\n%s", diff)
	}

	box.SetVisibility(view.Gone)
	diff := CaptureSnapshot(g).Diff(before)
	var removed, added bool
	for _, line := range strings.Split(diff, "\n") {
		removed = removed || strings.HasPrefix(line, "-") && strings.Contains(line, `"visibility": "visible"`)
		added = added || strings.HasPrefix(line, "+") && strings.Contains(line, `"visibility": "gone"`)
	}
	if !removed || !added {
		t.Errorf("unexpected diff:\n%s", diff)
	}
}

func TestSnapshot_MissingFile(t *testing.T) {
	ft := &fakeT{name: "TestSnapshot_MissingFile"}
	CaptureSnapshot(view.NewBox("x")).MatchesFile(ft, filepath.Join(t.TempDir(), "missing.json"))
	if !strings.Contains(ft.fatal, "snapshot file missing") {
		t.Errorf("fatal = %q", ft.fatal)
	}
}

func TestSnapshot_UpdateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "box.json")
	snap := CaptureSnapshot(view.NewBox("x"))
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	loaded, err := loadSnapshot(path)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if diff := snap.Diff(loaded); diff != "" {
		t.Errorf("round trip differs:\n%s", diff)
	}
}

type fakeT struct {
	name  string
	fatal string
	errs  []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return f.name }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatal = fmt.Sprintf(format, args...)
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errs = append(f.errs, fmt.Sprintf(format, args...))
}
