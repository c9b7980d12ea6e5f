package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestStateErrorString(t *testing.T) {
	err := &StateError{
		Op:   "multistate.Attach",
		Kind: KindMissingView,
		Err:  ErrMissingView,
	}
	got := err.Error()
	want := "multistate.Attach [missing_view]: no view bound to state"
	if got != want {
		t.Errorf("StateError.Error() = %q, want %q", got, want)
	}
}

func TestStateErrorWithState(t *testing.T) {
	err := MissingView("multistate.SetViewState", "loading")
	got := err.Error()
	want := "state=loading"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindMissingView, "missing_view"},
		{KindInvalidState, "invalid_state"},
		{KindUsage, "usage"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		kind   ErrorKind
	}{
		{"missing view", MissingView("op", "content"), ErrMissingView, KindMissingView},
		{"invalid state", InvalidState("op", "unknown"), ErrInvalidState, KindInvalidState},
		{"duplicate", Usage("op", "error", ErrDuplicateView), ErrDuplicateView, KindUsage},
		{"wrapped", fmt.Errorf("attach: %w", MissingView("op", "content")), ErrMissingView, KindMissingView},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if !stderrors.Is(tt.err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.target)
			}
			if got := KindOf(tt.err); got != tt.kind {
				t.Errorf("KindOf = %v, want %v", got, tt.kind)
			}
		})
	}
	if got := KindOf(stderrors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want unknown", got)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "multistate.onFadeOutEnd"
	if got, want := err.Error(), "panic in multistate.onFadeOutEnd: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *StateError
	handler := &testHandler{
		onError: func(err *StateError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	returned := Report(MissingView("test.op", "empty"))

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if returned != capturedErr {
		t.Error("Report should return the reported error")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if capturedErr.StackTrace == "" {
		t.Error("expected StackTrace to be captured")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(*StateError) { called = true }})
	defer SetHandler(oldHandler)

	if Report(nil) != nil {
		t.Error("Report(nil) should return nil")
	}
	if called {
		t.Error("handler should not be called for nil error")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(MissingView("multistate.Attach", "content"))
	if got, want := buf.String(), "[multistate error] multistate.Attach: no view bound to state\n"; got != want {
		t.Errorf("terse output = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	err := MissingView("multistate.Attach", "content")
	err.StackTrace = "frame"
	h.HandleError(err)
	out := buf.String()
	for _, want := range []string{"[missing_view]", "state=content", "Stack trace:\nframe"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output %q should contain %q", out, want)
		}
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "fade", Value: "boom", StackTrace: "frame"})
	if !strings.Contains(buf.String(), "[multistate panic] fade: boom") {
		t.Errorf("panic output = %q", buf.String())
	}
}

type testHandler struct {
	onError func(*StateError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *StateError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
