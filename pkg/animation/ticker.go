// Package animation drives time-based property changes for multi-state views.
//
// The package is frame driven: nothing advances on its own. A host calls
// [StepTickers] once per frame (the demo CLI and pkg/testing.Tester do this),
// and every running [Ticker] receives the time elapsed since it started,
// measured by the installed [Clock].
//
// On top of the ticker sit [AnimationController], which maps elapsed time to a
// 0-1 value through a curve, and [Fader], which uses a controller to move a
// view's alpha between two values and report completion. Fader is the
// production implementation of the fade capability consumed by
// pkg/multistate.
package animation

import (
	"sort"
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
	tickerSeq     uint64
)

// Ticker calls a callback on each frame while active.
//
// Tickers started during a frame (for instance from another ticker's
// completion callback) first run on the following frame.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
	seq      uint64
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	tickerSeq++
	t.seq = tickerSeq
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances every active ticker in start order and returns how
// many were stepped. Call it once per frame from the UI thread.
func StepTickers() int {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return 0
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	sort.Slice(tickers, func(i, j int) bool { return tickers[i].seq < tickers[j].seq })

	stepped := 0
	for _, ticker := range tickers {
		// A callback earlier in this frame may have stopped it.
		if !ticker.isActive || ticker.callback == nil {
			continue
		}
		ticker.callback(Now().Sub(ticker.start))
		stepped++
	}
	return stepped
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// StopAllTickers deactivates every ticker. Tests use it to isolate runs.
func StopAllTickers() {
	tickerMu.Lock()
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()
	for _, ticker := range tickers {
		ticker.Stop()
	}
}
