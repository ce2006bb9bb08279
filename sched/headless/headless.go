// Package headless drains a *sched.Scheduler to completion as fast as the
// host machine allows, with no wall-clock pacing at all — the counterpart to
// sched/realtime for batch simulation, tournament replays, and tests.
package headless

import (
	"runtime"
	"sync"

	"github.com/fcsim/matchcore/sched"
)

// defaultYieldEvery is how many fired events the Runner processes between
// cooperative yields back to the Go scheduler when Config.YieldEvery is
// zero. This is advisory: it
// exists so a long headless run sharing a machine with other goroutines
// doesn't starve them, not for correctness.
const defaultYieldEvery = 10_000

// Runner drains a *sched.Scheduler to TickMax in one call, optionally
// yielding periodically so a long-running headless match doesn't monopolise
// its goroutine.
type Runner struct {
	sched      *sched.Scheduler
	yieldEvery int

	mu      sync.Mutex
	running bool
}

// Config configures a Runner.
type Config struct {
	// YieldEvery overrides defaultYieldEvery. Zero selects
	// defaultYieldEvery; a negative value disables yielding entirely (the
	// whole match drains in one RunUntilEnd call).
	YieldEvery int
}

// New wraps s in a headless Runner.
func New(s *sched.Scheduler, cfg Config) *Runner {
	yield := cfg.YieldEvery
	if yield == 0 {
		yield = defaultYieldEvery
	}
	return &Runner{sched: s, yieldEvery: yield}
}

// Run drains the scheduler to completion. Calling Run while a previous call
// on the same Runner is still in progress is a programmer error and panics;
// a Runner is meant to be driven by a single goroutine at a time, per the
// cooperative scheduling model the scheduler itself assumes.
func (r *Runner) Run() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		panic("headless: Run called while already running")
	}
	r.running = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	if r.yieldEvery <= 0 {
		r.sched.RunUntilEnd()
		return
	}

	for r.drainBatch() {
		runtime.Gosched()
	}
	// drainBatch only pops events; it never forces CurrentTick to TickMax.
	// Against an already-empty heap RunUntilEnd fires nothing and only sets
	// CurrentTick to TickMax, matching sched.RunUntilEnd's contract.
	r.sched.RunUntilEnd()
}

// drainBatch fires up to yieldEvery events and reports whether the heap
// still has more work afterward.
func (r *Runner) drainBatch() bool {
	for i := 0; i < r.yieldEvery; i++ {
		if !r.sched.Step() {
			return false
		}
	}
	return r.sched.Len() > 0
}
