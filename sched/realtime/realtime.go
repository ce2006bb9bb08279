// Package realtime wraps a *sched.Scheduler so it advances in step with the
// wall clock, driving it from a time.Ticker the way a game server's world
// loop paces itself. It is one of two driver packages, alongside headless;
// the scheduler itself stays ignorant of wall-clock time.
package realtime

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fcsim/matchcore/sched"
)

// State is the runner's lifecycle state.
type State uint8

const (
	Idle State = iota
	Running
	Pausing
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Running:
		return "RUNNING"
	case Pausing:
		return "PAUSING"
	case Paused:
		return "PAUSED"
	case Stopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// defaultWallInterval is how often the pacing loop wakes to advance the
// scheduler: 100 times per wall-clock second.
const defaultWallInterval = 10 * time.Millisecond

// Runner drives a *sched.Scheduler at a configurable multiple of wall-clock
// speed. It is not safe for concurrent use from more than one goroutine
// besides the one driving Start/Pause/Resume/Stop/SetSpeed, which may be
// called from any goroutine; the pacing loop itself runs on its own.
type Runner struct {
	sched *sched.Scheduler

	mu           sync.Mutex
	state        State
	speed        float64
	wallInterval time.Duration
	accumulator  float64 // fractional simulated ticks carried between wall intervals

	pauseDone chan struct{}
	stop      chan struct{}
	done      chan struct{}

	ticksPerWallSecond prometheus.Gauge
}

// Config configures a Runner.
type Config struct {
	// Speed is the simulated-ticks-per-wall-millisecond multiplier. 1.0 runs
	// at real time; 0 defaults to 1.0.
	Speed float64
	// WallInterval is how often the pacing loop wakes. Zero selects
	// defaultWallInterval.
	WallInterval time.Duration
	// TicksPerWallSecond, if set, is updated on every wall interval while
	// Running with the observed simulated-ticks-per-wall-second rate (see
	// internal/obs).
	TicksPerWallSecond prometheus.Gauge
}

// New wraps s in a Runner, initially Idle.
func New(s *sched.Scheduler, cfg Config) *Runner {
	if cfg.Speed <= 0 {
		cfg.Speed = 1.0
	}
	if cfg.WallInterval <= 0 {
		cfg.WallInterval = defaultWallInterval
	}
	return &Runner{
		sched:              s,
		state:              Idle,
		speed:              cfg.Speed,
		wallInterval:       cfg.WallInterval,
		ticksPerWallSecond: cfg.TicksPerWallSecond,
	}
}

// State reports the runner's current lifecycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// SetSpeed changes the simulated-ticks-per-wall-millisecond multiplier. It
// may be called at any time, including while Running.
func (r *Runner) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.speed = speed
}

// Start begins pacing the scheduler forward on its own goroutine. Calling
// Start on a Runner that is not Idle or Stopped is a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	if r.state != Idle && r.state != Stopped {
		r.mu.Unlock()
		return
	}
	r.state = Running
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	r.mu.Unlock()

	go r.run()
}

// Pause requests the runner suspend pacing after its current wall interval
// finishes draining. The returned channel closes once the pause has taken
// effect; the caller may select on it to know Paused has been reached.
func (r *Runner) Pause() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Running {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	r.state = Pausing
	r.pauseDone = make(chan struct{})
	return r.pauseDone
}

// Resume continues pacing after a Pause. It is a no-op unless the runner is
// Paused.
func (r *Runner) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Paused {
		return
	}
	r.state = Running
}

// Stop halts the pacing loop permanently. The returned channel closes once
// the loop has exited.
func (r *Runner) Stop() <-chan struct{} {
	r.mu.Lock()
	if r.state == Idle || r.state == Stopped {
		r.mu.Unlock()
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	stop, done := r.stop, r.done
	r.mu.Unlock()

	select {
	case <-stop:
	default:
		close(stop)
	}
	return done
}

// run is the pacing loop: it wakes every wallInterval, converts elapsed wall
// time into simulated ticks at the current speed, and drains the scheduler
// up to that many ticks beyond its current position.
func (r *Runner) run() {
	defer close(r.done)

	ticker := time.NewTicker(r.wallInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			r.mu.Lock()
			r.state = Stopped
			r.mu.Unlock()
			return
		case <-ticker.C:
			r.mu.Lock()
			state := r.state
			if state == Pausing {
				r.state = Paused
				pauseDone := r.pauseDone
				r.pauseDone = nil
				r.mu.Unlock()
				if pauseDone != nil {
					close(pauseDone)
				}
				continue
			}
			if state != Running {
				r.mu.Unlock()
				continue
			}
			r.accumulator += float64(r.wallInterval.Milliseconds()) * r.speed
			advance := int64(r.accumulator)
			r.accumulator -= float64(advance)
			r.mu.Unlock()

			if r.ticksPerWallSecond != nil {
				r.ticksPerWallSecond.Set(float64(advance) / r.wallInterval.Seconds())
			}
			if advance <= 0 {
				continue
			}
			target := r.sched.CurrentTick() + sched.Tick(advance)
			r.sched.RunUntil(target)
		}
	}
}
