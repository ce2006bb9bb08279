package realtime

import (
	"testing"
	"time"

	"github.com/fcsim/matchcore/sched"
)

func TestRunnerAdvancesScheduler(t *testing.T) {
	s := sched.New()
	var fired bool
	s.Schedule(5, sched.Debug, func(sched.Tick) { fired = true })

	r := New(s, Config{Speed: 100, WallInterval: time.Millisecond})
	r.Start()
	defer r.Stop()

	deadline := time.Now().Add(time.Second)
	for !fired && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if !fired {
		t.Fatal("event never fired within deadline")
	}
}

func TestRunnerStartIsIdempotentWhileRunning(t *testing.T) {
	s := sched.New()
	r := New(s, Config{Speed: 10, WallInterval: time.Millisecond})
	r.Start()
	defer r.Stop()
	r.Start()
	if r.State() != Running {
		t.Fatalf("state = %s, want RUNNING", r.State())
	}
}

func TestRunnerPauseStopsAdvancing(t *testing.T) {
	s := sched.New()
	r := New(s, Config{Speed: 1000, WallInterval: time.Millisecond})
	r.Start()

	time.Sleep(20 * time.Millisecond)
	<-r.Pause()
	if r.State() != Paused {
		t.Fatalf("state = %s, want PAUSED", r.State())
	}
	tick := s.CurrentTick()
	time.Sleep(30 * time.Millisecond)
	if s.CurrentTick() != tick {
		t.Fatalf("tick advanced while paused: %d -> %d", tick, s.CurrentTick())
	}
	r.Resume()
	time.Sleep(20 * time.Millisecond)
	if s.CurrentTick() <= tick {
		t.Fatal("tick did not advance after resume")
	}
	<-r.Stop()
}

func TestRunnerStopHaltsLoop(t *testing.T) {
	s := sched.New()
	r := New(s, Config{Speed: 1000, WallInterval: time.Millisecond})
	r.Start()
	time.Sleep(10 * time.Millisecond)
	<-r.Stop()
	if r.State() != Stopped {
		t.Fatalf("state = %s, want STOPPED", r.State())
	}
	tick := s.CurrentTick()
	time.Sleep(20 * time.Millisecond)
	if s.CurrentTick() != tick {
		t.Fatal("tick advanced after Stop")
	}
}

func TestRunnerSetSpeedWhileRunning(t *testing.T) {
	s := sched.New()
	r := New(s, Config{Speed: 1, WallInterval: time.Millisecond})
	r.Start()
	defer r.Stop()
	r.SetSpeed(500)
	time.Sleep(20 * time.Millisecond)
	if s.CurrentTick() == 0 {
		t.Fatal("tick never advanced after raising speed")
	}
}
