package sched

import "testing"

func TestSingleTickStep(t *testing.T) {
	s := New()
	var fired bool
	s.Schedule(1, Debug, func(Tick) { fired = true })
	s.RunUntil(1)

	if !fired {
		t.Fatal("expected event to fire")
	}
	if s.CurrentTick() != 1 {
		t.Fatalf("CurrentTick() = %d, want 1", s.CurrentTick())
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestTypeOrderedFiring(t *testing.T) {
	s := New()
	var order []Type
	record := func(typ Type) Callback {
		return func(Tick) { order = append(order, typ) }
	}
	s.Schedule(5, PlayerAI, record(PlayerAI))
	s.Schedule(5, BallPhysics, record(BallPhysics))
	s.Schedule(5, Referee, record(Referee))
	s.RunUntil(10)

	want := []Type{BallPhysics, PlayerAI, Referee}
	if len(order) != len(want) {
		t.Fatalf("fired %d events, want %d", len(order), len(want))
	}
	for i, typ := range want {
		if order[i] != typ {
			t.Fatalf("order[%d] = %s, want %s", i, order[i], typ)
		}
	}
	if s.CurrentTick() != 10 {
		t.Fatalf("CurrentTick() = %d, want 10", s.CurrentTick())
	}
}

func TestInsertionOrderWithinSameTypeAndTick(t *testing.T) {
	s := New()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		s.Schedule(3, Debug, func(Tick) { order = append(order, i) })
	}
	s.RunUntil(3)

	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestStrictFutureEnforcement(t *testing.T) {
	s := New()
	s.Schedule(3, Debug, func(Tick) {
		defer func() {
			r := recover()
			if r == nil {
				t.Error("expected panic scheduling at current tick")
				return
			}
			err, ok := r.(*PastTickError)
			if !ok {
				t.Fatalf("recovered %T, want *PastTickError", r)
			}
			if err.Requested != 3 || err.Current != 3 {
				t.Fatalf("got requested=%d current=%d, want 3/3", err.Requested, err.Current)
			}
		}()
		s.ScheduleOnOffset(0, Debug, func(Tick) {})
	})
	s.RunUntil(3)
}

func TestForeignEventRejected(t *testing.T) {
	a, b := New(), New()
	h := a.Schedule(1, Debug, func(Tick) {})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic rescheduling a foreign event")
		}
	}()
	b.Reschedule(h, 1)
}

func TestRescheduleLeavesExactlyOneEvent(t *testing.T) {
	s := New()
	var fires int
	h := s.Schedule(5, BallPhysics, func(Tick) { fires++ })
	h = s.Reschedule(h, 10)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after reschedule", s.Len())
	}
	if h.Tick() != 10 {
		t.Fatalf("rescheduled tick = %d, want 10", h.Tick())
	}
	s.RunUntil(10)
	if fires != 1 {
		t.Fatalf("fires = %d, want 1", fires)
	}
}

func TestScheduleOnOffsetFromCallback(t *testing.T) {
	s := New()
	var secondFired Tick
	s.Schedule(1, Debug, func(tick Tick) {
		s.ScheduleOnOffset(1, Debug, func(t Tick) { secondFired = t })
	})
	s.RunUntil(2)

	if secondFired != 2 {
		t.Fatalf("secondFired = %d, want 2", secondFired)
	}
}

func TestRunUntilEmptyHeapAdvancesCurrentTick(t *testing.T) {
	s := New()
	s.RunUntil(100)
	if s.CurrentTick() != 100 {
		t.Fatalf("CurrentTick() = %d, want 100", s.CurrentTick())
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestRunUntilEndDrainsHeap(t *testing.T) {
	s := New()
	s.Schedule(5, Debug, func(Tick) {})
	s.Schedule(10, Debug, func(Tick) {
		s.ScheduleOnOffset(1, Debug, func(Tick) {})
	})
	s.RunUntilEnd()

	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after RunUntilEnd", s.Len())
	}
	if s.CurrentTick() != TickMax {
		t.Fatalf("CurrentTick() = %d, want TickMax", s.CurrentTick())
	}
}

func TestCurrentTickDuringCallbackEqualsEventTick(t *testing.T) {
	s := New()
	var observed Tick
	s.Schedule(2, Debug, func(tick Tick) {
		observed = s.CurrentTick()
		if observed != tick {
			t.Fatalf("CurrentTick() during callback = %d, want event tick %d", observed, tick)
		}
	})
	s.RunUntil(5)
	if s.CurrentTick() != 5 {
		t.Fatalf("CurrentTick() = %d, want 5", s.CurrentTick())
	}
}

func TestCurrentTickMonotonic(t *testing.T) {
	s := New()
	last := s.CurrentTick()
	for _, target := range []Tick{1, 1, 5, 5, 20} {
		s.RunUntil(target)
		if s.CurrentTick() < last {
			t.Fatalf("CurrentTick went backwards: %d -> %d", last, s.CurrentTick())
		}
		last = s.CurrentTick()
	}
}
