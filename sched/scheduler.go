package sched

import "container/heap"

// Scheduler is a min-heap of events keyed by (tick, type, sequence). It is
// the sole driver of simulated time: nothing advances except through
// RunUntil or Step. A Scheduler is not safe for concurrent use; the real-time and
// headless wrappers each own exactly one and drive it from a single logical
// thread, per the cooperative scheduling model.
type Scheduler struct {
	heap         eventHeap
	currentTick  Tick
	nextSequence uint64
}

// New returns a Scheduler with CurrentTick at 0 and an empty heap.
func New() *Scheduler {
	return &Scheduler{heap: make(eventHeap, 0, 64)}
}

// CurrentTick returns the tick the scheduler is currently at. While a
// callback is executing, this equals the tick the callback was scheduled
// for.
func (s *Scheduler) CurrentTick() Tick { return s.currentTick }

// Len reports the number of events currently in the heap.
func (s *Scheduler) Len() int { return len(s.heap) }

// Schedule enqueues callback to fire on the given tick as the given type.
// tick must be strictly greater than CurrentTick; violating this is a
// programmer error and panics with a *PastTickError.
func (s *Scheduler) Schedule(tick Tick, typ Type, callback Callback) EventHandle {
	if typ > Debug {
		panic(&UnknownTypeError{Type: typ})
	}
	if tick <= s.currentTick {
		panic(&PastTickError{Requested: tick, Current: s.currentTick, Type: typ})
	}
	ev := &schedEvent{
		tick:     tick,
		typ:      typ,
		sequence: s.nextSequence,
		callback: callback,
		owner:    s,
	}
	s.nextSequence++
	heap.Push(&s.heap, ev)
	return EventHandle{ev: ev}
}

// ScheduleOnNextTick schedules callback to fire at CurrentTick+1.
func (s *Scheduler) ScheduleOnNextTick(typ Type, callback Callback) EventHandle {
	return s.Schedule(s.currentTick+1, typ, callback)
}

// ScheduleOnOffset schedules callback to fire at CurrentTick+offset. offset
// must be strictly positive; violating this is a programmer error. A zero
// offset names the current tick and panics with a *PastTickError, as
// Schedule does; a negative offset panics with an *InvalidOffsetError.
func (s *Scheduler) ScheduleOnOffset(offset int64, typ Type, callback Callback) EventHandle {
	if offset < 0 {
		panic(&InvalidOffsetError{Offset: offset})
	}
	return s.Schedule(s.currentTick+Tick(offset), typ, callback)
}

// Reschedule atomically removes handle's event from the heap and re-enqueues
// it at CurrentTick+offset, preserving its type and callback. Passing a
// handle from a different Scheduler is a programmer error and panics with a
// *ForeignEventError.
func (s *Scheduler) Reschedule(handle EventHandle, offset int64) EventHandle {
	ev := handle.ev
	if ev.owner != s {
		panic(&ForeignEventError{Type: ev.typ})
	}
	if offset <= 0 {
		panic(&InvalidOffsetError{Offset: offset})
	}
	if ev.index >= 0 {
		heap.Remove(&s.heap, ev.index)
	}
	ev.tick = s.currentTick + Tick(offset)
	heap.Push(&s.heap, ev)
	return EventHandle{ev: ev}
}

// Cancel removes handle's event from the heap if it is still pending. It is
// a no-op if the event already fired.
func (s *Scheduler) Cancel(handle EventHandle) {
	ev := handle.ev
	if ev.owner != s {
		panic(&ForeignEventError{Type: ev.typ})
	}
	if ev.index >= 0 {
		heap.Remove(&s.heap, ev.index)
	}
}

// RunUntil drains every event with tick <= targetTick in heap order
// (tick ascending, then type ordinal ascending, then insertion order), then
// sets CurrentTick to targetTick. Empty ticks are skipped: there is no
// per-tick loop body, only per-event dispatch. RunUntil never blocks and
// never throws on an empty heap — it simply advances CurrentTick.
func (s *Scheduler) RunUntil(targetTick Tick) {
	for len(s.heap) > 0 && s.heap[0].tick <= targetTick {
		ev := heap.Pop(&s.heap).(*schedEvent)
		s.currentTick = ev.tick
		ev.callback(ev.tick)
	}
	s.currentTick = targetTick
}

// RunUntilEnd drains the heap completely, as RunUntil(TickMax).
func (s *Scheduler) RunUntilEnd() {
	s.RunUntil(TickMax)
}

// Step pops and fires the single next event, if any, and reports whether one
// was fired. It exists for drivers such as headless.Runner that want to
// yield between batches of events rather than draining the whole heap in one
// RunUntilEnd call.
func (s *Scheduler) Step() bool {
	if len(s.heap) == 0 {
		return false
	}
	ev := heap.Pop(&s.heap).(*schedEvent)
	s.currentTick = ev.tick
	ev.callback(ev.tick)
	return true
}
