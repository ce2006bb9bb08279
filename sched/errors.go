package sched

import "fmt"

// Programmer errors: any of these terminate the simulation. They carry
// enough context (tick, type, and the offending value) to diagnose without a
// debugger attached.

// PastTickError is returned when a caller attempts to schedule an event at a
// tick that is not strictly in the scheduler's future.
type PastTickError struct {
	Requested, Current Tick
	Type               Type
}

func (e *PastTickError) Error() string {
	return fmt.Sprintf("sched: cannot schedule %s at tick %d: current tick is %d", e.Type, e.Requested, e.Current)
}

// ForeignEventError is returned when a handle produced by one Scheduler is
// passed to another.
type ForeignEventError struct {
	Type Type
}

func (e *ForeignEventError) Error() string {
	return fmt.Sprintf("sched: event of type %s does not belong to this scheduler", e.Type)
}

// InvalidOffsetError is returned when ScheduleOnOffset is called with a
// negative offset, or Reschedule with a non-positive one.
type InvalidOffsetError struct {
	Offset int64
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("sched: offset must be strictly positive, got %d", e.Offset)
}

// UnknownTypeError is returned when an event is scheduled with a Type
// outside the fixed enumeration.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("sched: unknown event type %d", e.Type)
}
