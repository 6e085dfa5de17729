package tooltip

import "time"

// Timer is a pending scheduled call. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Event loops that must stay on one
// goroutine supply their own; the tooltip ignores a callback that fires
// after it was cancelled either way. f may run before AfterFunc returns.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, f func()) Timer

// AfterFunc implements Scheduler.
func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) Timer {
	return fn(d, f)
}

// Clock schedules on the runtime timer, calling f on its own goroutine.
var Clock Scheduler = SchedulerFunc(func(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
})
