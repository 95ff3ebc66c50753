package validator

import "time"

// Task is a pending scheduled callback.
type Task interface {
	// Cancel stops the callback. It reports false when the callback already
	// ran or was cancelled before.
	Cancel() bool
}

// Scheduler defers callbacks. Implementations must never invoke fn from
// within Schedule itself.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Task
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(delay time.Duration, fn func()) Task

func (f SchedulerFunc) Schedule(delay time.Duration, fn func()) Task {
	return f(delay, fn)
}

// TimerScheduler runs callbacks on their own goroutine using time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) Task {
	return timerTask{timer: time.AfterFunc(delay, fn)}
}

type timerTask struct {
	timer *time.Timer
}

func (t timerTask) Cancel() bool {
	return t.timer.Stop()
}
