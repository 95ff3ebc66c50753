package testsupport

import (
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-formcheck/pkg/validator"
)

// ManualScheduler is a validator.Scheduler driven by an explicit clock. Tasks
// run only when Advance moves the clock past their deadline.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*manualTask
	seq   int
}

type manualTask struct {
	owner     *ManualScheduler
	due       time.Duration
	order     int
	fn        func()
	done      bool
	cancelled bool
}

// NewManualScheduler returns a scheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) validator.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	task := &manualTask{owner: s, due: s.now + delay, order: s.seq, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Advance moves the clock forward and runs every task that became due, in
// deadline order. Callbacks run on the caller's goroutine.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTask
	for _, task := range s.tasks {
		if !task.done && !task.cancelled && task.due <= s.now {
			task.done = true
			due = append(due, task)
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].order < due[j].order
		}
		return due[i].due < due[j].due
	})
	for _, task := range due {
		task.fn()
	}
}

// Pending counts tasks that are neither run nor cancelled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, task := range s.tasks {
		if !task.done && !task.cancelled {
			count++
		}
	}
	return count
}

// Scheduled counts every task ever scheduled.
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (t *manualTask) Cancel() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// AsyncScheduler runs every callback on a new goroutine right away,
// ignoring the delay.
type AsyncScheduler struct{}

func (AsyncScheduler) Schedule(_ time.Duration, fn func()) validator.Task {
	task := &asyncTask{}
	go func() {
		task.mu.Lock()
		if task.cancelled {
			task.mu.Unlock()
			return
		}
		task.done = true
		task.mu.Unlock()
		fn()
	}()
	return task
}

type asyncTask struct {
	mu        sync.Mutex
	done      bool
	cancelled bool
}

func (t *asyncTask) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}
