package glyph

import "sync"

// Scheduler runs tasks later on the goroutine that owns the board, never
// concurrently with other board mutations.
type Scheduler interface {
	Defer(task func())
}

// Queue is a Scheduler for owners without an event loop of their own. Tasks
// run, in order, when the owner calls Drain.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

func (q *Queue) Defer(task func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, task)
}

// Pending returns the number of tasks waiting to run.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Drain runs pending tasks until none are left, including tasks deferred by
// the tasks it runs. It returns how many ran.
func (q *Queue) Drain() int {
	ran := 0
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return ran
		}
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		task()
		ran++
	}
}
