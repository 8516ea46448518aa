// Package workermock holds test doubles for worker.Runner.
package workermock

import (
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/platform/worker"
)

var _ worker.Runner = (*QueueRunner)(nil)

// QueueRunner holds tasks until a test runs them, so tests choose the
// completion order of concurrent requests.
type QueueRunner struct {
	mu    sync.Mutex
	tasks []func()
}

func (q *QueueRunner) Go(task func()) error {
	if task == nil {
		return nil
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
	return nil
}

func (q *QueueRunner) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Run executes the queued task at index i and removes it from the queue.
func (q *QueueRunner) Run(i int) bool {
	q.mu.Lock()
	if i < 0 || i >= len(q.tasks) {
		q.mu.Unlock()
		return false
	}
	task := q.tasks[i]
	q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
	q.mu.Unlock()

	task()
	return true
}

// Drain runs queued tasks in submission order until the queue is empty.
func (q *QueueRunner) Drain() {
	for q.Run(0) {
	}
}
