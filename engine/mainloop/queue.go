// Package mainloop moves work from other goroutines onto the render thread.
package mainloop

import "sync"

// Queue collects tasks posted from any goroutine and runs them when the main
// loop drains it. Posting a key that is already queued replaces its task, so a
// burst of the same work runs once with the latest callback.
type Queue struct {
	mu      sync.Mutex
	order   []string
	tasks   map[string]func()
	wake    func()
	stopped bool
}

// NewQueue builds a queue. wake is called after every accepted post to get the
// main loop out of a blocking wait; it may be nil.
func NewQueue(wake func()) *Queue {
	return &Queue{tasks: make(map[string]func()), wake: wake}
}

func (q *Queue) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	if _, ok := q.tasks[key]; !ok {
		q.order = append(q.order, key)
	}
	q.tasks[key] = fn
	wake := q.wake
	q.mu.Unlock()

	if wake != nil {
		wake()
	}
}

// Drain runs queued tasks in first-post order and returns how many ran.
// It must be called from the main loop.
func (q *Queue) Drain() int {
	q.mu.Lock()
	order := q.order
	tasks := q.tasks
	q.order = nil
	q.tasks = make(map[string]func())
	q.mu.Unlock()

	for _, key := range order {
		tasks[key]()
	}
	return len(order)
}

// Stop drops pending work and rejects further posts.
func (q *Queue) Stop() {
	q.mu.Lock()
	q.stopped = true
	q.order = nil
	q.tasks = make(map[string]func())
	q.mu.Unlock()
}
