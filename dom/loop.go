// Package dom models the slice of a browser host that UI helpers depend on:
// a single-threaded event loop with timers, an element tree, and a document
// that dispatches click events to registered listeners.
package dom

import (
	"sync"
	"sync/atomic"
	"time"
)

// Loop runs tasks one at a time, in the order they were queued, on a single
// goroutine. Everything that touches a Document or a Binding runs on it.
type Loop struct {
	mu    sync.Mutex
	queue []func()

	wake     chan struct{}
	quit     chan struct{}
	done     chan struct{}
	start    sync.Once
	stop     sync.Once
	started  atomic.Bool
	stopped  atomic.Bool
	executed atomic.Uint64
}

func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start launches the loop goroutine. Calling it more than once is a no-op.
func (l *Loop) Start() {
	l.start.Do(func() {
		l.started.Store(true)
		go l.run()
	})
}

// Stop ends the loop after the task in progress returns. Queued tasks are
// dropped.
func (l *Loop) Stop() {
	l.stop.Do(func() {
		l.stopped.Store(true)
		close(l.quit)
	})
	l.start.Do(func() {
		close(l.done)
	})
	<-l.done
}

// Post queues fn behind every task already queued.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Do queues fn and waits for it to run. It must not be called from the loop
// goroutine. It returns false without queueing fn when the loop was never
// started or has stopped, and false if the loop stopped before fn ran.
func (l *Loop) Do(fn func()) bool {
	if !l.started.Load() || l.stopped.Load() {
		return false
	}

	ran := make(chan struct{})
	l.Post(func() {
		defer close(ran)
		fn()
	})

	select {
	case <-ran:
		return true
	case <-l.done:
		return false
	}
}

// Executed reports how many tasks the loop has run.
func (l *Loop) Executed() uint64 {
	return l.executed.Load()
}

func (l *Loop) run() {
	defer close(l.done)

	for {
		task, ok := l.next()
		if !ok {
			select {
			case <-l.wake:
				continue
			case <-l.quit:
				return
			}
		}

		select {
		case <-l.quit:
			return
		default:
		}

		task()
		l.executed.Add(1)
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, false
	}
	task := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return task, true
}

// Timer is a pending SetTimeout callback.
type Timer struct {
	cleared atomic.Bool
	fired   atomic.Bool
	timer   *time.Timer
}

// Fired reports whether the callback ran.
func (t *Timer) Fired() bool {
	return t != nil && t.fired.Load()
}

// SetTimeout runs fn on the loop once d has elapsed. A zero or negative d
// queues fn behind the tasks already waiting, so it runs on the next tick.
func (l *Loop) SetTimeout(d time.Duration, fn func()) *Timer {
	t := &Timer{}
	task := func() {
		if t.cleared.Load() {
			return
		}
		t.fired.Store(true)
		fn()
	}

	if d <= 0 {
		l.Post(task)
		return t
	}

	t.timer = time.AfterFunc(d, func() {
		l.Post(task)
	})
	return t
}

// ClearTimeout cancels t. Clearing a nil, fired, or already cleared timer is
// a no-op.
func (l *Loop) ClearTimeout(t *Timer) {
	if t == nil {
		return
	}
	t.cleared.Store(true)
	if t.timer != nil {
		t.timer.Stop()
	}
}
