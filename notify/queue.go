package notify

import (
	"errors"
	"sync"
)

var (
	ErrQueueFull   = errors.New("notification queue full")
	ErrQueueClosed = errors.New("notification queue closed")
)

type message struct {
	event, payload string
}

// Queue forwards events to a slow sink from its own goroutine, preserving
// order. Emit never blocks: it fails with ErrQueueFull instead.
type Queue struct {
	next    Sink
	ch      chan message
	done    chan struct{}
	mu      sync.RWMutex
	closed  bool
	onError func(event string, err error)
}

func NewQueue(next Sink, size int, onError func(event string, err error)) *Queue {
	q := &Queue{
		next:    next,
		ch:      make(chan message, size),
		done:    make(chan struct{}),
		onError: onError,
	}
	go q.loop()
	return q
}

func (q *Queue) loop() {
	defer close(q.done)
	for m := range q.ch {
		if err := Safe(q.next, m.event, m.payload); err != nil && q.onError != nil {
			q.onError(m.event, err)
		}
	}
}

func (q *Queue) Emit(event, payload string) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.ch <- message{event, payload}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queued ones are delivered.
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	q.mu.Unlock()
	<-q.done
}
