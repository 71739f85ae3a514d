package notify

import (
	"sync"
	"time"
)

// Event is one recorded emission.
type Event struct {
	Name    string
	Payload string
}

// Recorder is an in-memory Sink for tests and the stdin test mode.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	fail   map[string]error
	signal chan struct{}
}

func NewRecorder() *Recorder {
	return &Recorder{
		fail:   make(map[string]error),
		signal: make(chan struct{}, 1),
	}
}

// FailOn makes Emit return err for the named event. A nil err clears it.
func (r *Recorder) FailOn(event string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.fail, event)
		return
	}
	r.fail[event] = err
}

func (r *Recorder) Emit(event, payload string) error {
	r.mu.Lock()
	if err := r.fail[event]; err != nil {
		r.mu.Unlock()
		return err
	}
	r.events = append(r.events, Event{Name: event, Payload: payload})
	r.mu.Unlock()

	select {
	case r.signal <- struct{}{}:
	default:
	}
	return nil
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Named returns the payloads recorded for one event name.
func (r *Recorder) Named(event string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.Name == event {
			out = append(out, e.Payload)
		}
	}
	return out
}

// WaitFor blocks until at least n events are recorded or the timeout
// elapses, and reports whether the count was reached.
func (r *Recorder) WaitFor(n int, timeout time.Duration) bool {
	deadline := time.After(timeout)
	for {
		r.mu.Lock()
		got := len(r.events)
		r.mu.Unlock()
		if got >= n {
			return true
		}
		select {
		case <-r.signal:
		case <-deadline:
			return false
		}
	}
}
