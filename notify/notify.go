// Package notify delivers engine events to the UI layer.
package notify

import (
	"errors"
	"fmt"
)

const (
	EventKeybindTriggered = "keybind-triggered"
	EventBackendError     = "backend-error"
)

// Sink receives named events with a string payload. Emit must not block
// for long; slow consumers should sit behind a Queue.
type Sink interface {
	Emit(event, payload string) error
}

// Func adapts a function to Sink.
type Func func(event, payload string) error

func (f Func) Emit(event, payload string) error { return f(event, payload) }

// Discard drops every event.
var Discard Sink = Func(func(string, string) error { return nil })

// Fanout emits to every sink and joins their errors.
type Fanout []Sink

func (f Fanout) Emit(event, payload string) error {
	var errs []error
	for _, s := range f {
		if err := Safe(s, event, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Safe calls s.Emit and turns a panic into an error.
func Safe(s Sink, event, payload string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panic on %s: %v", event, r)
		}
	}()
	return s.Emit(event, payload)
}
