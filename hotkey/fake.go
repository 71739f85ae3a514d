package hotkey

import (
	"sync"

	"keyhook/keys"
)

// FakeHook is a Hook driven by the caller. Used by tests and the stdin
// test mode. Its channel is unbuffered: Send returns once the consumer has
// taken the event, so a second Send returning means the first one has been
// fully handled by a single-goroutine consumer.
type FakeHook struct {
	events      chan Event
	registerErr error
	once        sync.Once
	regOnce     sync.Once
	registered  chan struct{}
}

func NewFake() *FakeHook {
	return &FakeHook{
		events:     make(chan Event),
		registered: make(chan struct{}),
	}
}

// NewFailingFake returns a hook whose Register fails with err.
func NewFailingFake(err error) *FakeHook {
	f := NewFake()
	f.registerErr = err
	return f
}

func (f *FakeHook) Register() error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.regOnce.Do(func() { close(f.registered) })
	return nil
}

func (f *FakeHook) Unregister()                 {}
func (f *FakeHook) Events() <-chan Event        { return f.events }
func (f *FakeHook) Registered() <-chan struct{} { return f.registered }

func (f *FakeHook) Send(ev Event)      { f.events <- ev }
func (f *FakeHook) Press(k keys.Key)   { f.Send(Event{Kind: Press, Key: k}) }
func (f *FakeHook) Release(k keys.Key) { f.Send(Event{Kind: Release, Key: k}) }

// Close ends the event stream as a crashed backend would.
func (f *FakeHook) Close() {
	f.once.Do(func() { close(f.events) })
}
