package engine

import (
	"context"
	"fmt"

	"keyhook/hotkey"
	"keyhook/keybind"
	"keyhook/log"
	"keyhook/notify"
)

// Dispatcher consumes hook events in arrival order. The pressed set is
// confined to Run's goroutine; the registry mutex is the only lock taken.
type Dispatcher struct {
	hook     hotkey.Hook
	registry *keybind.Registry
	sink     notify.Sink
	tracker  *Tracker

	// OnTrigger, if set, runs on the dispatch goroutine after a match has
	// been emitted. It must not block.
	OnTrigger func(kb keybind.Keybind)
}

func NewDispatcher(h hotkey.Hook, r *keybind.Registry, sink notify.Sink) *Dispatcher {
	if sink == nil {
		sink = notify.Discard
	}
	return &Dispatcher{
		hook:     h,
		registry: r,
		sink:     sink,
		tracker:  NewTracker(),
	}
}

// Run installs the hook and processes events until ctx is cancelled. A
// hook that fails to install, or stops on its own, is reported once on the
// sink and Run returns the error. Run does not retry.
func (d *Dispatcher) Run(ctx context.Context) error {
	if err := d.hook.Register(); err != nil {
		err = fmt.Errorf("install keyboard hook: %w", err)
		log.HookFailed(err)
		d.reportError(err.Error())
		return err
	}
	defer d.hook.Unregister()
	d.tracker.Reset()
	log.HookStarted(hotkey.Backend())

	events := d.hook.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				log.HookFailed(hotkey.ErrHookClosed)
				d.reportError(hotkey.ErrHookClosed.Error())
				return hotkey.ErrHookClosed
			}
			d.handle(ev)
		}
	}
}

func (d *Dispatcher) handle(ev hotkey.Event) {
	switch ev.Kind {
	case hotkey.Press:
		d.tracker.Press(ev.Key)
		kb, ok := d.registry.Lookup(d.tracker.Pressed())
		if !ok {
			return
		}
		log.KeybindTriggered(kb.Action(), kb.Keys().String())
		d.emit(notify.EventKeybindTriggered, kb.Action())
		if d.OnTrigger != nil {
			d.OnTrigger(kb)
		}
	case hotkey.Release:
		d.tracker.Release(ev.Key)
	}
}

// emit delivers an event; a failed delivery is turned into a best-effort
// backend-error.
func (d *Dispatcher) emit(event, payload string) {
	err := notify.Safe(d.sink, event, payload)
	if err == nil {
		return
	}
	log.NotifyFailed(event, err)
	d.reportError(fmt.Sprintf("failed to deliver %s: %v", event, err))
}

func (d *Dispatcher) reportError(msg string) {
	if err := notify.Safe(d.sink, notify.EventBackendError, msg); err != nil {
		log.NotifyFailed(notify.EventBackendError, err)
	}
}
