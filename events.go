package main

import (
	"fmt"
	"time"

	"keyhook/log"
	"keyhook/notify"
	"keyhook/tray"
)

// guiSink is set by initGUI in builds with the overlay window.
var guiSink notify.Sink

var queues []*notify.Queue

// traySink surfaces backend errors on the menu bar icon.
var traySink = notify.Func(func(event, payload string) error {
	if event == notify.EventBackendError {
		tray.SetError(payload)
	}
	return nil
})

// tuiSink forwards events to the terminal UI.
type tuiSink struct{}

func (tuiSink) Emit(event, payload string) error {
	switch event {
	case notify.EventKeybindTriggered:
		tuiSend(TriggeredMsg{Action: payload, At: time.Now()})
	case notify.EventBackendError:
		tuiSend(ErrorMsg{Text: payload})
	}
	return nil
}

// stdoutSink prints events for the stdin-driven test mode.
type stdoutSink struct{}

func (stdoutSink) Emit(event, payload string) error {
	switch event {
	case notify.EventKeybindTriggered:
		fmt.Printf("TRIGGERED %s\n", payload)
	case notify.EventBackendError:
		fmt.Printf("ERROR %s\n", payload)
	}
	return nil
}

// buildSink wires every display layer behind its own queue so a slow
// window never stalls the dispatcher.
func buildSink() notify.Sink {
	out := notify.Fanout{traySink}
	attach := func(s notify.Sink) {
		q := notify.NewQueue(s, 64, log.NotifyFailed)
		queues = append(queues, q)
		out = append(out, q)
	}
	if tuiProgram != nil {
		attach(tuiSink{})
	}
	if guiSink != nil {
		attach(guiSink)
	}
	return out
}

func closeSinks() {
	for _, q := range queues {
		q.Close()
	}
}
