package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"keyhook/config"
	"keyhook/engine"
	"keyhook/hotkey"
	"keyhook/keybind"
	"keyhook/keys"
	"keyhook/log"
)

// runTestMode drives a Dispatcher over a fake hook from stdin commands:
//
//	PRESS <key> | RELEASE <key>
//	ADD <id> <combo> [action] | REMOVE <id> | CLEAR | ENABLE | DISABLE
//	SHORTCUT <name> | WAIT | SLEEP <ms> | QUIT
//
// Triggers print as "TRIGGERED <action>", failures as "ERROR <text>".
func runTestMode(profile string) int {
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	var out stdoutSink
	reg := keybind.NewRegistry()
	svc := engine.NewService(reg, out)
	if profile != "" {
		p, err := config.Load(profile)
		if err == nil {
			err = svc.ApplyProfile(p.Bindings(), p.Enabled)
		}
		if err != nil {
			fmt.Printf("ERROR %v\n", err)
			return 1
		}
	}

	hk := hotkey.NewFake()
	d := engine.NewDispatcher(hk, reg, out)
	var triggers atomic.Int64
	d.OnTrigger = func(keybind.Keybind) { triggers.Add(1) }

	log.SessionStart("fake", profile, reg.Len())
	defer func() { log.SessionEnd(int(triggers.Load())) }()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	<-hk.Registered()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if quit := testCommand(svc, hk, fields); quit {
			break
		}
	}

	cancel()
	if err := <-done; err != nil {
		fmt.Printf("ERROR %v\n", err)
		return 1
	}
	return 0
}

func testCommand(svc *engine.Service, hk *hotkey.FakeHook, f []string) (quit bool) {
	arg := func(i int) string {
		if i < len(f) {
			return f[i]
		}
		return ""
	}
	fail := func(err error) {
		if err != nil {
			fmt.Printf("ERROR %v\n", err)
		}
	}

	switch strings.ToUpper(f[0]) {
	case "PRESS", "RELEASE":
		k, err := keys.Resolve(arg(1))
		if err != nil {
			fail(err)
			return false
		}
		if strings.EqualFold(f[0], "PRESS") {
			hk.Press(k)
		} else {
			hk.Release(k)
		}
	case "ADD":
		action := arg(3)
		if action == "" {
			action = arg(1)
		}
		fail(svc.AddKeybind(arg(1), keys.SplitCombo(arg(2)), action))
	case "REMOVE":
		fail(svc.RemoveKeybind(arg(1)))
	case "CLEAR":
		svc.RemoveAllKeybinds()
	case "ENABLE":
		svc.EnableKeybinds()
	case "DISABLE":
		svc.DisableKeybinds()
	case "SHORTCUT":
		fmt.Println(svc.HandleShortcutAction(arg(1)))
	case "WAIT":
		// the fake hook is unbuffered: once this is taken, every earlier
		// event has been handled
		hk.Send(hotkey.Event{Kind: hotkey.Other})
	case "SLEEP":
		if ms, err := strconv.Atoi(arg(1)); err == nil {
			time.Sleep(time.Duration(ms) * time.Millisecond)
		}
	case "QUIT":
		return true
	default:
		fmt.Printf("ERROR unknown command %q\n", f[0])
	}
	return false
}
