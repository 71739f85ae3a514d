//go:build gui

package main

import (
	"runtime"

	"keyhook/effect"
	"keyhook/gui"
)

var guiApp *gui.App

func initGUI() {
	guiMode = true

	// Lock this goroutine to OS thread for Fyne/GLFW
	runtime.LockOSThread()

	req, ok := effect.Pick(effect.Detect())
	guiApp = gui.NewApp(func() {
		run()
	}, req, ok)
	guiApp.OnToggle(setEnabled)
	guiSink = guiApp
	if err := gui.Run(guiApp); err != nil {
		panic(err)
	}
}

func guiSetEnabled(on bool) {
	if guiApp != nil {
		guiApp.SetEnabled(on)
	}
}
