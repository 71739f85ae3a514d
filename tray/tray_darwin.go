//go:build darwin

package tray

import (
	"os/exec"

	"github.com/energye/systray"
	"golang.design/x/hotkey/mainthread"
)

var (
	mEnabled  *systray.MenuItem
	mCopy     *systray.MenuItem
	mKeybinds *systray.MenuItem
	bindItems []*systray.MenuItem
	menuReady chan struct{}

	mSettings *systray.MenuItem
	mLogin    *systray.MenuItem
	mUpdate   *systray.MenuItem
)

func Init() <-chan struct{} {
	menuReady = make(chan struct{})
	start, _ := systray.RunWithExternalLoop(onReady, onExit)
	done := make(chan struct{})
	mainthread.Call(func() {
		start()
		close(done)
	})
	<-done
	return quitCh
}

// started reports whether Init has run; menu calls before it are dropped
// and onReady picks up the current state.
func started() bool { return menuReady != nil }

func updateEnabled(on bool) {
	if !started() {
		return
	}
	if on {
		systray.SetTemplateIcon(iconOnHi, iconOn)
	} else {
		systray.SetTemplateIcon(iconOffHi, iconOff)
	}
	if mEnabled != nil {
		if on {
			mEnabled.Check()
		} else {
			mEnabled.Uncheck()
		}
	}
}

func updateWarning(on bool) {
	if !started() {
		return
	}
	if on {
		systray.SetIcon(iconWarnHi)
		return
	}
	updateEnabled(isEnabled())
}

func updateTooltip(msg string) {
	if !started() {
		return
	}
	systray.SetTooltip(msg)
}

func refreshKeybinds() {
	if !started() {
		return
	}
	<-menuReady

	bindMu.Lock()
	defer bindMu.Unlock()

	for i, item := range bindItems {
		if i < len(bindings) {
			item.SetTitle(bindings[i].label())
			item.Show()
		} else {
			item.Hide()
		}
	}
	for i := len(bindItems); i < len(bindings); i++ {
		item := mKeybinds.AddSubMenuItem(bindings[i].label(), bindings[i].ID)
		item.Disable()
		bindItems = append(bindItems, item)
	}
}

func onReady() {
	updateEnabled(isEnabled())
	systray.SetTooltip(tooltip())

	mEnabled = systray.AddMenuItemCheckbox("Keybinds Enabled", "Enable or disable all keybinds", isEnabled())
	mEnabled.Click(func() {
		on := !mEnabled.Checked()
		if toggleFn != nil {
			toggleFn(on)
		}
	})

	mCopy = systray.AddMenuItem("Copy Last Action", "Copy the last triggered action to clipboard")
	mCopy.Disable()
	mCopy.Click(func() {
		if copyLastFn != nil {
			copyLastFn()
		}
	})

	systray.AddSeparator()

	mKeybinds = systray.AddMenuItem("Keybinds", "Registered keybinds")
	bindMu.Lock()
	bindItems = make([]*systray.MenuItem, 0, len(bindings))
	for _, b := range bindings {
		item := mKeybinds.AddSubMenuItem(b.label(), b.ID)
		item.Disable()
		bindItems = append(bindItems, item)
	}
	bindMu.Unlock()

	mReload := systray.AddMenuItem("Reload Profile", "Reload the keybind profile from disk")
	mReload.Click(func() {
		if reloadFn != nil {
			reloadFn()
		}
	})

	mSettings = systray.AddMenuItem("Settings", "Settings")
	mLogin = mSettings.AddSubMenuItemCheckbox("Start on Login", "Launch keyhook when you log in", loginOn)
	mLogin.Click(func() {
		if mLogin.Checked() {
			mLogin.Uncheck()
		} else {
			mLogin.Check()
		}
		if loginCb != nil {
			loginCb(mLogin.Checked())
		}
	})

	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Quit keyhook")
	mQuit.Click(func() { Quit() })
	systray.CreateMenu()

	close(menuReady)
}

func updateCopyLastTitle(title string) {
	if mCopy != nil {
		mCopy.SetTitle(title)
		mCopy.Enable()
	}
}

func addUpdateMenuItem(version string) {
	if mUpdate != nil {
		mUpdate.SetTitle("⚠ Update available: " + version)
		mUpdate.Show()
		return
	}
	if mSettings == nil {
		return
	}
	mUpdate = mSettings.AddSubMenuItem("Update available: "+version, "Open release page")
	mUpdate.Click(func() {
		url := "https://github.com/keyhook/keyhook/releases/tag/" + version
		exec.Command("open", url).Start()
	})
}

func onExit() {
	closeOnce.Do(func() { close(quitCh) })
}
