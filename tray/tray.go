package tray

import (
	"sync"
	"time"
)

// Binding is a keybind as listed in the tray menu.
type Binding struct {
	ID          string
	Combo       string
	Description string
}

func (b Binding) label() string {
	name := b.Description
	if name == "" {
		name = b.ID
	}
	return name + "    " + b.Combo
}

var (
	quitCh    = make(chan struct{})
	closeOnce sync.Once

	copyLastFn func()
	toggleFn   func(bool)
	reloadFn   func()

	stateMu sync.Mutex
	enabled = true

	bindMu   sync.Mutex
	bindings []Binding

	loginOn bool
	loginCb func(bool) error
)

func OnCopyLast(fn func())        { copyLastFn = fn }
func OnToggle(fn func(bool))      { toggleFn = fn }
func OnReload(fn func())          { reloadFn = fn }
func SetLogin(on bool)            { loginOn = on }
func OnLogin(fn func(bool) error) { loginCb = fn }

// SetEnabled reflects the keybind gate in the menu and icon.
func SetEnabled(on bool) {
	stateMu.Lock()
	enabled = on
	stateMu.Unlock()
	updateEnabled(on)
	updateTooltip(tooltip())
}

func isEnabled() bool {
	stateMu.Lock()
	defer stateMu.Unlock()
	return enabled
}

func tooltip() string {
	if isEnabled() {
		return "keyhook – keybinds on"
	}
	return "keyhook – keybinds off"
}

// SetKeybinds replaces the read-only keybind list.
func SetKeybinds(bs []Binding) {
	bindMu.Lock()
	bindings = append([]Binding(nil), bs...)
	bindMu.Unlock()
	refreshKeybinds()
}

func SetLastAction(action string) {
	updateCopyLastTitle("Copy Last Action (" + action + ")")
}

func SetError(msg string) {
	updateWarning(true)
	updateTooltip("keyhook – " + msg)
	go func() {
		time.Sleep(10 * time.Second)
		updateWarning(false)
		updateTooltip(tooltip())
	}()
}

func SetUpdateAvailable(version string) {
	addUpdateMenuItem(version)
}

func Quit() {
	closeOnce.Do(func() { close(quitCh) })
}
