//go:build gui

package gui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/go-gl/glfw/v3.3/glfw"

	"keyhook/effect"
	"keyhook/notify"
)

var opaque = color.RGBA{18, 18, 18, 255}

// App is the overlay window host. It implements notify.Sink.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	flash    *FlashWidget
	onReady  func()
	posX     int
	posY     int
	tint     color.RGBA
	effect   string
	toggleMu sync.Mutex
	onToggle func(bool)
	toggle   *fyne.MenuItem
}

// NewApp creates the host. req is the window effect to apply; ok false
// means no effect is supported and the overlay stays opaque.
func NewApp(onReady func(), req effect.Request, ok bool) *App {
	a := &App{onReady: onReady, tint: opaque}
	if ok {
		a.effect = req.Effect
		if req.Tint != (effect.Color{}) {
			a.tint = color.RGBA{req.Tint.R, req.Tint.G, req.Tint.B, req.Tint.A}
		} else {
			a.tint = color.RGBA{18, 18, 18, 200}
		}
	}
	return a
}

// Effect reports the effect applied, or "" when opaque.
func (a *App) Effect() string { return a.effect }

// OnToggle installs the handler for the tray "Keybinds Enabled" item.
func (a *App) OnToggle(fn func(bool)) {
	a.toggleMu.Lock()
	a.onToggle = fn
	a.toggleMu.Unlock()
}

func Run(a *App) error {
	a.fyneApp = app.NewWithID("io.keyhook.gui")
	a.fyneApp.Settings().SetTheme(&darkTheme{tint: a.tint})

	if desk, ok := a.fyneApp.(desktop.App); ok {
		icon := fyne.NewStaticResource("tray.png", trayIconPNG())
		a.toggle = fyne.NewMenuItem("Keybinds Enabled", func() {
			a.toggleMu.Lock()
			fn := a.onToggle
			a.toggleMu.Unlock()
			if fn != nil {
				fn(!a.toggle.Checked)
			}
		})
		a.toggle.Checked = true
		menu := fyne.NewMenu("keyhook",
			a.toggle,
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Quit", func() {
				a.fyneApp.Quit()
			}),
		)
		desk.SetSystemTrayMenu(menu)
		desk.SetSystemTrayIcon(icon)
	}

	var screenW, screenH int
	monitor := glfw.GetPrimaryMonitor()
	if monitor != nil {
		_, _, screenW, screenH = monitor.GetWorkarea()
	} else {
		screenW, screenH = 1920, 1080 // fallback
	}

	if drv, ok := a.fyneApp.Driver().(desktop.Driver); ok {
		a.window = drv.CreateSplashWindow()
	} else {
		a.window = a.fyneApp.NewWindow("keyhook")
	}

	a.flash = NewFlashWidget(a.tint, a.Hide)
	a.window.SetContent(a.flash)
	a.window.SetFixedSize(true)
	a.window.SetPadded(false)

	size := a.flash.MinSize()
	a.window.Resize(size)

	// bottom-center, clear of the dock
	a.posX = (screenW - int(size.Width)) / 2
	a.posY = screenH - int(size.Height) - 80

	go a.onReady()

	a.fyneApp.Run()
	return nil
}

func (a *App) Quit() {
	if a.fyneApp != nil {
		a.fyneApp.Quit()
	}
}

// SetEnabled mirrors the keybind gate in the tray menu.
func (a *App) SetEnabled(on bool) {
	fyne.Do(func() {
		if a.toggle == nil {
			return
		}
		a.toggle.Checked = on
		if desk, ok := a.fyneApp.(desktop.App); ok {
			desk.SetSystemTrayMenu(fyne.NewMenu("keyhook",
				a.toggle,
				fyne.NewMenuItemSeparator(),
				fyne.NewMenuItem("Quit", func() { a.fyneApp.Quit() }),
			))
		}
	})
}

func (a *App) Show() {
	fyne.Do(func() {
		if a.window == nil {
			return
		}

		// Configure GLFW attributes BEFORE showing
		if glfwWin := glfw.GetCurrentContext(); glfwWin != nil {
			glfwWin.SetPos(a.posX, a.posY)
			glfwWin.SetAttrib(glfw.FocusOnShow, glfw.False)
			glfwWin.SetAttrib(glfw.Floating, glfw.True)
			glfwWin.Show()
			return
		}
		a.window.Show()
	})
}

func (a *App) Hide() {
	fyne.Do(func() {
		if a.window != nil {
			a.window.Hide()
		}
	})
}

// Emit shows triggers and backend errors in the overlay. It never blocks
// on the UI thread.
func (a *App) Emit(event, payload string) error {
	if a.flash == nil {
		return nil
	}
	switch event {
	case notify.EventKeybindTriggered:
		a.flash.Flash(payload)
	case notify.EventBackendError:
		a.flash.Error(payload)
	default:
		return nil
	}
	a.Show()
	return nil
}
