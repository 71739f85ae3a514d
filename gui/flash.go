//go:build gui

package gui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	flashWidth  = 320
	flashHeight = 56
	flashHold   = 900 * time.Millisecond
	flashFade   = 400 * time.Millisecond
)

var (
	colorAction = color.RGBA{235, 235, 235, 255}
	colorError  = color.RGBA{255, 95, 86, 255}
)

// FlashWidget shows the last triggered action and fades it out.
type FlashWidget struct {
	widget.BaseWidget
	mu      sync.Mutex
	text    string
	isError bool
	shownAt time.Time
	tint    color.RGBA
	stopCh  chan struct{}
	onIdle  func()
}

func NewFlashWidget(tint color.RGBA, onIdle func()) *FlashWidget {
	f := &FlashWidget{tint: tint, stopCh: make(chan struct{}), onIdle: onIdle}
	f.ExtendBaseWidget(f)
	go f.animate()
	return f
}

func (f *FlashWidget) Flash(text string) {
	f.set(text, false)
}

func (f *FlashWidget) Error(text string) {
	f.set(text, true)
}

func (f *FlashWidget) set(text string, isError bool) {
	f.mu.Lock()
	f.text = text
	f.isError = isError
	f.shownAt = time.Now()
	f.mu.Unlock()
}

// alpha is the opacity factor (0..1) of a flash shown elapsed ago.
func alpha(elapsed time.Duration) float64 {
	switch {
	case elapsed < flashHold:
		return 1
	case elapsed < flashHold+flashFade:
		return 1 - float64(elapsed-flashHold)/float64(flashFade)
	}
	return 0
}

func (f *FlashWidget) Stop() {
	select {
	case <-f.stopCh:
	default:
		close(f.stopCh)
	}
}

func (f *FlashWidget) animate() {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	visible := false
	for {
		select {
		case <-f.stopCh:
			return
		case <-ticker.C:
			f.mu.Lock()
			a := 0.0
			if !f.shownAt.IsZero() {
				a = alpha(time.Since(f.shownAt))
			}
			f.mu.Unlock()

			if a > 0 {
				visible = true
			} else if visible {
				visible = false
				if f.onIdle != nil {
					f.onIdle()
				}
			}
			if visible {
				fyne.Do(func() {
					f.Refresh()
				})
			}
		}
	}
}

func (f *FlashWidget) MinSize() fyne.Size {
	return fyne.NewSize(flashWidth, flashHeight)
}

func (f *FlashWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(f.tint)
	bg.CornerRadius = 12
	label := canvas.NewText("", colorAction)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = 20
	label.TextStyle = fyne.TextStyle{Bold: true}
	return &flashRenderer{flash: f, bg: bg, label: label}
}

type flashRenderer struct {
	flash *FlashWidget
	bg    *canvas.Rectangle
	label *canvas.Text
}

func (r *flashRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	ts := r.label.MinSize()
	r.label.Resize(fyne.NewSize(size.Width, ts.Height))
	r.label.Move(fyne.NewPos(0, (size.Height-ts.Height)/2))
}

func (r *flashRenderer) MinSize() fyne.Size {
	return r.flash.MinSize()
}

func (r *flashRenderer) Refresh() {
	r.flash.mu.Lock()
	text := r.flash.text
	isError := r.flash.isError
	a := 0.0
	if !r.flash.shownAt.IsZero() {
		a = alpha(time.Since(r.flash.shownAt))
	}
	tint := r.flash.tint
	r.flash.mu.Unlock()

	fg := colorAction
	if isError {
		fg = colorError
	}
	fg.A = uint8(float64(fg.A) * a)
	tint.A = uint8(float64(tint.A) * a)

	r.label.Text = text
	r.label.Color = fg
	r.bg.FillColor = tint
	r.label.Refresh()
	r.bg.Refresh()
}

func (r *flashRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.label}
}

func (r *flashRenderer) Destroy() {
	r.flash.Stop()
}
