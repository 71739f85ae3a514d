//go:build gui

package gui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// trayIconPNG draws a small keycap outline for the system tray.
func trayIconPNG() []byte {
	const size = 22
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	edge := color.RGBA{220, 220, 220, 255}
	face := color.RGBA{90, 90, 90, 255}
	for y := 3; y < size-3; y++ {
		for x := 3; x < size-3; x++ {
			if x == 3 || x == size-4 || y == 3 || y == size-4 {
				img.Set(x, y, edge)
			} else if y > 6 && y < size-7 && x > 6 && x < size-7 {
				img.Set(x, y, face)
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic("trayIconPNG: " + err.Error())
	}
	return buf.Bytes()
}
