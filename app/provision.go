package app

import (
	"context"
	"image"
	"image/color"
)

var (
	colorBlack = color.RGBA{A: 0xFF}
	colorWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorRed   = color.RGBA{R: 0xFF, A: 0xFF}
)

// provision shows the boot splash with the button legends, turns the backlight
// on and waits for one event before the launcher takes over.
func (s *Shell) provision(ctx context.Context) {
	d := s.disp
	splash := s.opts.Splash
	if splash == nil {
		splash = defaultSplash(int(d.Width()), int(d.Height()))
	}
	d.DrawImage(splash)
	d.DrawString(54, 6, "NEXT", colorRed, colorBlack)
	d.DrawString(168, 6, "ENTER", colorRed, colorBlack)
	d.DrawString(152, d.Height()-18, "BACK/POWER", colorRed, colorBlack)
	d.DrawString(21, d.Height()-18, "StickV Computer", colorWhite, colorBlack)
	s.restoreBrightness()

	s.logf("provisioning screen shown, waiting for a button")
	ev := s.PollForEvent(ctx)
	if ev.Kind == ButtonEvent {
		s.logf("provisioning dismissed by %s button", ev.Button)
	}
}

// defaultSplash draws a camera lens on a dark gradient.
func defaultSplash(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		w, h = 240, 135
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := w/2, h/2
	r := h / 4
	for y := 0; y < h; y++ {
		shade := uint8(0x30 * (h - y) / h)
		for x := 0; x < w; x++ {
			c := color.RGBA{R: shade / 2, G: shade / 2, B: shade, A: 0xFF}
			dx, dy := x-cx, y-cy
			d2 := dx*dx + dy*dy
			switch {
			case d2 <= (r/3)*(r/3):
				c = color.RGBA{R: 0x10, G: 0x10, B: 0x30, A: 0xFF}
			case d2 <= (r*2/3)*(r*2/3):
				c = color.RGBA{R: 0x20, G: 0x40, B: 0x90, A: 0xFF}
			case d2 <= r*r:
				c = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC8, A: 0xFF}
			}
			img.SetRGBA(x, y, c)
		}
	}
	// Lens highlight.
	for y := cy - r/2; y < cy-r/2+4; y++ {
		for x := cx - r/3; x < cx-r/3+4; x++ {
			img.SetRGBA(x, y, colorWhite)
		}
	}
	return img
}
