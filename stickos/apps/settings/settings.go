// Package settings edits the backlight level.
package settings

import (
	"fmt"
	"image/color"

	"stickv/hal"
	"stickv/stickos/kernel"
)

var (
	colorBG  = color.RGBA{A: 0xff}
	colorFG  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBar = color.RGBA{R: 0xff, G: 0xc0, A: 0xff}
	colorRed = color.RGBA{R: 0xff, A: 0xff}
)

// Lowest level offered; 0 would leave the screen unreadable.
const minLevel = 1

// Store persists the chosen level.
type Store interface {
	Brightness() int
	SetBrightness(level int) error
}

// App previews the level live; Home saves it and the next back press reboots to apply it.
type App struct {
	sh    kernel.Shell
	store Store
	level int
	saved bool
	err   string
}

func New(sh kernel.Shell, store Store) *App {
	level := store.Brightness()
	if level < minLevel {
		level = minLevel
	}
	if level > hal.MaxBrightness {
		level = hal.MaxBrightness
	}
	return &App{sh: sh, store: store, level: level}
}

func (a *App) Level() int  { return a.level }
func (a *App) Saved() bool { return a.saved }

func (a *App) Draw() error {
	d := a.sh.Display()
	d.Clear(colorBG)
	d.DrawString(4, 2, "Brightness", colorFG, colorBG)

	const barX, barY, barH = 4, 24, 14
	maxW := d.Width() - 2*barX
	c := d.Canvas()
	_ = c.FillRectangle(barX, barY, maxW, barH, colorBG)
	_ = c.FillRectangle(barX, barY, maxW*int16(a.level)/hal.MaxBrightness, barH, colorBar)
	_ = c.Display()

	d.DrawString(4, barY+barH+4, fmt.Sprintf("level %2d / %d", a.level, hal.MaxBrightness), colorFG, colorBG)

	switch {
	case a.err != "":
		d.DrawString(4, d.Height()-2*hal.FontLineHeight, a.err, colorRed, colorBG)
	case a.saved:
		d.DrawString(4, d.Height()-2*hal.FontLineHeight, "saved, BACK to reboot", colorRed, colorBG)
	}
	d.DrawString(4, d.Height()-hal.FontLineHeight, "TOP +1  HOME save", colorFG, colorBG)
	return nil
}

func (a *App) BackPressed() kernel.BackResult {
	if a.saved {
		return kernel.BackReboot
	}
	// Leaving without saving drops the preview.
	a.preview(a.store.Brightness())
	return kernel.BackUnhandled
}

func (a *App) HomeButtonChanged(state kernel.ButtonState) error {
	if state != kernel.Pressed {
		return nil
	}
	if err := a.store.SetBrightness(a.level); err != nil {
		a.sh.Logger().WriteLineString("settings: save brightness: " + err.Error())
		a.err = "not saved: " + err.Error()
	} else {
		a.saved = true
		a.err = ""
	}
	a.sh.Invalidate()
	return nil
}

func (a *App) TopButtonChanged(state kernel.ButtonState) error {
	if state != kernel.Pressed {
		return nil
	}
	a.level++
	if a.level > hal.MaxBrightness {
		a.level = minLevel
	}
	a.preview(a.level)
	a.sh.Invalidate()
	return nil
}

func (a *App) PeriodicTask() {}

func (a *App) preview(level int) {
	if level < 0 || level > hal.MaxBrightness {
		return
	}
	if err := a.sh.PMU().SetScreenBrightness(uint8(level)); err != nil {
		a.sh.Logger().WriteLineString("settings: preview: " + err.Error())
	}
}
