// Package launcher is the root application: a menu of the installed apps.
package launcher

import (
	"image/color"

	"stickv/hal"
	"stickv/stickos/kernel"
)

var (
	colorBG     = color.RGBA{A: 0xff}
	colorFG     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorAccent = color.RGBA{R: 0xff, A: 0xff}
	colorDim    = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// Entry is one menu item.
type Entry struct {
	Name string
	Open func(sh kernel.Shell) kernel.App
}

// App lists entries; Top moves the selection and Home opens it.
type App struct {
	sh       kernel.Shell
	entries  []Entry
	selected int
}

func New(sh kernel.Shell, entries ...Entry) *App {
	return &App{sh: sh, entries: entries}
}

// Selected returns the highlighted entry index.
func (a *App) Selected() int { return a.selected }

func (a *App) Draw() error {
	d := a.sh.Display()
	d.Clear(colorBG)
	d.DrawString(4, 2, "StickV", colorAccent, colorBG)

	if len(a.entries) == 0 {
		d.DrawString(4, 2+hal.FontLineHeight*2, "no apps installed", colorDim, colorBG)
		return nil
	}

	y := int16(2 + hal.FontLineHeight + 4)
	// Scroll so the selection stays on screen.
	rows := int((d.Height() - y - hal.FontLineHeight) / hal.FontLineHeight)
	first := 0
	if rows > 0 && a.selected >= rows {
		first = a.selected - rows + 1
	}
	for i := first; i < len(a.entries) && (rows <= 0 || i < first+rows); i++ {
		fg, bg := colorFG, colorBG
		prefix := "  "
		if i == a.selected {
			fg, bg = colorBG, colorFG
			prefix = "> "
		}
		d.DrawString(4, y, prefix+a.entries[i].Name, fg, bg)
		y += hal.FontLineHeight
	}
	d.DrawString(4, d.Height()-hal.FontLineHeight, "TOP next  HOME open", colorDim, colorBG)
	return nil
}

// BackPressed is always handled: the launcher is never popped.
func (a *App) BackPressed() kernel.BackResult { return kernel.BackHandled }

func (a *App) HomeButtonChanged(state kernel.ButtonState) error {
	if state != kernel.Pressed || len(a.entries) == 0 {
		return nil
	}
	e := a.entries[a.selected]
	if e.Open == nil {
		return nil
	}
	a.sh.Logger().WriteLineString("launcher: opening " + e.Name)
	a.sh.Navigate(e.Open(a.sh))
	return nil
}

func (a *App) TopButtonChanged(state kernel.ButtonState) error {
	if state != kernel.Pressed || len(a.entries) == 0 {
		return nil
	}
	a.selected = (a.selected + 1) % len(a.entries)
	a.sh.Invalidate()
	return nil
}

func (a *App) PeriodicTask() {}
