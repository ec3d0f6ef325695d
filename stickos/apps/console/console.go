// Package console shows the tail of the shell log in a terminal view.
package console

import (
	"image/color"
	"strings"

	"stickv/hal"
	"stickv/stickos/kernel"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	fontHeight = 10
	fontOffset = 6
)

// Source is a log that remembers its recent lines.
type Source interface {
	Lines() []string
	Seq() uint64
}

// App redraws whenever the log has grown. Top toggles following new lines.
type App struct {
	sh     kernel.Shell
	src    Source
	font   *tinyfont.Font
	shown  uint64
	paused bool
}

func New(sh kernel.Shell, src Source) *App {
	return &App{sh: sh, src: src, font: &proggy.TinySZ8pt7b}
}

func (a *App) Draw() error {
	d := a.sh.Display()
	d.Clear(color.RGBA{A: 0xff})

	c := d.Canvas()
	c.StopScroll()
	t := tinyterm.NewTerminal(fixedCanvas{c})
	t.Configure(&tinyterm.Config{
		Font:       a.font,
		FontHeight: fontHeight,
		FontOffset: fontOffset,
	})

	w, h := c.Size()
	_, cw := tinyfont.LineWidth(a.font, "0")
	cols := 1
	if cw > 0 {
		cols = int(w) / int(cw)
	}
	rows := int(h)/fontHeight - 1

	a.shown = a.src.Seq()
	for _, line := range tail(a.src.Lines(), rows, cols) {
		_, _ = t.Write([]byte(line))
		_, _ = t.Write([]byte{'\n'})
	}
	if a.paused {
		_, _ = t.Write([]byte("-- paused --"))
	}
	return c.Display()
}

func (a *App) BackPressed() kernel.BackResult { return kernel.BackUnhandled }

func (a *App) HomeButtonChanged(kernel.ButtonState) error { return nil }

func (a *App) TopButtonChanged(state kernel.ButtonState) error {
	if state != kernel.Pressed {
		return nil
	}
	a.paused = !a.paused
	a.sh.Invalidate()
	return nil
}

func (a *App) PeriodicTask() {
	if !a.paused && a.src.Seq() != a.shown {
		a.sh.Invalidate()
	}
}

// fixedCanvas keeps the terminal from hardware-scrolling; Draw never writes more rows than fit.
type fixedCanvas struct {
	hal.Canvas
}

func (fixedCanvas) SetScroll(int16) {}

// tail returns the newest lines that fit in rows once wrapped to cols.
func tail(lines []string, rows, cols int) []string {
	if rows <= 0 {
		return nil
	}
	if cols <= 0 {
		cols = 1
	}
	used := 0
	i := len(lines)
	for i > 0 {
		l := strings.TrimRight(lines[i-1], "\r\n")
		n := (len(l) + cols - 1) / cols
		if n == 0 {
			n = 1
		}
		if used+n > rows {
			break
		}
		used += n
		i--
	}
	return lines[i:]
}
