// Package sysinfo shows build, battery and uptime details.
package sysinfo

import (
	"fmt"
	"image/color"
	"time"

	"stickv/hal"
	"stickv/internal/buildinfo"
	"stickv/stickos/kernel"
)

var (
	colorBG  = color.RGBA{A: 0xff}
	colorFG  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorKey = color.RGBA{R: 0x60, G: 0xc0, B: 0xff, A: 0xff}
)

const refreshInterval = time.Second

// App refreshes its readings from the PMU periodic task.
type App struct {
	sh      kernel.Shell
	started time.Time
	now     func() time.Time

	lastRefresh time.Time
	millivolts  uint16
	charging    bool
	readErr     error
}

// New measures uptime from started, normally the shell's boot time.
func New(sh kernel.Shell, started time.Time) *App {
	a := &App{sh: sh, started: started, now: time.Now}
	a.refresh()
	return a
}

func (a *App) Draw() error {
	d := a.sh.Display()
	d.Clear(colorBG)

	rows := [][2]string{
		{"version", buildinfo.Short()},
		{"uptime", a.now().Sub(a.started).Truncate(time.Second).String()},
	}
	if a.readErr != nil {
		rows = append(rows, [2]string{"battery", "unavailable"})
	} else {
		rows = append(rows,
			[2]string{"battery", fmt.Sprintf("%d.%03dV", a.millivolts/1000, a.millivolts%1000)},
			[2]string{"charging", fmt.Sprintf("%t", a.charging)},
		)
	}

	y := int16(2)
	for _, r := range rows {
		d.DrawString(4, y, r[0], colorKey, colorBG)
		d.DrawString(80, y, r[1], colorFG, colorBG)
		y += hal.FontLineHeight
	}
	return nil
}

func (a *App) BackPressed() kernel.BackResult { return kernel.BackUnhandled }

// HomeButtonChanged forces an immediate refresh.
func (a *App) HomeButtonChanged(state kernel.ButtonState) error {
	if state == kernel.Pressed {
		a.refresh()
		a.sh.Invalidate()
	}
	return nil
}

func (a *App) TopButtonChanged(kernel.ButtonState) error { return nil }

func (a *App) PeriodicTask() {
	if a.now().Sub(a.lastRefresh) < refreshInterval {
		return
	}
	a.refresh()
	a.sh.Invalidate()
}

func (a *App) refresh() {
	a.lastRefresh = a.now()
	pmu := a.sh.PMU()
	mv, err := pmu.BatteryMillivolts()
	if err != nil {
		a.readErr = err
		return
	}
	charging, err := pmu.Charging()
	if err != nil {
		a.readErr = err
		return
	}
	a.millivolts, a.charging, a.readErr = mv, charging, nil
}
