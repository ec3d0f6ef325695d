package hal

import (
	"errors"
	"image"
	"image/color"
	"time"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Rotation is the display orientation in clockwise quarter turns.
type Rotation = drivers.Rotation

const (
	Rotation0   = drivers.Rotation0
	Rotation90  = drivers.Rotation90
	Rotation180 = drivers.Rotation180
	Rotation270 = drivers.Rotation270
)

// Canvas is a pixel target that text terminals and the surface renderer draw into.
//
// The scroll methods exist for terminal renderers; targets without hardware
// scrolling implement them as no-ops.
type Canvas interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetRotation(rotation Rotation) error
	SetScrollArea(topFixedArea, bottomFixedArea int16)
	SetScroll(line int16)
	StopScroll()
}

// Display is the immediate-mode drawing surface used by the shell and its apps.
//
// Every call takes effect before it returns.
type Display interface {
	Init() error
	SetRotation(rotation Rotation) error
	Clear(c color.RGBA)
	DrawImage(img image.Image)
	DrawString(x, y int16, s string, fg, bg color.RGBA)
	Width() int16
	Height() int16
	Canvas() Canvas
}

// MaxBrightness is the highest backlight level accepted by PMU.SetScreenBrightness.
const MaxBrightness = 15

// PMU is the power-management unit: backlight, power button and the periodic tick.
//
// The press callbacks and the periodic task run on the PMU driver's own goroutine.
type PMU interface {
	SetScreenBrightness(level uint8) error
	SetOnShortPress(fn func())
	SetOnLongPress(fn func())
	SetPeriodicTask(fn func())
	EnterSleepMode() error
	BatteryMillivolts() (uint16, error)
	Charging() (bool, error)
}

// System provides device-wide control.
type System interface {
	// Reset restarts the device. On hardware it does not return.
	Reset()
	Sleep(d time.Duration)
	// Yield gives other goroutines a chance to run from inside a polling loop.
	Yield()
}

// HAL provides the only contact point between the shell and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	PMU() PMU
	Pins() PinMux
	System() System
}
