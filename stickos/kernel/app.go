// Package kernel holds the contracts shared between the shell and its applications.
package kernel

import "stickv/hal"

// ButtonState is the debounced level of a front button.
type ButtonState uint8

const (
	Released ButtonState = iota
	Pressed
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// BackResult is an application's answer to a power-button short press.
type BackResult uint8

const (
	// BackUnhandled asks the shell to pop the application.
	BackUnhandled BackResult = iota
	// BackHandled means the application consumed the press.
	BackHandled
	// BackReboot asks the shell to restart the device right away.
	BackReboot
)

func (r BackResult) String() string {
	switch r {
	case BackHandled:
		return "handled"
	case BackReboot:
		return "reboot"
	default:
		return "unhandled"
	}
}

// App is a foreground application.
//
// The shell never calls an App concurrently with itself. Errors returned from
// Draw or the button handlers are fatal and end in the fault screen.
type App interface {
	Draw() error
	BackPressed() BackResult
	HomeButtonChanged(state ButtonState) error
	TopButtonChanged(state ButtonState) error
	PeriodicTask()
}

// Shell is what an application may ask of the shell that runs it.
type Shell interface {
	Navigate(app App)
	NavigateBack()
	// Invalidate schedules a redraw of the current application.
	Invalidate()
	Display() hal.Display
	PMU() hal.PMU
	Logger() hal.Logger
}

// ConfigProvider supplies the persisted backlight level.
type ConfigProvider interface {
	Brightness() int
}
