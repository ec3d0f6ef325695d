package app

import (
	"context"

	"stickv/hal"
	"stickv/stickos/kernel"
)

// Button identifies a front button.
type Button uint8

const (
	HomeButton Button = iota
	TopButton
)

func (b Button) String() string {
	if b == TopButton {
		return "top"
	}
	return "home"
}

// EventKind classifies what PollForEvent observed.
type EventKind uint8

const (
	// NoEvent means nothing actionable; the caller polls again.
	NoEvent EventKind = iota
	DirtyEvent
	ButtonEvent
)

// Event is the result of one PollForEvent call.
type Event struct {
	Kind   EventKind
	Button Button
	State  kernel.ButtonState
}

// PollForEvent busy-waits for the next input or redraw request.
//
// It first waits for both buttons to be released, so a held button yields a
// single event, then waits until the display is invalidated or a button goes
// down. Polling yields to the scheduler on every pass so the PMU goroutine keeps
// running. A pin that fails to read counts as released.
func (s *Shell) PollForEvent(ctx context.Context) Event {
	var readFailed bool
	pressed := func(pin hal.GPIOPin) bool { return s.pressed(pin, &readFailed) }

	for pressed(s.home) || pressed(s.top) {
		if s.halted(ctx) {
			return Event{}
		}
		s.sys.Yield()
	}

	for !s.dirty.Load() && !pressed(s.home) && !pressed(s.top) {
		if s.halted(ctx) {
			return Event{}
		}
		s.sys.Yield()
	}

	home, top := pressed(s.home), pressed(s.top)
	switch {
	case s.dirty.Load():
		return Event{Kind: DirtyEvent}
	case home && !top:
		return Event{Kind: ButtonEvent, Button: HomeButton, State: kernel.Pressed}
	case top && !home:
		return Event{Kind: ButtonEvent, Button: TopButton, State: kernel.Pressed}
	}
	return Event{}
}

// pressed reads an active-low button. Read errors are logged once per poll via failed.
func (s *Shell) pressed(pin hal.GPIOPin, failed *bool) bool {
	if pin == nil {
		return false
	}
	level, err := pin.Read()
	if err != nil {
		if failed == nil || !*failed {
			s.logf("read %s: %v", pin.Name(), err)
			if failed != nil {
				*failed = true
			}
		}
		return false
	}
	return !level
}

// halted reports whether polling should give up: ctx is done or the shell has faulted.
func (s *Shell) halted(ctx context.Context) bool {
	return ctx.Err() != nil || s.faulted.Load()
}
