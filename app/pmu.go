package app

import (
	"errors"

	"stickv/stickos/kernel"
)

// guarded runs a PMU callback. Callbacks never overlap: one that arrives while
// another is still running is dropped. Failures go to the fault screen.
func (s *Shell) guarded(name string, fn func() error) {
	if !s.inCallback.CompareAndSwap(false, true) {
		s.logf("%s: busy handling another PMU callback, ignored", name)
		return
	}
	defer s.inCallback.Store(false)
	defer func() {
		if r := recover(); r != nil {
			s.fault(kernel.CaptureFault(r))
		}
	}()
	if err := fn(); err != nil && !errors.Is(err, ErrFault) {
		s.fault(kernel.CaptureFault(err))
	}
}

// onShortPress treats the power button as "back".
func (s *Shell) onShortPress() {
	s.guarded("short press", func() error {
		s.logf("power button pressed")
		res := kernel.BackUnhandled
		err := s.dispatch(func() error {
			if app := s.CurrentApp(); app != nil {
				res = app.BackPressed()
			}
			return nil
		})
		if err != nil {
			return err
		}

		switch res {
		case kernel.BackHandled:
		case kernel.BackReboot:
			s.logf("reboot requested by app")
			s.sys.Reset()
		default:
			s.logf("back press not handled, leaving current app")
			s.NavigateBack()
		}
		return nil
	})
}

// onLongPress puts the device to sleep; shell state is untouched.
func (s *Shell) onLongPress() {
	s.guarded("long press", func() error {
		s.logf("power button long pressed, sleeping")
		if err := s.pmu.EnterSleepMode(); err != nil {
			s.logf("enter sleep mode: %v", err)
		}
		return nil
	})
}

// periodicTask forwards the PMU tick to the foreground app.
func (s *Shell) periodicTask() {
	s.guarded("periodic task", func() error {
		return s.dispatch(func() error {
			if app := s.CurrentApp(); app != nil {
				app.PeriodicTask()
			}
			return nil
		})
	})
}
