package app

import "context"

// loop alternates between rendering and waiting for input until ctx is done or
// an application fails.
func (s *Shell) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.faulted.Load() {
			return s.awaitFault()
		}
		if err := s.step(ctx); err != nil {
			return err
		}
	}
}

// step runs one cycle: a render pass when dirty, otherwise one poll and dispatch.
func (s *Shell) step(ctx context.Context) error {
	if s.dirty.CompareAndSwap(true, false) {
		return s.render()
	}

	ev := s.PollForEvent(ctx)
	if ev.Kind != ButtonEvent {
		return nil
	}
	s.logf("%s button %s", ev.Button, ev.State)
	return s.dispatch(func() error {
		app := s.CurrentApp()
		if app == nil {
			s.logf("no foreground app, dropping %s button", ev.Button)
			return nil
		}
		if ev.Button == HomeButton {
			return app.HomeButtonChanged(ev.State)
		}
		return app.TopButtonChanged(ev.State)
	})
}

func (s *Shell) render() error {
	drawn := false
	err := s.dispatch(func() error {
		app := s.CurrentApp()
		if app == nil {
			s.logf("drawing is dirty, but there is no foreground app")
			return nil
		}
		drawn = true
		return app.Draw()
	})
	if err != nil {
		return err
	}
	if drawn {
		s.restoreBrightness()
	}
	return nil
}
