package app

import "stickv/stickos/kernel"

// Navigate pushes app and makes it the foreground application.
func (s *Shell) Navigate(app kernel.App) {
	s.stackMu.Lock()
	s.stack = append(s.stack, app)
	s.stackMu.Unlock()
	s.Invalidate()
}

// NavigateBack pops the foreground application. Popping an empty stack is a no-op;
// a redraw is scheduled either way.
func (s *Shell) NavigateBack() {
	s.stackMu.Lock()
	if n := len(s.stack); n > 0 {
		s.stack[n-1] = nil
		s.stack = s.stack[:n-1]
	}
	s.stackMu.Unlock()
	s.Invalidate()
}

// CurrentApp returns the foreground application, or nil.
func (s *Shell) CurrentApp() kernel.App {
	s.stackMu.Lock()
	defer s.stackMu.Unlock()
	if n := len(s.stack); n > 0 {
		return s.stack[n-1]
	}
	return nil
}

// Depth is the number of applications on the stack.
func (s *Shell) Depth() int {
	s.stackMu.Lock()
	defer s.stackMu.Unlock()
	return len(s.stack)
}

// Invalidate marks the display dirty; the loop redraws before handling more input.
func (s *Shell) Invalidate() {
	s.dirty.Store(true)
}
