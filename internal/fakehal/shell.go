package fakehal

import (
	"stickv/hal"
	"stickv/stickos/kernel"
)

// Shell is a kernel.Shell that records navigation requests.
type Shell struct {
	*HAL

	Stack         []kernel.App
	Backs         int
	Invalidations int
}

func NewShell() *Shell { return &Shell{HAL: New()} }

func (s *Shell) Navigate(app kernel.App) {
	s.Stack = append(s.Stack, app)
	s.Invalidations++
}

func (s *Shell) NavigateBack() {
	s.Backs++
	if len(s.Stack) > 0 {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	s.Invalidations++
}

func (s *Shell) Invalidate() { s.Invalidations++ }

func (s *Shell) Display() hal.Display { return s.Disp }
func (s *Shell) PMU() hal.PMU         { return s.Power }
func (s *Shell) Logger() hal.Logger   { return s.Log }
