package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"
	"unicode/utf8"

	"stickv/stickos/kernel"
)

const (
	faultLineChars   = 29
	faultLineHeight  = 16
	faultRebootAfter = 10
)

var (
	faultBG = color.RGBA{B: 0xAA, A: 0xFF}
	faultFG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// guard runs fn and sends anything that escapes it, error or panic, to the fault screen.
func (s *Shell) guard(ctx context.Context, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = s.fault(kernel.CaptureFault(r))
		}
	}()
	err = fn()
	switch {
	case err == nil, errors.Is(err, ErrFault):
		return err
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return err
	}
	return s.fault(kernel.CaptureFault(err))
}

// fault shows the diagnostic screen, counts down and resets the device. Only the
// first fault is shown; later ones return the same error. On hardware Reset does
// not return.
func (s *Shell) fault(info kernel.FaultInfo) error {
	s.faultOnce.Do(func() {
		s.faultErr = fmt.Errorf("%w: %s", ErrFault, info)
		s.faulted.Store(true)

		// Keeps apps off the screen while the countdown runs.
		s.dispatchMu.Lock()
		defer s.dispatchMu.Unlock()

		s.logFault(info)
		if s.opts.Report != nil {
			s.opts.Report(info)
		}
		s.showFaultScreen(info)
		s.setLED(s.faultLED, true)
		s.restoreBrightness()
		for remaining := faultRebootAfter; remaining > 0; remaining-- {
			s.drawCountdown(remaining)
			s.sys.Sleep(time.Second)
		}
		s.sys.Reset()
	})
	return s.faultErr
}

// awaitFault blocks until a fault raised elsewhere has finished its countdown.
func (s *Shell) awaitFault() error {
	s.faultOnce.Do(func() {})
	return s.faultErr
}

func (s *Shell) logFault(info kernel.FaultInfo) {
	s.logf("showing blue screen: %s", info)
	for _, line := range stackLines(info.Stack) {
		s.logf("%s", line)
	}
}

func (s *Shell) showFaultScreen(info kernel.FaultInfo) {
	d := s.disp
	h := d.Height()
	d.Clear(faultBG)
	d.DrawString(1, 1, "A problem has been detected and", faultFG, faultBG)
	d.DrawString(1, 1+5+faultLineHeight, "Technical information:", faultFG, faultBG)

	y := int16(1 + 5 + faultLineHeight*2)
	for _, line := range wrapRunes("** "+info.Message, faultLineChars) {
		d.DrawString(1, y, line, faultFG, faultBG)
		y += faultLineHeight
		if y >= h {
			return
		}
	}

	trace := append([]string{info.Kind}, stackLines(info.Stack)...)
	limit := h - 17
	for _, raw := range trace {
		for _, line := range wrapRunes(raw, faultLineChars) {
			if y+faultLineHeight > limit {
				return
			}
			d.DrawString(1, y, line, faultFG, faultBG)
			y += faultLineHeight
		}
	}
}

func (s *Shell) drawCountdown(remaining int) {
	msg := fmt.Sprintf("Will reboot after %2d seconds..", remaining)
	s.disp.DrawString(1, s.disp.Height()-17, msg, faultFG, faultBG)
}

func stackLines(stack []byte) []string {
	if len(stack) == 0 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// wrapRunes splits s into chunks of at most n runes.
func wrapRunes(s string, n int) []string {
	if n <= 0 {
		return []string{s}
	}
	var out []string
	for s != "" {
		chunk, rest := takeRunes(s, n)
		out = append(out, chunk)
		s = rest
	}
	return out
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
