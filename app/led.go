package app

import (
	"errors"

	"stickv/hal"
)

// bindLEDs switches off every status LED the board provides. The red one is
// kept for the fault screen. Boards without LEDs simply skip them.
func (s *Shell) bindLEDs() {
	for _, name := range hal.StatusLEDs {
		pin, err := s.pins.Bind(name)
		if errors.Is(err, hal.ErrNoSuchPin) {
			continue
		}
		if err != nil {
			s.logf("bind %s: %v", name, err)
			continue
		}
		if pin.Caps()&hal.GPIOCapOutput == 0 {
			s.logf("%s cannot drive an LED, skipped", name)
			continue
		}
		if err := pin.Configure(hal.GPIOModeOutput, hal.GPIOPullNone); err != nil {
			s.logf("configure %s: %v", name, err)
			continue
		}
		s.setLED(pin, false)
		if name == hal.PinLEDRed {
			s.faultLED = pin
		}
	}
}

// setLED drives an active-low LED.
func (s *Shell) setLED(pin hal.GPIOPin, on bool) {
	if pin == nil {
		return
	}
	if err := pin.Write(!on); err != nil {
		s.logf("%s: %v", pin.Name(), err)
	}
}
