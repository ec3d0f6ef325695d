//go:build !tinygo

package hal

import "testing"

func TestHostStatusLEDsAreActiveLow(t *testing.T) {
	h := NewHost(HostOptions{Logger: discardLogger{}, Reset: func() {}})

	led, err := h.Pins().Bind(PinLEDRed)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if led.Caps()&GPIOCapOutput == 0 {
		t.Fatal("expected an output-capable LED pin")
	}
	if h.ledLit(PinLEDRed) {
		t.Fatal("expected LED off before it is configured")
	}
	if err := led.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	if err := led.Write(false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !h.ledLit(PinLEDRed) {
		t.Fatal("expected a low level to light the LED")
	}
	if h.ledLit(PinLEDGreen) {
		t.Fatal("expected other LEDs to stay off")
	}

	_ = led.Write(true)
	if h.ledLit(PinLEDRed) {
		t.Fatal("expected a high level to switch the LED off")
	}
}

func TestHostExternalPinsHaveNoEmulatedLEDs(t *testing.T) {
	h := NewHost(HostOptions{Logger: discardLogger{}, Pins: boardPins{}, Reset: func() {}})
	if _, err := h.Pins().Bind(PinLEDRed); err == nil {
		t.Fatal("expected external pin mux to be used as given")
	}
	if h.ledLit(PinLEDRed) {
		t.Fatal("expected no emulated LED")
	}
}
