//go:build !tinygo

package hal

import "testing"

type discardLogger struct{}

func (discardLogger) WriteLineString(string) {}
func (discardLogger) WriteLineBytes([]byte)  {}

func TestHostPMUPeriodicEveryN(t *testing.T) {
	p := newHostPMU(discardLogger{}, 3)
	runs := 0
	p.SetPeriodicTask(func() { runs++ })

	for i := 0; i < 9; i++ {
		p.tick()
	}
	for len(p.events) > 0 {
		p.deliver(<-p.events)
	}
	if runs != 3 {
		t.Fatalf("expected 3 periodic runs, got %d", runs)
	}
}

func TestHostPMUSleepAndWake(t *testing.T) {
	p := newHostPMU(discardLogger{}, 1)
	shorts := 0
	p.SetOnShortPress(func() { shorts++ })
	if err := p.SetScreenBrightness(9); err != nil {
		t.Fatalf("SetScreenBrightness: %v", err)
	}

	if err := p.EnterSleepMode(); err != nil {
		t.Fatalf("EnterSleepMode: %v", err)
	}
	if p.Brightness() != 0 {
		t.Fatal("expected dark screen while asleep")
	}

	p.deliver(pmuShortPress)
	if shorts != 0 {
		t.Fatal("expected the waking press to be consumed")
	}
	if p.Brightness() != 9 {
		t.Fatalf("expected brightness restored, got %d", p.Brightness())
	}

	p.deliver(pmuShortPress)
	if shorts != 1 {
		t.Fatalf("expected one short press, got %d", shorts)
	}
}

func TestHostPMURejectsBrightnessOutOfRange(t *testing.T) {
	p := newHostPMU(discardLogger{}, 1)
	if err := p.SetScreenBrightness(MaxBrightness + 1); err == nil {
		t.Fatal("expected error")
	}
}
