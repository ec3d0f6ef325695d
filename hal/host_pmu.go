//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

type pmuEvent uint8

const (
	pmuShortPress pmuEvent = iota
	pmuLongPress
	pmuPeriodic
)

// hostPMU emulates the AXP192: the runner's ticks and the keyboard queue events,
// and one goroutine delivers them to the registered callbacks.
type hostPMU struct {
	log   Logger
	every int
	ticks int

	events chan pmuEvent

	mu       sync.Mutex
	onShort  func()
	onLong   func()
	periodic func()

	brightness atomic.Uint32
	sleeping   atomic.Bool
}

func newHostPMU(log Logger, every int) *hostPMU {
	return &hostPMU{log: log, every: every, events: make(chan pmuEvent, 16)}
}

func (p *hostPMU) SetScreenBrightness(level uint8) error {
	if level > MaxBrightness {
		return fmt.Errorf("pmu: brightness %d out of range 0..%d", level, MaxBrightness)
	}
	p.brightness.Store(uint32(level))
	return nil
}

// Brightness reports the current backlight level, 0 while asleep.
func (p *hostPMU) Brightness() uint8 {
	if p.sleeping.Load() {
		return 0
	}
	return uint8(p.brightness.Load())
}

func (p *hostPMU) SetOnShortPress(fn func()) {
	p.mu.Lock()
	p.onShort = fn
	p.mu.Unlock()
}

func (p *hostPMU) SetOnLongPress(fn func()) {
	p.mu.Lock()
	p.onLong = fn
	p.mu.Unlock()
}

func (p *hostPMU) SetPeriodicTask(fn func()) {
	p.mu.Lock()
	p.periodic = fn
	p.mu.Unlock()
}

func (p *hostPMU) EnterSleepMode() error {
	p.sleeping.Store(true)
	p.log.WriteLineString("pmu: entering sleep mode, press power to wake")
	return nil
}

func (p *hostPMU) BatteryMillivolts() (uint16, error) { return 4100, nil }
func (p *hostPMU) Charging() (bool, error)            { return true, nil }

func (p *hostPMU) press(long bool) {
	ev := pmuShortPress
	if long {
		ev = pmuLongPress
	}
	p.enqueue(ev)
}

func (p *hostPMU) tick() {
	p.ticks++
	if p.ticks >= p.every {
		p.ticks = 0
		p.enqueue(pmuPeriodic)
	}
}

func (p *hostPMU) enqueue(ev pmuEvent) {
	select {
	case p.events <- ev:
	default:
	}
}

func (p *hostPMU) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-p.events:
			p.deliver(ev)
		}
	}
}

func (p *hostPMU) deliver(ev pmuEvent) {
	p.mu.Lock()
	onShort, onLong, periodic := p.onShort, p.onLong, p.periodic
	p.mu.Unlock()

	switch ev {
	case pmuShortPress:
		if p.sleeping.CompareAndSwap(true, false) {
			p.log.WriteLineString("pmu: woke from sleep")
			return
		}
		if onShort != nil {
			onShort()
		}
	case pmuLongPress:
		if onLong != nil {
			onLong()
		}
	case pmuPeriodic:
		if p.sleeping.Load() {
			return
		}
		if periodic != nil {
			periodic()
		}
	}
}
