//go:build !tinygo

package hal

import (
	"context"
	"os"
	"sync"
	"time"
)

const (
	// Logical size of the emulated M5StickV panel in landscape.
	hostScreenWidth  = 240
	hostScreenHeight = 135

	defaultPeriodicEvery = 6
)

// HostOptions configures the desktop emulation of the device.
type HostOptions struct {
	Logger Logger
	// Pins overrides the keyboard-driven buttons, e.g. with real GPIO lines.
	Pins PinMux
	// PeriodicEvery is the number of host ticks between PMU periodic tasks.
	PeriodicEvery int
	// Reset replaces the default process re-exec.
	Reset func()
}

// Host is the desktop HAL. The window or headless runner drives it with Tick.
type Host struct {
	log  Logger
	fb   *hostFramebuffer
	disp *Surface
	pmu  *hostPMU
	pins PinMux
	sys  *hostSystem
	kbd  *hostKeyboard

	home, top buttonPin
	leds      map[string]*virtualPin
	startOnce sync.Once
}

// NewHost returns a host HAL implementation.
func NewHost(opts HostOptions) *Host {
	log := opts.Logger
	if log == nil {
		log = &stdoutLogger{}
	}
	every := opts.PeriodicEvery
	if every <= 0 {
		every = defaultPeriodicEvery
	}
	reset := opts.Reset
	if reset == nil {
		reset = func() { restartProcess(log) }
	}

	h := &Host{
		log:  log,
		fb:   newHostFramebuffer(hostScreenWidth, hostScreenHeight),
		pmu:  newHostPMU(log, every),
		sys:  &hostSystem{reset: reset},
		home: newButtonPin(PinButtonA),
		top:  newButtonPin(PinButtonB),
	}
	h.disp = NewSurface(h.fb, nil)
	h.leds = make(map[string]*virtualPin, len(StatusLEDs))
	h.pins = opts.Pins
	if h.pins == nil {
		board := boardPins{PinButtonA: h.home, PinButtonB: h.top}
		for _, name := range StatusLEDs {
			h.leds[name] = newVirtualPin(name, GPIOCapOutput)
			board[name] = h.leds[name]
		}
		h.pins = board
	}
	h.kbd = newHostKeyboard(h.home, h.top, h.pmu)
	return h
}

func (h *Host) Logger() Logger   { return h.log }
func (h *Host) Display() Display { return h.disp }
func (h *Host) PMU() PMU         { return h.pmu }
func (h *Host) Pins() PinMux     { return h.pins }
func (h *Host) System() System   { return h.sys }

// Start launches the PMU goroutine. It is safe to call more than once.
func (h *Host) Start(ctx context.Context) {
	h.startOnce.Do(func() { go h.pmu.run(ctx) })
}

// Tick advances the emulated PMU by one frame.
func (h *Host) Tick() {
	h.pmu.tick()
}

// PressHome and PressTop change the emulated button levels.
func (h *Host) PressHome(pressed bool) { h.home.set(pressed) }
func (h *Host) PressTop(pressed bool)  { h.top.set(pressed) }

// PressPower queues a power-button event for the PMU goroutine.
func (h *Host) PressPower(long bool) { h.pmu.press(long) }

// ledLit reports whether the emulated LED name is on. LEDs bound to real GPIO lines are never reported.
func (h *Host) ledLit(name string) bool {
	p, ok := h.leds[name]
	return ok && p.lit()
}

type hostSystem struct {
	reset func()
}

func (s *hostSystem) Reset()                { s.reset() }
func (s *hostSystem) Sleep(d time.Duration) { time.Sleep(d) }
func (s *hostSystem) Yield()                { time.Sleep(time.Millisecond) }

type stdoutLogger struct {
	mu sync.Mutex
}

func (l *stdoutLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	os.Stdout.WriteString(s + "\n")
}

func (l *stdoutLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	os.Stdout.Write(b)
	os.Stdout.Write([]byte{'\n'})
}
