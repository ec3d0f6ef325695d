// Package app is the application shell: it owns the foreground app stack and
// runs the render/input loop on top of the HAL.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"stickv/hal"
	"stickv/stickos/apps/launcher"
	"stickv/stickos/config"
	"stickv/stickos/kernel"
)

var (
	// ErrBootBypassed is returned by Start when Home is held at power-on.
	ErrBootBypassed = errors.New("app: home button held at boot, shell not started")
	// ErrFault wraps every failure that ended on the fault screen.
	ErrFault = errors.New("app: fault")
)

// Options configures a Shell. The zero value is usable.
type Options struct {
	// Config supplies the backlight level applied after the first frame.
	Config kernel.ConfigProvider
	// Launcher builds the root application. Defaults to an empty launcher.
	Launcher func(sh kernel.Shell) kernel.App
	// Report receives fault details before the reboot countdown.
	Report func(kernel.FaultInfo)
	// Splash is shown by the provisioning screen. Defaults to a generated image.
	Splash image.Image
}

// Shell is the single context object shared by the loop and the PMU callbacks.
type Shell struct {
	log  hal.Logger
	disp hal.Display
	pmu  hal.PMU
	pins hal.PinMux
	sys  hal.System
	opts Options

	home, top hal.GPIOPin
	faultLED  hal.GPIOPin

	stackMu sync.Mutex
	stack   []kernel.App

	// dispatchMu serializes every call into an app.
	dispatchMu sync.Mutex

	dirty       atomic.Bool
	bootPending atomic.Bool
	inCallback  atomic.Bool

	faulted   atomic.Bool
	faultOnce sync.Once
	faultErr  error
}

func New(h hal.HAL, opts Options) *Shell {
	s := &Shell{
		log:  h.Logger(),
		disp: h.Display(),
		pmu:  h.PMU(),
		pins: h.Pins(),
		sys:  h.System(),
		opts: opts,
	}
	s.bootPending.Store(true)
	return s
}

func (s *Shell) Display() hal.Display { return s.disp }
func (s *Shell) PMU() hal.PMU         { return s.pmu }
func (s *Shell) Logger() hal.Logger   { return s.log }

// Run brings the hardware up, shows the provisioning screen, pushes the
// launcher and runs the event loop. Failures inside the loop end on the fault
// screen followed by a device reset; Run then returns an error wrapping ErrFault.
// On the host, cancelling ctx stops the loop.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}
	return s.guard(ctx, func() error {
		s.provision(ctx)
		s.Navigate(s.newLauncher())
		return s.loop(ctx)
	})
}

// Start performs the power-on sequence. The backlight stays off until the
// first frame is drawn.
func (s *Shell) Start() error {
	s.setBrightness(0)
	if err := s.disp.Init(); err != nil {
		return fmt.Errorf("app: display init: %w", err)
	}
	s.setBrightness(0)
	if err := s.disp.SetRotation(hal.Rotation180); err != nil {
		return fmt.Errorf("app: display rotation: %w", err)
	}
	s.setBrightness(0)

	var err error
	if s.home, err = s.bindButton(hal.PinButtonA); err != nil {
		return err
	}
	if s.pressed(s.home, nil) {
		s.logf("home button held at boot, not starting")
		return ErrBootBypassed
	}
	if s.top, err = s.bindButton(hal.PinButtonB); err != nil {
		return err
	}
	s.bindLEDs()

	s.pmu.SetOnShortPress(s.onShortPress)
	s.pmu.SetOnLongPress(s.onLongPress)
	s.pmu.SetPeriodicTask(s.periodicTask)
	return nil
}

func (s *Shell) bindButton(name string) (hal.GPIOPin, error) {
	pin, err := s.pins.Bind(name)
	if err != nil {
		return nil, fmt.Errorf("app: bind %s: %w", name, err)
	}
	// Buttons short to ground; the pull-up is required.
	if err := pin.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
		return nil, fmt.Errorf("app: configure %s: %w", name, err)
	}
	return pin, nil
}

func (s *Shell) newLauncher() kernel.App {
	if s.opts.Launcher != nil {
		return s.opts.Launcher(s)
	}
	return launcher.New(s)
}

func (s *Shell) setBrightness(level int) {
	if err := s.pmu.SetScreenBrightness(uint8(level)); err != nil {
		s.logf("set brightness %d: %v", level, err)
	}
}

// restoreBrightness applies the configured level once, after the first frame after boot.
func (s *Shell) restoreBrightness() {
	if !s.bootPending.CompareAndSwap(true, false) {
		return
	}
	level := config.DefaultBrightness
	if s.opts.Config != nil {
		level = config.ClampBrightness(s.opts.Config.Brightness())
	}
	s.logf("boot complete, brightness %d", level)
	s.setBrightness(level)
}

// dispatch runs fn under the dispatch lock unless the shell has faulted.
func (s *Shell) dispatch(fn func() error) error {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	if s.faulted.Load() {
		return s.faultErr
	}
	return fn()
}

func (s *Shell) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
