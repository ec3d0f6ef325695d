package hal

import (
	"errors"
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// Logical pin names bound by the board description.
const (
	PinButtonA = "BUTTON_A"
	PinButtonB = "BUTTON_B"

	// The RGBW status LEDs are active-low: writing false lights them.
	PinLEDWhite = "LED_W"
	PinLEDRed   = "LED_R"
	PinLEDGreen = "LED_G"
	PinLEDBlue  = "LED_B"
)

// StatusLEDs lists the LED pins in board order.
var StatusLEDs = []string{PinLEDWhite, PinLEDRed, PinLEDGreen, PinLEDBlue}

var ErrNoSuchPin = errors.New("no such pin")

// PinMux binds logical board names to physical pins.
type PinMux interface {
	Bind(name string) (GPIOPin, error)
}

type boardPins map[string]GPIOPin

func (b boardPins) Bind(name string) (GPIOPin, error) {
	p, ok := b[name]
	if !ok || p == nil {
		return nil, fmt.Errorf("pinmux: %s: %w", name, ErrNoSuchPin)
	}
	return p, nil
}

type virtualPin struct {
	mu     sync.Mutex
	name   string
	caps   GPIOCaps
	mode   GPIOMode
	pull   GPIOPull
	level  bool
	driven bool
}

func newVirtualPin(name string, caps GPIOCaps) *virtualPin {
	return &virtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *virtualPin) Name() string   { return p.name }
func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		if p.caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
		}
	case GPIOModeOutput:
		if p.caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
	case GPIOPullDown:
		if p.caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}

	p.mode = mode
	p.pull = pull
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode == GPIOModeInput && !p.driven {
		return p.pull == GPIOPullUp, nil
	}
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	p.driven = true
	return nil
}

// drive forces the electrical level seen by an input, as an external switch would.
func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	p.level = level
	p.driven = true
	p.mu.Unlock()
}

// float releases the line back to its pull resistor.
func (p *virtualPin) float() {
	p.mu.Lock()
	p.driven = false
	p.mu.Unlock()
}

// lit reports whether an active-low output is driving its LED.
func (p *virtualPin) lit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode == GPIOModeOutput && p.driven && !p.level
}

// buttonPin is an active-low push button on a pull-up input: pressing it shorts the line to ground.
type buttonPin struct {
	*virtualPin
}

func newButtonPin(name string) buttonPin {
	return buttonPin{virtualPin: newVirtualPin(name, GPIOCapInput|GPIOCapPullUp)}
}

func (b buttonPin) set(pressed bool) {
	if pressed {
		b.drive(false)
		return
	}
	b.float()
}
