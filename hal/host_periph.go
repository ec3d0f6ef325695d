//go:build !tinygo && linux

package hal

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var periphInit struct {
	once sync.Once
	err  error
}

// NewPeriphPins binds logical pin names to Linux GPIO lines by their periph name, e.g. "GPIO17".
func NewPeriphPins(lines map[string]string) (PinMux, error) {
	periphInit.once.Do(func() {
		_, periphInit.err = host.Init()
	})
	if periphInit.err != nil {
		return nil, fmt.Errorf("pinmux: periph init: %w", periphInit.err)
	}

	pins := boardPins{}
	for name, line := range lines {
		p := gpioreg.ByName(line)
		if p == nil {
			return nil, fmt.Errorf("pinmux: %s -> %s: %w", name, line, ErrNoSuchPin)
		}
		pins[name] = &periphPin{name: name, pin: p}
	}
	return pins, nil
}

type periphPin struct {
	name string
	pin  gpio.PinIO
}

func (p *periphPin) Name() string { return p.name }

func (p *periphPin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *periphPin) Configure(mode GPIOMode, pull GPIOPull) error {
	var err error
	switch mode {
	case GPIOModeInput:
		err = p.pin.In(periphPull(pull), gpio.NoEdge)
	case GPIOModeOutput:
		err = p.pin.Out(gpio.Low)
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}
	if err != nil {
		return fmt.Errorf("gpio: pin %s (%s): %w", p.name, p.pin.Name(), err)
	}
	return nil
}

func (p *periphPin) Read() (bool, error) {
	return p.pin.Read() == gpio.High, nil
}

func (p *periphPin) Write(level bool) error {
	l := gpio.Low
	if level {
		l = gpio.High
	}
	if err := p.pin.Out(l); err != nil {
		return fmt.Errorf("gpio: pin %s: %w", p.name, err)
	}
	return nil
}

func periphPull(pull GPIOPull) gpio.Pull {
	switch pull {
	case GPIOPullUp:
		return gpio.PullUp
	case GPIOPullDown:
		return gpio.PullDown
	default:
		return gpio.Float
	}
}
