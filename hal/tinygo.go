//go:build tinygo && baremetal

package hal

import (
	"machine"
	"runtime"
	"runtime/volatile"
	"time"
	"unsafe"
)

// K210 SYSCTL soft reset register.
const sysctlSoftReset = 0x50440030

// M5StickV wiring.
const (
	pinButtonA = machine.Pin(36)
	pinButtonB = machine.Pin(37)

	pinLEDWhite = machine.Pin(7)
	pinLEDRed   = machine.Pin(6)
	pinLEDGreen = machine.Pin(9)
	pinLEDBlue  = machine.Pin(8)

	pinI2CSCL = machine.Pin(28)
	pinI2CSDA = machine.Pin(29)
)

type tinyGoHAL struct {
	logger *uartLogger
	disp   *Surface
	pmu    *axp192
	pins   boardPins
	sys    tinyGoSystem
}

// New returns the M5StickV (K210) HAL implementation.
//
// UART: UART0, 115200 8N1. PMU: AXP192 on I2C0.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})
	logger := &uartLogger{uart: uart}

	machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SCL:       pinI2CSCL,
		SDA:       pinI2CSDA,
	})
	pmu := newAXP192(machine.I2C0, logger)
	if err := pmu.configure(); err != nil {
		logger.WriteLineString("pmu: configure: " + err.Error())
	}
	pmu.start(DefaultPMUPeriod)

	return &tinyGoHAL{
		logger: logger,
		disp:   newM5StickVDisplay(),
		pmu:    pmu,
		pins: boardPins{
			PinButtonA:  &machinePin{name: PinButtonA, pin: pinButtonA},
			PinButtonB:  &machinePin{name: PinButtonB, pin: pinButtonB},
			PinLEDWhite: &machinePin{name: PinLEDWhite, pin: pinLEDWhite},
			PinLEDRed:   &machinePin{name: PinLEDRed, pin: pinLEDRed},
			PinLEDGreen: &machinePin{name: PinLEDGreen, pin: pinLEDGreen},
			PinLEDBlue:  &machinePin{name: PinLEDBlue, pin: pinLEDBlue},
		},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.disp }
func (h *tinyGoHAL) PMU() PMU         { return h.pmu }
func (h *tinyGoHAL) Pins() PinMux     { return h.pins }
func (h *tinyGoHAL) System() System   { return h.sys }

type tinyGoSystem struct{}

func (tinyGoSystem) Reset() {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(uintptr(sysctlSoftReset))), 1)
	for {
	}
}

func (tinyGoSystem) Sleep(d time.Duration) { time.Sleep(d) }
func (tinyGoSystem) Yield()                { runtime.Gosched() }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// machinePin is a GPIOHS pin read directly through the machine package.
type machinePin struct {
	name string
	pin  machine.Pin
	mode GPIOMode
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	cfg := machine.PinConfig{Mode: machine.PinInput}
	switch {
	case mode == GPIOModeOutput:
		cfg.Mode = machine.PinOutput
	case pull == GPIOPullUp:
		cfg.Mode = machine.PinInputPullup
	case pull == GPIOPullDown:
		cfg.Mode = machine.PinInputPulldown
	}
	p.pin.Configure(cfg)
	p.mode = mode
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p *machinePin) Write(level bool) error {
	if p.mode != GPIOModeOutput {
		return ErrNotImplemented
	}
	p.pin.Set(level)
	return nil
}
