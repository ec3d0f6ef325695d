package hal

import (
	"fmt"
	"sync"
	"time"

	"tinygo.org/x/drivers"
)

const axp192Address = 0x34

// AXP192 registers used by the shell.
const (
	axpRegChargeStatus = 0x01
	axpRegOutputCtl    = 0x12
	axpRegSleepCtl     = 0x31
	axpRegPEKParams    = 0x36
	axpRegIRQEnable3   = 0x42
	axpRegIRQStatus3   = 0x46
	axpRegBatVoltageH  = 0x78
	axpRegBatVoltageL  = 0x79
	axpRegGPIO0LDO     = 0x91
)

const (
	axpIRQPEKLong  = 1 << 0
	axpIRQPEKShort = 1 << 1

	axpChargeIndication = 1 << 6
	axpSleepEnable      = 1 << 3
	// DC-DC1 (MCU core) stays on in sleep; LDO2/LDO3 (LCD logic, sensor) are cut.
	axpOutputsInSleep = 0x01
)

// DefaultPMUPeriod is how often the AXP192 goroutine polls for button IRQs and runs the periodic task.
const DefaultPMUPeriod = 100 * time.Millisecond

// axp192 drives the X-Powers AXP192 over I2C.
//
// One goroutine polls the PEK interrupt status and then runs the periodic task,
// mirroring the timer-driven callbacks of the vendor firmware.
type axp192 struct {
	bus drivers.I2C
	log Logger

	mu       sync.Mutex
	onShort  func()
	onLong   func()
	periodic func()

	busMu sync.Mutex
}

func newAXP192(bus drivers.I2C, log Logger) *axp192 {
	return &axp192{bus: bus, log: log}
}

// configure enables the PEK short/long interrupts and clears any that are latched.
func (p *axp192) configure() error {
	// Long press 1.5s, power-off after 6s, short press 128ms.
	if err := p.write(axpRegPEKParams, 0x4C); err != nil {
		return err
	}
	if err := p.write(axpRegIRQEnable3, axpIRQPEKShort|axpIRQPEKLong); err != nil {
		return err
	}
	return p.write(axpRegIRQStatus3, 0xFF)
}

// start runs the poll loop until the device resets.
func (p *axp192) start(period time.Duration) {
	if period <= 0 {
		period = DefaultPMUPeriod
	}
	go func() {
		for {
			time.Sleep(period)
			p.poll()
		}
	}()
}

func (p *axp192) poll() {
	status, err := p.read(axpRegIRQStatus3)
	if err != nil {
		p.logf("pmu: read irq status: %v", err)
	} else if pending := status & (axpIRQPEKShort | axpIRQPEKLong); pending != 0 {
		// Status bits are write-one-to-clear.
		if err := p.write(axpRegIRQStatus3, pending); err != nil {
			p.logf("pmu: clear irq status: %v", err)
		}
		p.mu.Lock()
		onShort, onLong := p.onShort, p.onLong
		p.mu.Unlock()
		if pending&axpIRQPEKShort != 0 && onShort != nil {
			onShort()
		}
		if pending&axpIRQPEKLong != 0 && onLong != nil {
			onLong()
		}
	}

	p.mu.Lock()
	periodic := p.periodic
	p.mu.Unlock()
	if periodic != nil {
		periodic()
	}
}

func (p *axp192) SetScreenBrightness(level uint8) error {
	if level > MaxBrightness {
		return fmt.Errorf("pmu: brightness %d out of range 0..%d", level, MaxBrightness)
	}
	return p.write(axpRegGPIO0LDO, level<<4)
}

func (p *axp192) SetOnShortPress(fn func()) {
	p.mu.Lock()
	p.onShort = fn
	p.mu.Unlock()
}

func (p *axp192) SetOnLongPress(fn func()) {
	p.mu.Lock()
	p.onLong = fn
	p.mu.Unlock()
}

func (p *axp192) SetPeriodicTask(fn func()) {
	p.mu.Lock()
	p.periodic = fn
	p.mu.Unlock()
}

func (p *axp192) EnterSleepMode() error {
	ctl, err := p.read(axpRegSleepCtl)
	if err != nil {
		return err
	}
	if err := p.write(axpRegSleepCtl, ctl|axpSleepEnable); err != nil {
		return err
	}
	if err := p.write(axpRegGPIO0LDO, 0); err != nil {
		return err
	}
	return p.write(axpRegOutputCtl, axpOutputsInSleep)
}

func (p *axp192) BatteryMillivolts() (uint16, error) {
	hi, err := p.read(axpRegBatVoltageH)
	if err != nil {
		return 0, err
	}
	lo, err := p.read(axpRegBatVoltageL)
	if err != nil {
		return 0, err
	}
	raw := uint32(hi)<<4 | uint32(lo&0x0F)
	// 1.1mV per LSB.
	return uint16(raw * 11 / 10), nil
}

func (p *axp192) Charging() (bool, error) {
	st, err := p.read(axpRegChargeStatus)
	if err != nil {
		return false, err
	}
	return st&axpChargeIndication != 0, nil
}

func (p *axp192) read(reg uint8) (uint8, error) {
	var w, r [1]byte
	w[0] = reg
	p.busMu.Lock()
	err := p.bus.Tx(axp192Address, w[:], r[:])
	p.busMu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("pmu: read 0x%02x: %w", reg, err)
	}
	return r[0], nil
}

func (p *axp192) write(reg, value uint8) error {
	w := [2]byte{reg, value}
	p.busMu.Lock()
	err := p.bus.Tx(axp192Address, w[:], nil)
	p.busMu.Unlock()
	if err != nil {
		return fmt.Errorf("pmu: write 0x%02x: %w", reg, err)
	}
	return nil
}

func (p *axp192) logf(format string, args ...any) {
	if p.log == nil {
		return
	}
	p.log.WriteLineString(fmt.Sprintf(format, args...))
}
