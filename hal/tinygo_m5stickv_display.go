//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/st7789"
)

// The ST7789 is mounted in portrait; the shell draws in landscape.
const m5stickvPanelBase = Rotation90

const (
	pinLCDMOSI = machine.Pin(18)
	pinLCDSCK  = machine.Pin(19)
	pinLCDDC   = machine.Pin(20)
	pinLCDRST  = machine.Pin(21)
	pinLCDCS   = machine.Pin(22)
)

// m5stickvCanvas offsets rotations by the panel mount so Rotation0 is landscape.
type m5stickvCanvas struct {
	*st7789.Device
}

func (c m5stickvCanvas) SetRotation(r Rotation) error {
	return c.Device.SetRotation((r + m5stickvPanelBase) % 4)
}

func newM5StickVDisplay() *Surface {
	lcd := st7789.New(machine.SPI0, pinLCDRST, pinLCDDC, pinLCDCS, machine.NoPin)
	canvas := m5stickvCanvas{Device: &lcd}
	return NewSurface(canvas, func() error {
		if err := machine.SPI0.Configure(machine.SPIConfig{
			Frequency: 20 * machine.MHz,
			SCK:       pinLCDSCK,
			SDO:       pinLCDMOSI,
		}); err != nil {
			return err
		}
		lcd.Configure(st7789.Config{
			Width:        135,
			Height:       240,
			Rotation:     m5stickvPanelBase,
			RowOffset:    40,
			ColumnOffset: 52,
		})
		return nil
	})
}
