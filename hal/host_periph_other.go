//go:build !tinygo && !linux

package hal

import "fmt"

func NewPeriphPins(_ map[string]string) (PinMux, error) {
	return nil, fmt.Errorf("pinmux: periph GPIO: %w", ErrNotImplemented)
}
