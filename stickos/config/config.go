// Package config loads and stores the shell's persisted settings.
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultBrightness = 8
	MinBrightness     = 0
	MaxBrightness     = 15
)

var (
	ErrReadOnly   = errors.New("config: store is read-only")
	ErrOutOfRange = errors.New("config: value out of range")
)

//go:embed default.toml
var defaultTOML []byte

// Config is the on-disk settings document.
type Config struct {
	Display DisplayConfig `toml:"display"`
}

type DisplayConfig struct {
	Brightness int `toml:"brightness" comment:"Backlight level applied after the first frame, 0..15."`
}

// Default returns the embedded defaults.
func Default() Config {
	c, err := Parse(defaultTOML)
	if err != nil {
		return Config{Display: DisplayConfig{Brightness: DefaultBrightness}}
	}
	return c
}

// Parse decodes data over the defaults. Out-of-range values are clamped.
func Parse(data []byte) (Config, error) {
	c := Config{Display: DisplayConfig{Brightness: DefaultBrightness}}
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	c.Display.Brightness = ClampBrightness(c.Display.Brightness)
	return c, nil
}

// Marshal encodes c as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

func ClampBrightness(level int) int {
	switch {
	case level < MinBrightness:
		return MinBrightness
	case level > MaxBrightness:
		return MaxBrightness
	}
	return level
}
