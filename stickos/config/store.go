package config

import (
	"fmt"
	"sync"
)

// Store holds the live settings and writes changes back where the platform allows it.
type Store struct {
	mu       sync.Mutex
	cfg      Config
	path     string
	readOnly bool
}

// NewStore returns an in-memory store seeded with cfg.
func NewStore(cfg Config) *Store {
	cfg.Display.Brightness = ClampBrightness(cfg.Display.Brightness)
	return &Store{cfg: cfg}
}

// Path is the backing file, or "" for a store that is not file-backed.
func (s *Store) Path() string { return s.path }

func (s *Store) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Store) Brightness() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Display.Brightness
}

// SetBrightness updates the backlight level and persists it.
func (s *Store) SetBrightness(level int) error {
	if level < MinBrightness || level > MaxBrightness {
		return fmt.Errorf("config: brightness %d: %w", level, ErrOutOfRange)
	}
	if s.readOnly {
		return ErrReadOnly
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cfg
	next.Display.Brightness = level
	if s.path != "" {
		if err := save(s.path, next); err != nil {
			return err
		}
	}
	s.cfg = next
	return nil
}
