//go:build tinygo

package config

// Embedded returns the compiled-in defaults. The device has no writable storage for settings.
func Embedded() *Store {
	return &Store{cfg: Default(), readOnly: true}
}

func save(string, Config) error { return ErrReadOnly }
