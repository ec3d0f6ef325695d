//go:build !tinygo

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stickv", "config.toml")
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBrightness, s.Brightness())
	assert.Equal(t, path, s.Path())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Load must not create the file")
}

func TestSetBrightnessPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stickv", "config.toml")
	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.SetBrightness(13))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 13, again.Brightness())
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("brightness = ["), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
