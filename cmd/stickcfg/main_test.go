//go:build !tinygo

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stickv/stickos/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	out, err := run(t, "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestGetDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	out, err := run(t, "--config", path, "get", "brightness")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "get must not create the file")
}

func TestSetWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	_, err := run(t, "--config", path, "set", "brightness", "12")
	require.NoError(t, err)

	store, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, store.Brightness())

	out, err := run(t, "--config", path, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[display]")
	assert.Contains(t, out, "brightness = 12")
}

func TestSetRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "not a number", args: []string{"set", "brightness", "max"}, want: "not a number"},
		{name: "out of range", args: []string{"set", "brightness", "16"}, want: "out of range"},
		{name: "unknown setting", args: []string{"set", "volume", "3"}, want: "unknown setting"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--config", path}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), "error %q", err)
			assert.NotContains(t, out, "Usage:")
		})
	}
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
