package console

import (
	"image/color"
	"testing"

	"stickv/internal/fakehal"
	"stickv/stickos/kernel"
	"stickv/stickos/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailFitsWrappedLines(t *testing.T) {
	lines := []string{"a", "bbbbbbbbbb", "c", "d"}
	assert.Equal(t, []string{"c", "d"}, tail(lines, 3, 4))
	assert.Equal(t, []string{"bbbbbbbbbb", "c", "d"}, tail(lines, 5, 4))
	assert.Equal(t, lines, tail(lines, 100, 40))
	assert.Nil(t, tail(lines, 0, 40))
}

func TestConsoleDrawsLogAndFollows(t *testing.T) {
	sh := fakehal.NewShell()
	ring := logger.NewRing(nil, 8)
	ring.WriteLineString("hello from the shell")
	a := New(sh, ring)

	require.NoError(t, a.Draw())
	canvas := sh.Disp.Canvas().(*fakehal.Canvas)
	w, h := canvas.Size()
	assert.Less(t, canvas.Count(color.RGBA{}), int(w)*int(h), "expected text pixels")
	assert.Equal(t, 1, canvas.Presents(), "the terminal view is presented once per draw")

	a.PeriodicTask()
	assert.Zero(t, sh.Invalidations, "nothing new")

	ring.WriteLineString("another line")
	a.PeriodicTask()
	assert.Equal(t, 1, sh.Invalidations)
}

func TestConsolePause(t *testing.T) {
	sh := fakehal.NewShell()
	ring := logger.NewRing(nil, 8)
	a := New(sh, ring)

	require.NoError(t, a.TopButtonChanged(kernel.Pressed))
	invalidations := sh.Invalidations
	ring.WriteLineString("ignored while paused")
	a.PeriodicTask()
	assert.Equal(t, invalidations, sh.Invalidations)
	assert.Equal(t, kernel.BackUnhandled, a.BackPressed())
}
