package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"stickv/stickos/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortPressHandledKeepsStack(t *testing.T) {
	s, h := newStartedShell(t, 8)
	root, x := newTestApp("root"), newTestApp("x")
	x.backResult = kernel.BackHandled
	s.Navigate(root)
	s.Navigate(x)
	s.dirty.Store(false)

	h.Power.ShortPress()

	assert.Equal(t, 1, x.backs)
	assert.Equal(t, 2, s.Depth())
	assert.Same(t, x, s.CurrentApp())
	assert.False(t, s.dirty.Load())
	assert.Zero(t, h.Sys.Resets())
}

func TestShortPressUnhandledPopsExactlyOnce(t *testing.T) {
	s, h := newStartedShell(t, 8)
	a, b, c := newTestApp("a"), newTestApp("b"), newTestApp("c")
	s.Navigate(a)
	s.Navigate(b)
	s.Navigate(c)

	h.Power.ShortPress()

	assert.Equal(t, 2, s.Depth())
	assert.Same(t, b, s.CurrentApp())
	assert.Zero(t, b.backs)
}

func TestShortPressRebootResetsWithoutPopping(t *testing.T) {
	s, h := newStartedShell(t, 8)
	root, x := newTestApp("root"), newTestApp("x")
	x.backResult = kernel.BackReboot
	s.Navigate(root)
	s.Navigate(x)

	h.Power.ShortPress()

	assert.Equal(t, 1, h.Sys.Resets())
	assert.Equal(t, 2, s.Depth())
	assert.Same(t, x, s.CurrentApp())
}

func TestShortPressWithEmptyStack(t *testing.T) {
	s, h := newStartedShell(t, 8)
	assert.NotPanics(t, h.Power.ShortPress)
	assert.Nil(t, s.CurrentApp())
	assert.True(t, s.dirty.Load())
}

func TestLongPressSleeps(t *testing.T) {
	s, h := newStartedShell(t, 8)
	x := newTestApp("x")
	s.Navigate(x)
	s.dirty.Store(false)

	h.Power.LongPress()

	assert.Equal(t, 1, h.Power.Sleeps())
	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.dirty.Load())
	assert.Zero(t, x.backs)
}

func TestLongPressSleepErrorIsLogged(t *testing.T) {
	s, h := newStartedShell(t, 8)
	h.Power.SleepErr = errors.New("nack")
	h.Power.LongPress()
	assert.True(t, h.Log.Contains("nack"))
	assert.Zero(t, h.Sys.Resets())
	assert.False(t, s.faulted.Load())
}

func TestPeriodicTaskReachesForegroundApp(t *testing.T) {
	s, h := newStartedShell(t, 8)
	h.Power.Tick() // empty stack: no-op

	root, x := newTestApp("root"), newTestApp("x")
	s.Navigate(root)
	s.Navigate(x)
	h.Power.Tick()
	h.Power.Tick()

	assert.Equal(t, 2, x.Periodics())
	assert.Zero(t, root.Periodics())
}

func TestNestedCallbackIsDropped(t *testing.T) {
	s, h := newStartedShell(t, 8)
	x := newTestApp("x")
	x.backResult = kernel.BackHandled
	x.onBack = h.Power.Tick
	s.Navigate(x)

	h.Power.ShortPress()

	assert.Zero(t, x.Periodics())
	assert.True(t, h.Log.Contains("busy handling another PMU callback"))

	// The guard is released afterwards.
	h.Power.Tick()
	assert.Equal(t, 1, x.Periodics())
}

func TestPeriodicTaskWaitsForDraw(t *testing.T) {
	s, h := newStartedShell(t, 8)
	x := newTestApp("x")
	ticked := make(chan struct{})
	var duringDraw int
	x.onDraw = func(int) {
		go func() {
			h.Power.Tick()
			close(ticked)
		}()
		time.Sleep(20 * time.Millisecond)
		duringDraw = x.Periodics()
	}
	s.Navigate(x)

	require.NoError(t, s.step(context.Background()))
	<-ticked
	assert.Zero(t, duringDraw, "periodic task must not run while the app is drawing")
	assert.Equal(t, 1, x.Periodics())
}
