package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stickv/stickos/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollForEventSinglePressYieldsOneEvent(t *testing.T) {
	s, h := newStartedShell(t, 8)
	h.Sys.OnYield = func(n int) {
		if n == 3 {
			h.Home.Press()
		}
	}

	ev := s.PollForEvent(context.Background())
	require.Equal(t, Event{Kind: ButtonEvent, Button: HomeButton, State: kernel.Pressed}, ev)

	// Still held: the next poll must wait for the release, then report only the
	// invalidation, not a second press.
	h.Sys.OnYield = func(n int) {
		switch n {
		case 10:
			h.Home.Release()
		case 15:
			s.Invalidate()
		}
	}
	ev = s.PollForEvent(context.Background())
	require.Equal(t, DirtyEvent, ev.Kind)
	require.GreaterOrEqual(t, h.Sys.Yields(), 15)
}

func TestPollForEventWaitsForBothReleased(t *testing.T) {
	s, h := newStartedShell(t, 8)
	h.Home.Press()
	h.Top.Press()

	var released bool
	h.Sys.OnYield = func(n int) {
		switch n {
		case 2:
			h.Top.Release()
		case 4:
			h.Home.Release()
			released = true
		case 6:
			h.Top.Press()
		}
	}

	ev := s.PollForEvent(context.Background())
	require.True(t, released)
	require.Equal(t, Event{Kind: ButtonEvent, Button: TopButton, State: kernel.Pressed}, ev)
}

func TestPollForEventReportsDirtyWithoutWaiting(t *testing.T) {
	s, h := newStartedShell(t, 8)
	s.Invalidate()

	ev := s.PollForEvent(context.Background())
	assert.Equal(t, DirtyEvent, ev.Kind)
	assert.Zero(t, h.Sys.Yields())
}

func TestPollForEventDirtyWinsOverPress(t *testing.T) {
	s, h := newStartedShell(t, 8)
	h.Sys.OnYield = func(n int) {
		if n == 2 {
			h.Top.Press()
			s.Invalidate()
		}
	}
	assert.Equal(t, DirtyEvent, s.PollForEvent(context.Background()).Kind)
}

func TestPollForEventChordIsNoEvent(t *testing.T) {
	s, h := newStartedShell(t, 8)
	h.Sys.OnYield = func(n int) {
		if n == 2 {
			h.Home.Press()
			h.Top.Press()
		}
	}
	assert.Equal(t, NoEvent, s.PollForEvent(context.Background()).Kind)
}

func TestPollForEventStopsWhenCancelled(t *testing.T) {
	s, h := newStartedShell(t, 8)
	ctx, cancel := context.WithCancel(context.Background())
	h.Sys.OnYield = func(n int) {
		if n == 5 {
			cancel()
		}
	}
	assert.Equal(t, Event{}, s.PollForEvent(ctx))
}

func TestPollForEventReadErrorCountsAsReleased(t *testing.T) {
	s, h := newStartedShell(t, 8)
	h.Home.ReadErr = errors.New("bus fault")
	h.Sys.OnYield = func(n int) {
		if n == 4 {
			h.Top.Press()
		}
	}

	ev := s.PollForEvent(context.Background())
	require.Equal(t, Event{Kind: ButtonEvent, Button: TopButton, State: kernel.Pressed}, ev)

	failures := 0
	for _, line := range h.Log.Lines() {
		if strings.Contains(line, "bus fault") {
			failures++
		}
	}
	assert.Equal(t, 1, failures, "a failing pin is logged once per poll")
}
