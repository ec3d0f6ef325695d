package launcher

import (
	"testing"
	"time"

	"stickv/internal/fakehal"
	"stickv/stickos/apps/console"
	"stickv/stickos/apps/settings"
	"stickv/stickos/apps/sysinfo"
	"stickv/stickos/config"
	"stickv/stickos/kernel"
	"stickv/stickos/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubApp struct{ kernel.App }

func TestLauncherCyclesAndOpens(t *testing.T) {
	sh := fakehal.NewShell()
	opened := map[string]int{}
	entry := func(name string) Entry {
		return Entry{Name: name, Open: func(kernel.Shell) kernel.App {
			opened[name]++
			return stubApp{}
		}}
	}
	l := New(sh, entry("settings"), entry("sysinfo"), entry("console"))

	require.NoError(t, l.TopButtonChanged(kernel.Pressed))
	require.NoError(t, l.TopButtonChanged(kernel.Released))
	assert.Equal(t, 1, l.Selected())

	require.NoError(t, l.TopButtonChanged(kernel.Pressed))
	require.NoError(t, l.TopButtonChanged(kernel.Pressed))
	assert.Equal(t, 0, l.Selected(), "selection wraps")

	require.NoError(t, l.HomeButtonChanged(kernel.Pressed))
	assert.Equal(t, 1, opened["settings"])
	require.Len(t, sh.Stack, 1)
}

func TestLauncherAlwaysHandlesBack(t *testing.T) {
	l := New(fakehal.NewShell())
	assert.Equal(t, kernel.BackHandled, l.BackPressed())
}

func TestLauncherDrawHighlightsSelection(t *testing.T) {
	sh := fakehal.NewShell()
	l := New(sh, Entry{Name: "settings"}, Entry{Name: "sysinfo"})
	require.NoError(t, l.TopButtonChanged(kernel.Pressed))

	require.NoError(t, l.Draw())
	op, ok := sh.Disp.Find("> sysinfo")
	require.True(t, ok)
	assert.Equal(t, colorBG, op.FG)
	assert.Equal(t, colorFG, op.BG)
	_, ok = sh.Disp.Find("  settings")
	assert.True(t, ok)
}

func TestLauncherEmpty(t *testing.T) {
	sh := fakehal.NewShell()
	l := New(sh)
	require.NoError(t, l.Draw())
	require.NoError(t, l.HomeButtonChanged(kernel.Pressed))
	require.NoError(t, l.TopButtonChanged(kernel.Pressed))
	assert.Empty(t, sh.Stack)
	_, ok := sh.Disp.Find("no apps installed")
	assert.True(t, ok)
}

func TestBuiltinOpensEachApp(t *testing.T) {
	sh := fakehal.NewShell()
	store := config.NewStore(config.Default())
	ring := logger.NewRing(nil, 4)
	l := Builtin(store, ring, time.Now())(sh).(*App)

	require.NoError(t, l.Draw())
	for _, name := range []string{"> Settings", "  System", "  Console"} {
		_, ok := sh.Disp.Find(name)
		assert.True(t, ok, name)
	}

	for i := range 3 {
		require.NoError(t, l.HomeButtonChanged(kernel.Pressed))
		require.NoError(t, l.TopButtonChanged(kernel.Pressed))
		require.Len(t, sh.Stack, i+1)
	}
	assert.IsType(t, &settings.App{}, sh.Stack[0])
	assert.IsType(t, &sysinfo.App{}, sh.Stack[1])
	assert.IsType(t, &console.App{}, sh.Stack[2])
}
