//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"stickv/app"
	"stickv/hal"
	"stickv/internal/buildinfo"
	"stickv/internal/sentry"
	"stickv/stickos/apps/launcher"
	"stickv/stickos/config"
	"stickv/stickos/services/logger"

	"github.com/spf13/pflag"
)

func main() {
	var (
		headless    hal.HeadlessConfig
		configPath  string
		pins        string
		homePin     string
		topPin      string
		ledPin      string
		logLevel    string
		logJSON     bool
		scale       int
		periodic    int
		showVersion bool
	)
	pflag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	pflag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	pflag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	pflag.StringVar(&configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/stickv/config.toml).")
	pflag.StringVar(&pins, "pins", "keyboard", "Button source: keyboard or periph.")
	pflag.StringVar(&homePin, "home-pin", "GPIO17", "GPIO line for the Home button with --pins=periph.")
	pflag.StringVar(&topPin, "top-pin", "GPIO27", "GPIO line for the Top button with --pins=periph.")
	pflag.StringVar(&ledPin, "led-pin", "", "GPIO line for the red fault LED with --pins=periph (active-low).")
	pflag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	pflag.BoolVar(&logJSON, "log-json", false, "Log JSON lines instead of the console format.")
	pflag.IntVar(&scale, "scale", 3, "Window scale factor.")
	pflag.IntVar(&periodic, "periodic", 6, "Host ticks between PMU periodic tasks.")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Print the version and exit.")
	pflag.Parse()

	if showVersion {
		fmt.Println(buildinfo.Line())
		return
	}

	zl, err := hal.NewZapLogger(logLevel, logJSON)
	if err != nil {
		fatal(fmt.Errorf("log level %q: %w", logLevel, err))
	}
	defer func() { _ = zl.Sync() }()

	if err := sentry.Init(os.Getenv(sentry.DSNEnv), buildinfo.Short()); err != nil {
		zl.Warn("sentry disabled: " + err.Error())
	} else if sentry.IsEnabled() {
		zl.Info("sentry: fault reporting enabled")
	}
	defer sentry.Flush()

	ring := logger.NewRing(sentry.NewBreadcrumbs(zl), logger.DefaultLines)

	store, err := config.Load(configPath)
	if err != nil {
		fatal(err)
	}

	opts := hal.HostOptions{Logger: ring, PeriodicEvery: periodic}
	switch pins {
	case "keyboard":
	case "periph":
		lines := map[string]string{
			hal.PinButtonA: homePin,
			hal.PinButtonB: topPin,
		}
		if ledPin != "" {
			lines[hal.PinLEDRed] = ledPin
		}
		mux, err := hal.NewPeriphPins(lines)
		if err != nil {
			fatal(err)
		}
		opts.Pins = mux
	default:
		fatal(fmt.Errorf("unknown --pins %q (keyboard or periph)", pins))
	}

	h := hal.NewHost(opts)
	shell := app.New(h, app.Options{
		Config:   store,
		Launcher: launcher.Builtin(store, ring, time.Now()),
		Report:   sentry.Report,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if headless.Enabled {
		err = hal.RunHeadless(ctx, h, shell.Run, headless)
	} else {
		err = hal.RunWindow(ctx, h, shell.Run, scale)
	}
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, app.ErrBootBypassed):
		ring.WriteLineString("boot bypassed")
	default:
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "stickv:", err)
	sentry.Flush()
	os.Exit(1)
}
