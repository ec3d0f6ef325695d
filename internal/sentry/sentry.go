//go:build !tinygo

// Package sentry forwards shell faults and log breadcrumbs to Sentry when a DSN is configured.
package sentry

import (
	"runtime"
	"time"

	"stickv/stickos/kernel"

	gosentry "github.com/getsentry/sentry-go"
)

// DSNEnv names the environment variable read by the host binary.
const DSNEnv = "STICKV_SENTRY_DSN"

const flushTimeout = 2 * time.Second

// enabled tracks whether sentry was successfully initialized.
var enabled bool

// beforeSend is a package-level var so tests can capture events instead of sending them.
var beforeSend func(*gosentry.Event, *gosentry.EventHint) *gosentry.Event

// Init initializes the Sentry SDK. An empty dsn leaves reporting disabled and
// every other function in this package a no-op.
func Init(dsn, version string) error {
	if dsn == "" {
		enabled = false
		return nil
	}

	err := gosentry.Init(gosentry.ClientOptions{
		Dsn:              dsn,
		Release:          "stickv@" + version,
		AttachStacktrace: false,
		SampleRate:       1.0,
		BeforeSend:       beforeSend,
	})
	if err != nil {
		return err
	}

	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
		scope.SetTag("go_version", runtime.Version())
		scope.SetTag("version", version)
	})

	enabled = true
	return nil
}

// IsEnabled returns whether sentry is active.
func IsEnabled() bool {
	return enabled
}

// Flush waits up to 2 seconds for buffered events to be sent.
func Flush() {
	if !enabled {
		return
	}
	gosentry.Flush(flushTimeout)
}

// Report sends one fault event and flushes, since a reset follows shortly after.
// It has the signature of app.Options.Report.
func Report(info kernel.FaultInfo) {
	if !enabled {
		return
	}
	gosentry.WithScope(func(scope *gosentry.Scope) {
		scope.SetLevel(gosentry.LevelFatal)
		scope.SetTag("fault_kind", info.Kind)
		ctx := gosentry.Context{"kind": info.Kind, "message": info.Message}
		if len(info.Stack) > 0 {
			ctx["stack"] = string(info.Stack)
		}
		scope.SetContext("fault", ctx)
		gosentry.CaptureMessage(info.String())
	})
	gosentry.Flush(flushTimeout)
}
