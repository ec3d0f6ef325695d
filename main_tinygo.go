//go:build tinygo

package main

import (
	"context"
	"time"

	"stickv/app"
	"stickv/hal"
	"stickv/internal/buildinfo"
	"stickv/stickos/apps/launcher"
	"stickv/stickos/config"
	"stickv/stickos/services/logger"
)

func main() {
	h := hal.New()
	ring := logger.NewRing(h.Logger(), logger.DefaultLines)
	ring.WriteLineString("stickv " + buildinfo.Short())

	store := config.Embedded()
	err := app.New(halWithLogger{HAL: h, log: ring}, app.Options{
		Config:   store,
		Launcher: launcher.Builtin(store, ring, time.Now()),
	}).Run(context.Background())
	if err != nil {
		ring.WriteLineString(err.Error())
	}

	// Only a boot bypass or a failed reset gets here.
	for {
		time.Sleep(time.Hour)
	}
}

// halWithLogger routes shell logging through the ring so the console app can show it.
type halWithLogger struct {
	hal.HAL
	log hal.Logger
}

func (h halWithLogger) Logger() hal.Logger { return h.log }
