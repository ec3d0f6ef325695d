//go:build !tinygo

package sentry

import (
	"strings"

	"stickv/hal"

	gosentry "github.com/getsentry/sentry-go"
)

// Breadcrumbs wraps a hal.Logger and records every line as a Sentry breadcrumb,
// so a fault event carries the log that led up to it.
type Breadcrumbs struct {
	next hal.Logger
}

func NewBreadcrumbs(next hal.Logger) *Breadcrumbs {
	return &Breadcrumbs{next: next}
}

func (b *Breadcrumbs) WriteLineString(s string) {
	if b.next != nil {
		b.next.WriteLineString(s)
	}
	b.record(s)
}

func (b *Breadcrumbs) WriteLineBytes(p []byte) {
	if b.next != nil {
		b.next.WriteLineBytes(p)
	}
	b.record(string(p))
}

func (b *Breadcrumbs) record(s string) {
	if !enabled {
		return
	}
	msg := strings.TrimSpace(s)
	if msg == "" {
		return
	}
	gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
		Level:    gosentry.LevelInfo,
		Category: "log",
		Message:  msg,
	})
}
