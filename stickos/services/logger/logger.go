// Package logger keeps recent log lines for on-device viewing.
package logger

import (
	"sync"

	"stickv/hal"
)

const DefaultLines = 64

// Ring forwards every line to the next logger and keeps the last few in memory.
type Ring struct {
	next hal.Logger

	mu    sync.Mutex
	lines []string
	start int
	seq   uint64
}

// NewRing wraps next, which may be nil, and remembers up to max lines.
func NewRing(next hal.Logger, max int) *Ring {
	if max <= 0 {
		max = DefaultLines
	}
	return &Ring{next: next, lines: make([]string, 0, max)}
}

func (r *Ring) WriteLineString(s string) {
	r.push(s)
	if r.next != nil {
		r.next.WriteLineString(s)
	}
}

func (r *Ring) WriteLineBytes(b []byte) {
	r.push(string(b))
	if r.next != nil {
		r.next.WriteLineBytes(b)
	}
}

func (r *Ring) push(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if len(r.lines) < cap(r.lines) {
		r.lines = append(r.lines, s)
		return
	}
	r.lines[r.start] = s
	r.start = (r.start + 1) % len(r.lines)
}

// Lines returns the retained lines, oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.lines))
	out = append(out, r.lines[r.start:]...)
	return append(out, r.lines[:r.start]...)
}

// Seq counts every line ever written.
func (r *Ring) Seq() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq
}
