// Package fakehal provides scripted, in-memory HAL parts for tests.
package fakehal

import (
	"image"
	"image/color"
	"strings"
	"sync"
	"time"

	"stickv/hal"
)

// Logger records every line.
type Logger struct {
	mu    sync.Mutex
	lines []string
}

func (l *Logger) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *Logger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Contains reports whether any line contains sub.
func (l *Logger) Contains(sub string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

// Op is one recorded Display call.
type Op struct {
	Kind   string // "clear", "image", "text"
	X, Y   int16
	Text   string
	FG, BG color.RGBA
}

// Display records immediate-mode calls and backs Canvas with memory.
type Display struct {
	mu       sync.Mutex
	w, h     int16
	ops      []Op
	rotation hal.Rotation
	inits    int
	canvas   *Canvas

	InitErr error
}

func NewDisplay(w, h int16) *Display {
	return &Display{w: w, h: h, canvas: NewCanvas(w, h)}
}

func (d *Display) record(op Op) {
	d.mu.Lock()
	d.ops = append(d.ops, op)
	d.mu.Unlock()
}

func (d *Display) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inits++
	return d.InitErr
}

func (d *Display) SetRotation(r hal.Rotation) error {
	d.mu.Lock()
	d.rotation = r
	d.mu.Unlock()
	return nil
}

func (d *Display) Clear(c color.RGBA)        { d.record(Op{Kind: "clear", FG: c}) }
func (d *Display) DrawImage(img image.Image) { d.record(Op{Kind: "image"}) }

func (d *Display) DrawString(x, y int16, s string, fg, bg color.RGBA) {
	d.record(Op{Kind: "text", X: x, Y: y, Text: s, FG: fg, BG: bg})
}

func (d *Display) Width() int16       { return d.w }
func (d *Display) Height() int16      { return d.h }
func (d *Display) Canvas() hal.Canvas { return d.canvas }

func (d *Display) Ops() []Op {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Op(nil), d.ops...)
}

// Texts returns the strings drawn so far, in order.
func (d *Display) Texts() []string {
	var out []string
	for _, op := range d.Ops() {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Find returns the first text op containing sub.
func (d *Display) Find(sub string) (Op, bool) {
	for _, op := range d.Ops() {
		if op.Kind == "text" && strings.Contains(op.Text, sub) {
			return op, true
		}
	}
	return Op{}, false
}

func (d *Display) Rotation() hal.Rotation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rotation
}

func (d *Display) Inits() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inits
}

func (d *Display) Reset() {
	d.mu.Lock()
	d.ops = nil
	d.mu.Unlock()
}

// Canvas is an RGBA pixel buffer implementing hal.Canvas.
type Canvas struct {
	mu       sync.Mutex
	w, h     int16
	pix      []color.RGBA
	presents int
}

func NewCanvas(w, h int16) *Canvas {
	return &Canvas{w: w, h: h, pix: make([]color.RGBA, int(w)*int(h))}
}

func (c *Canvas) Size() (int16, int16) { return c.w, c.h }

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.mu.Lock()
	c.pix[int(y)*int(c.w)+int(x)] = col
	c.mu.Unlock()
}

func (c *Canvas) At(x, y int16) color.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pix[int(y)*int(c.w)+int(x)]
}

// Count returns how many pixels have colour col.
func (c *Canvas) Count(col color.RGBA) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, p := range c.pix {
		if p == col {
			n++
		}
	}
	return n
}

// Presents counts Display calls.
func (c *Canvas) Presents() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.presents
}

func (c *Canvas) Display() error {
	c.mu.Lock()
	c.presents++
	c.mu.Unlock()
	return nil
}

func (c *Canvas) FillRectangle(x, y, w, h int16, col color.RGBA) error {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.SetPixel(xx, yy, col)
		}
	}
	return nil
}

func (c *Canvas) SetRotation(hal.Rotation) error  { return nil }
func (c *Canvas) SetScrollArea(top, bottom int16) {}
func (c *Canvas) SetScroll(line int16)            {}
func (c *Canvas) StopScroll()                     {}

// PMU records brightness changes and lets tests fire the registered callbacks.
type PMU struct {
	mu       sync.Mutex
	levels   []uint8
	onShort  func()
	onLong   func()
	periodic func()
	sleeps   int

	SleepErr   error
	Millivolts uint16
	IsCharging bool
	BatteryErr error
}

func (p *PMU) SetScreenBrightness(level uint8) error {
	p.mu.Lock()
	p.levels = append(p.levels, level)
	p.mu.Unlock()
	return nil
}

func (p *PMU) SetOnShortPress(fn func()) { p.mu.Lock(); p.onShort = fn; p.mu.Unlock() }
func (p *PMU) SetOnLongPress(fn func())  { p.mu.Lock(); p.onLong = fn; p.mu.Unlock() }
func (p *PMU) SetPeriodicTask(fn func()) { p.mu.Lock(); p.periodic = fn; p.mu.Unlock() }

func (p *PMU) EnterSleepMode() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sleeps++
	return p.SleepErr
}

func (p *PMU) BatteryMillivolts() (uint16, error) { return p.Millivolts, p.BatteryErr }
func (p *PMU) Charging() (bool, error)            { return p.IsCharging, p.BatteryErr }

// Levels returns every brightness written, in order.
func (p *PMU) Levels() []uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uint8(nil), p.levels...)
}

func (p *PMU) Sleeps() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sleeps
}

// ShortPress runs the short-press callback on the calling goroutine.
func (p *PMU) ShortPress() { call(&p.mu, &p.onShort) }
func (p *PMU) LongPress()  { call(&p.mu, &p.onLong) }
func (p *PMU) Tick()       { call(&p.mu, &p.periodic) }

func call(mu *sync.Mutex, fn *func()) {
	mu.Lock()
	f := *fn
	mu.Unlock()
	if f != nil {
		f()
	}
}

// Pin is an active-low button or LED: level true means released, or off.
type Pin struct {
	mu     sync.Mutex
	name   string
	caps   hal.GPIOCaps
	level  bool
	mode   hal.GPIOMode
	pull   hal.GPIOPull
	reads  int
	writes []bool

	ReadErr error
}

func NewButton(name string) *Pin {
	return &Pin{name: name, caps: hal.GPIOCapInput | hal.GPIOCapPullUp, level: true}
}

// NewLED returns an output pin that records every level written to it.
func NewLED(name string) *Pin {
	return &Pin{name: name, caps: hal.GPIOCapOutput, level: true}
}

func (p *Pin) Name() string       { return p.name }
func (p *Pin) Caps() hal.GPIOCaps { return p.caps }

func (p *Pin) Configure(mode hal.GPIOMode, pull hal.GPIOPull) error {
	p.mu.Lock()
	p.mode, p.pull = mode, pull
	p.mu.Unlock()
	return nil
}

func (p *Pin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reads++
	if p.ReadErr != nil {
		return false, p.ReadErr
	}
	return p.level, nil
}

func (p *Pin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.caps&hal.GPIOCapOutput == 0 || p.mode != hal.GPIOModeOutput {
		return hal.ErrNotImplemented
	}
	p.level = level
	p.writes = append(p.writes, level)
	return nil
}

// Writes returns every level written, oldest first.
func (p *Pin) Writes() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.writes...)
}

func (p *Pin) Press()   { p.set(false) }
func (p *Pin) Release() { p.set(true) }

func (p *Pin) set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *Pin) Pull() hal.GPIOPull {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pull
}

func (p *Pin) Reads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reads
}

// Pins is a board binding over fake pins.
type Pins map[string]*Pin

func (p Pins) Bind(name string) (hal.GPIOPin, error) {
	pin, ok := p[name]
	if !ok {
		return nil, hal.ErrNoSuchPin
	}
	return pin, nil
}

// System counts resets and sleeps without blocking. OnYield runs on every Yield,
// which is how tests script button activity during a busy-poll.
type System struct {
	mu     sync.Mutex
	resets int
	slept  time.Duration
	sleeps int
	yields int

	OnYield func(n int)
	OnReset func()
}

func (s *System) Reset() {
	s.mu.Lock()
	s.resets++
	fn := s.OnReset
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *System) Sleep(d time.Duration) {
	s.mu.Lock()
	s.slept += d
	s.sleeps++
	s.mu.Unlock()
}

func (s *System) Yield() {
	s.mu.Lock()
	s.yields++
	n, fn := s.yields, s.OnYield
	s.mu.Unlock()
	if fn != nil {
		fn(n)
	}
}

func (s *System) Resets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resets
}

func (s *System) Yields() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.yields
}

func (s *System) Slept() (time.Duration, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slept, s.sleeps
}

// HAL bundles the fakes. Home is BUTTON_A, Top is BUTTON_B and RedLED is LED_R.
type HAL struct {
	Log    *Logger
	Disp   *Display
	Power  *PMU
	Home   *Pin
	Top    *Pin
	RedLED *Pin
	Board  Pins
	Sys    *System
}

// New returns a HAL with a 240x135 display, both buttons released and the four status LEDs off.
func New() *HAL {
	home := NewButton(hal.PinButtonA)
	top := NewButton(hal.PinButtonB)
	red := NewLED(hal.PinLEDRed)
	return &HAL{
		Log:    &Logger{},
		Disp:   NewDisplay(240, 135),
		Power:  &PMU{Millivolts: 4100},
		Home:   home,
		Top:    top,
		RedLED: red,
		Board: Pins{
			hal.PinButtonA:  home,
			hal.PinButtonB:  top,
			hal.PinLEDWhite: NewLED(hal.PinLEDWhite),
			hal.PinLEDRed:   red,
			hal.PinLEDGreen: NewLED(hal.PinLEDGreen),
			hal.PinLEDBlue:  NewLED(hal.PinLEDBlue),
		},
		Sys: &System{},
	}
}

func (h *HAL) Logger() hal.Logger   { return h.Log }
func (h *HAL) Display() hal.Display { return h.Disp }
func (h *HAL) PMU() hal.PMU         { return h.Power }
func (h *HAL) Pins() hal.PinMux     { return h.Board }
func (h *HAL) System() hal.System   { return h.Sys }
