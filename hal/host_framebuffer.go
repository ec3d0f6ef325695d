//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// The emulated panel is mounted upside down, as on the device: Rotation180 shows upright in the window.
const hostPanelMount = Rotation180

// hostFramebuffer is an RGB565 Canvas backing the desktop window.
type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	rotation Rotation
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:    width,
		height:   height,
		stride:   stride,
		buf:      make([]byte, stride*height),
		rotation: hostPanelMount,
	}
}

// Size reports the logical size for the current rotation.
func (f *hostFramebuffer) Size() (int16, int16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logicalSize()
}

func (f *hostFramebuffer) logicalSize() (int16, int16) {
	if f.quarter()%2 == 1 {
		return int16(f.height), int16(f.width)
	}
	return int16(f.width), int16(f.height)
}

// quarter is the rotation relative to the panel mount.
func (f *hostFramebuffer) quarter() int {
	return (int(f.rotation) - int(hostPanelMount) + 4) % 4
}

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	f.setPixel(x, y, rgb565(c))
	f.mu.Unlock()
}

func (f *hostFramebuffer) setPixel(x, y int16, pixel uint16) {
	lw, lh := f.logicalSize()
	if x < 0 || y < 0 || x >= lw || y >= lh {
		return
	}
	px, py := int(x), int(y)
	switch f.quarter() {
	case 1:
		px, py = f.width-1-int(y), int(x)
	case 2:
		px, py = f.width-1-int(x), f.height-1-int(y)
	case 3:
		px, py = int(y), f.height-1-int(x)
	}
	i := py*f.stride + px*2
	f.buf[i] = byte(pixel)
	f.buf[i+1] = byte(pixel >> 8)
}

func (f *hostFramebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	pixel := rgb565(c)
	f.mu.Lock()
	defer f.mu.Unlock()
	for yy := y; yy < y+height; yy++ {
		for xx := x; xx < x+width; xx++ {
			f.setPixel(xx, yy, pixel)
		}
	}
	return nil
}

func (f *hostFramebuffer) Display() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) SetRotation(r Rotation) error {
	f.mu.Lock()
	f.rotation = r % 4
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) SetScrollArea(topFixedArea, bottomFixedArea int16) {}
func (f *hostFramebuffer) SetScroll(line int16)                              {}
func (f *hostFramebuffer) StopScroll()                                       {}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// at returns the panel pixel at physical coordinates.
func (f *hostFramebuffer) at(px, py int) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := py*f.stride + px*2
	return uint16(f.buf[i]) | uint16(f.buf[i+1])<<8
}
