//go:build !tinygo

package hal

import (
	"image/color"
	"testing"
)

func TestHostFramebufferMountIsUpright(t *testing.T) {
	fb := newHostFramebuffer(8, 4)
	red := color.RGBA{R: 0xff, A: 0xff}

	if w, h := fb.Size(); w != 8 || h != 4 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
	fb.SetPixel(1, 2, red)
	if fb.at(1, 2) != rgb565(red) {
		t.Fatal("expected mount rotation to be identity")
	}
}

func TestHostFramebufferRotation(t *testing.T) {
	fb := newHostFramebuffer(8, 4)
	red := color.RGBA{R: 0xff, A: 0xff}
	want := rgb565(red)

	if err := fb.SetRotation(Rotation0); err != nil {
		t.Fatalf("SetRotation: %v", err)
	}
	fb.SetPixel(0, 0, red)
	if fb.at(7, 3) != want {
		t.Fatal("expected Rotation0 to flip the mounted panel")
	}

	_ = fb.SetRotation(Rotation270)
	if w, h := fb.Size(); w != 4 || h != 8 {
		t.Fatalf("expected swapped size, got %dx%d", w, h)
	}
	fb.SetPixel(3, 7, red)
	fb.SetPixel(4, 0, red) // out of bounds, dropped
}

func TestHostFramebufferFillClips(t *testing.T) {
	fb := newHostFramebuffer(4, 4)
	blue := color.RGBA{B: 0xff, A: 0xff}
	if err := fb.FillRectangle(2, 2, 10, 10, blue); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	if fb.at(3, 3) != rgb565(blue) {
		t.Fatal("expected corner filled")
	}
	if fb.at(1, 1) != 0 {
		t.Fatal("expected pixels outside the rectangle untouched")
	}
}
