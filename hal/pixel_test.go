package hal

import (
	"image/color"
	"testing"
)

func TestRGB565Packing(t *testing.T) {
	cases := []struct {
		in   color.RGBA
		want uint16
	}{
		{color.RGBA{A: 0xff}, 0x0000},
		{color.RGBA{R: 0xff, G: 0xff, B: 0xff}, 0xFFFF},
		{color.RGBA{R: 0xff}, 0xF800},
		{color.RGBA{G: 0xff}, 0x07E0},
		{color.RGBA{B: 0xAA, A: 0xff}, 0x0015},
	}
	for _, c := range cases {
		if got := rgb565(c.in); got != c.want {
			t.Fatalf("rgb565(%v) = %#04x, expected %#04x", c.in, got, c.want)
		}
	}
}

func TestBacklitScalesWithLevel(t *testing.T) {
	white := rgb565(color.RGBA{R: 0xff, G: 0xff, B: 0xff})

	if r, g, b := backlit(white, MaxBrightness); r != 0xff || g != 0xff || b != 0xff {
		t.Fatalf("expected full white, got %d,%d,%d", r, g, b)
	}
	if r, g, b := backlit(white, 0); r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected black with the backlight off, got %d,%d,%d", r, g, b)
	}
	r, _, _ := backlit(white, 8)
	if r != 136 {
		t.Fatalf("expected red 136 at level 8, got %d", r)
	}
	if r2, _, _ := backlit(white, 200); r2 != 0xff {
		t.Fatalf("expected out-of-range level to clamp, got %d", r2)
	}
}
