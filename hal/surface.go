package hal

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	// FontLineHeight is the height of one text row drawn by DrawString.
	FontLineHeight = 16
	fontBaseline   = 11
)

// Surface implements Display on top of a Canvas using tinyfont for text.
type Surface struct {
	canvas Canvas
	init   func() error
	font   tinyfont.Fonter
}

// NewSurface wraps c. init, if non-nil, runs on Init and brings up the panel.
func NewSurface(c Canvas, init func() error) *Surface {
	return &Surface{canvas: c, init: init, font: &proggy.TinySZ8pt7b}
}

func (s *Surface) Init() error {
	if s.init == nil {
		return nil
	}
	return s.init()
}

func (s *Surface) SetRotation(rotation Rotation) error {
	return s.canvas.SetRotation(rotation)
}

func (s *Surface) Canvas() Canvas { return s.canvas }

func (s *Surface) Width() int16 {
	w, _ := s.canvas.Size()
	return w
}

func (s *Surface) Height() int16 {
	_, h := s.canvas.Size()
	return h
}

func (s *Surface) Clear(c color.RGBA) {
	w, h := s.canvas.Size()
	_ = s.canvas.FillRectangle(0, 0, w, h, c)
	_ = s.canvas.Display()
}

// DrawImage copies img to the top-left corner, clipped to the screen.
func (s *Surface) DrawImage(img image.Image) {
	if img == nil {
		return
	}
	w, h := s.canvas.Size()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && y-b.Min.Y < int(h); y++ {
		for x := b.Min.X; x < b.Max.X && x-b.Min.X < int(w); x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			s.canvas.SetPixel(int16(x-b.Min.X), int16(y-b.Min.Y), c)
		}
	}
	_ = s.canvas.Display()
}

// DrawString draws one line of text with its top-left corner at (x, y) over a filled background cell.
func (s *Surface) DrawString(x, y int16, str string, fg, bg color.RGBA) {
	if str == "" {
		return
	}
	_, outbox := tinyfont.LineWidth(s.font, str)
	if rx, ry, rw, rh, ok := s.clip(x, y, int16(outbox), FontLineHeight); ok {
		_ = s.canvas.FillRectangle(rx, ry, rw, rh, bg)
	}
	tinyfont.WriteLine(s.canvas, s.font, x, y+fontBaseline, str, fg)
	_ = s.canvas.Display()
}

// TextWidth reports how many pixels DrawString would use for str.
func (s *Surface) TextWidth(str string) int16 {
	_, outbox := tinyfont.LineWidth(s.font, str)
	return int16(outbox)
}

func (s *Surface) clip(x, y, w, h int16) (int16, int16, int16, int16, bool) {
	sw, sh := s.canvas.Size()
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > sw {
		w = sw - x
	}
	if y+h > sh {
		h = sh - y
	}
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	return x, y, w, h, true
}
