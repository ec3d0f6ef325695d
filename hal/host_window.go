//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"
	"image/color"

	"stickv/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that shows the emulated panel and forwards keyboard input.
// run executes on its own goroutine; RunWindow blocks until run returns or the window closes.
func RunWindow(ctx context.Context, h *Host, run func(context.Context) error, scale int) error {
	if scale <= 0 {
		scale = 3
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h.Start(ctx)
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	g := &hostGame{h: h, ctx: ctx, done: done}
	ebiten.SetWindowTitle("StickV (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*scale, h.fb.height*scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return g.result
	}
	return err
}

var ledColors = map[string]color.RGBA{
	PinLEDWhite: {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	PinLEDRed:   {R: 0xFF, A: 0xFF},
	PinLEDGreen: {G: 0xFF, A: 0xFF},
	PinLEDBlue:  {B: 0xFF, A: 0xFF},
}

type hostGame struct {
	h      *Host
	ctx    context.Context
	done   chan error
	result error

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		g.result = err
		return ebiten.Termination
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	g.h.kbd.poll()
	g.h.Tick()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	level := g.h.pmu.Brightness()
	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		j := (i / 2) * 4
		dst[j+0], dst[j+1], dst[j+2] = backlit(uint16(src[i])|uint16(src[i+1])<<8, level)
		dst[j+3] = 0xFF
	}

	// Lit status LEDs show as dots in the top-right corner.
	for i, name := range StatusLEDs {
		if g.h.ledLit(name) {
			g.dot(fb.width-4*(len(StatusLEDs)-i), 1, ledColors[name])
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) dot(x, y int, c color.RGBA) {
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			g.img.SetRGBA(x+dx, y+dy, c)
		}
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
