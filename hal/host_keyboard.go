//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Holding the power key this many frames turns the press into a long press.
const longPressFrames = 60

// hostKeyboard maps keys onto the emulated buttons:
// A/Enter is Home, B/Space is Top, P/Escape is the power button and L is a long power press.
type hostKeyboard struct {
	home, top buttonPin
	pmu       *hostPMU

	powerHeld int
}

func newHostKeyboard(home, top buttonPin, pmu *hostPMU) *hostKeyboard {
	return &hostKeyboard{home: home, top: top, pmu: pmu}
}

func (k *hostKeyboard) poll() {
	k.home.set(ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyEnter))
	k.top.set(ebiten.IsKeyPressed(ebiten.KeyB) || ebiten.IsKeyPressed(ebiten.KeySpace))

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		k.pmu.press(true)
	}

	power := ebiten.IsKeyPressed(ebiten.KeyP) || ebiten.IsKeyPressed(ebiten.KeyEscape)
	switch {
	case power:
		k.powerHeld++
		if k.powerHeld == longPressFrames {
			k.pmu.press(true)
		}
	case k.powerHeld > 0:
		if k.powerHeld < longPressFrames {
			k.pmu.press(false)
		}
		k.powerHeld = 0
	}
}
