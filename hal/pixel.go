package hal

import "image/color"

// rgb565 packs c into the panel's 16-bit format. Alpha is ignored.
func rgb565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// backlit expands a panel pixel to 8 bits per channel as it looks with the
// backlight at level. Level 0 is black; MaxBrightness is full intensity.
func backlit(p uint16, level uint8) (r, g, b uint8) {
	if level > MaxBrightness {
		level = MaxBrightness
	}
	l := uint32(level)
	r = uint8(uint32(p>>11&0x1F) * 255 * l / (0x1F * MaxBrightness))
	g = uint8(uint32(p>>5&0x3F) * 255 * l / (0x3F * MaxBrightness))
	b = uint8(uint32(p&0x1F) * 255 * l / (0x1F * MaxBrightness))
	return r, g, b
}
