package render

import "image/color"

// Quantize converts normalized intensities into 0..255 levels, truncating
// like a float to uint8 cast. dst is reused when large enough.
func Quantize(cells []float64, dst []uint8) []uint8 {
	if cap(dst) < len(cells) {
		dst = make([]uint8, len(cells))
	}
	dst = dst[:len(cells)]
	for i, v := range cells {
		dst[i] = uint8(clamp01(v) * 255)
	}
	return dst
}

// fillPaletteRGBA converts cell levels into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, levels []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range levels {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range levels {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
