package stage

import (
	"fmt"
	"image/color"
)

// Color is a packed 32-bit color. From the most significant byte down it
// holds the alpha complement, red, green and blue. The alpha byte stores
// 255*(1-a): 0 is fully opaque and 255 fully transparent, so the zero
// Color is opaque black.
type Color uint32

// ColorNotFound is returned by LookupColor for an empty or unknown name.
// It equals opaque black.
const ColorNotFound Color = 0

// ColorPack packs channel values in [0, 1] into a Color. Each channel is
// scaled by 255 and truncated, not rounded.
func ColorPack(r, g, b, a float64) Color {
	var c Color
	c += Color(uint8((1.0-a)*255.0)) << 24
	c += Color(uint8(r*255.0)) << 16
	c += Color(uint8(g*255.0)) << 8
	c += Color(uint8(b * 255.0))
	return c
}

// Unpack returns the channels of c in [0, 1], reversing the alpha
// complement.
func (c Color) Unpack() (r, g, b, a float64) {
	a = 1.0 - float64((c&0xFF000000)>>24)/255.0
	r = float64((c&0x00FF0000)>>16) / 255.0
	g = float64((c&0x0000FF00)>>8) / 255.0
	b = float64(c&0x000000FF) / 255.0
	return r, g, b, a
}

// NRGBA returns c as a non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 255 - uint8(c>>24),
	}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns c as #RRGGBBAA with a conventional (non-complemented)
// alpha.
func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ColorFromStd converts any color.Color to a packed Color.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(255-n.A)<<24 | Color(n.R)<<16 | Color(n.G)<<8 | Color(n.B)
}

// colorFromRGB packs opaque 8-bit channels.
func colorFromRGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}
