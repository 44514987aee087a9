package pixel

import "image/color"

// Color is a packed 24-bit RGB value laid out as 0xRRGGBB.
type Color uint32

var Model = color.ModelFunc(colorConvert)

func colorConvert(c color.Color) color.Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

func (c Color) R() uint8 { return uint8(c>>16&0xFF) }
func (c Color) G() uint8 { return uint8(c>>8&0xFF) }
func (c Color) B() uint8 { return uint8(c & 0xFF) }

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xFFFF
}
