package gfx

// Color is a non-premultiplied 8 bit per channel color. It implements
// image/color.Color so it can be handed to the rasterizer directly.
type Color struct{ R, G, B, A uint8 }

var Black = Color{0, 0, 0, 255}
var White = Color{255, 255, 255, 255}
var Gray = Color{128, 128, 128, 255}
var LightGray = Color{191, 191, 191, 255}
var DarkGray = Color{64, 64, 64, 255}
var Red = Color{255, 0, 0, 255}
var LightRed = Color{255, 128, 128, 255}
var DarkRed = Color{128, 0, 0, 255}
var Green = Color{0, 255, 0, 255}
var LightGreen = Color{128, 255, 128, 255}
var DarkGreen = Color{0, 128, 0, 255}
var Blue = Color{0, 0, 255, 255}
var LightBlue = Color{128, 128, 255, 255}
var DarkBlue = Color{0, 0, 128, 255}
var Purple = Color{255, 0, 255, 255}
var LightPurple = Color{255, 128, 255, 255}
var DarkPurple = Color{128, 0, 128, 255}
var Yellow = Color{255, 255, 0, 255}
var LightYellow = Color{255, 255, 128, 255}
var DarkYellow = Color{128, 128, 0, 255}
var Cyan = Color{0, 255, 255, 255}
var LightCyan = Color{128, 255, 255, 255}
var DarkCyan = Color{0, 128, 128, 255}
var Transparent = Color{}

// RGBA returns alpha-premultiplied 16 bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return
}

// floats returns the straight alpha channels scaled to [0, 1].
func (c Color) floats() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// RGBAf builds a Color from channels in [0, 1], rounding to the nearest
// 8 bit value. Values outside the range are clamped.
func RGBAf(r, g, b, a float32) Color {
	return Color{channel(r), channel(g), channel(b), channel(a)}
}

func channel(value float32) uint8 {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	return uint8(value*255 + 0.5)
}
