package core

import "image/color"

// Color is an 8-bit RGB color
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color
var Black = Color{}

// ClampChannel truncates v toward zero and clamps it to [0, 255]
func ClampChannel(v float64) uint8 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Scale returns the color with every channel multiplied by intensity
func (c Color) Scale(intensity float64) Color {
	return Color{
		R: ClampChannel(float64(c.R) * intensity),
		G: ClampChannel(float64(c.G) * intensity),
		B: ClampChannel(float64(c.B) * intensity),
	}
}

// Blend mixes c and other per channel: c*(1-weight) + other*weight
func (c Color) Blend(other Color, weight float64) Color {
	mix := func(a, b uint8) uint8 {
		return ClampChannel(float64(a)*(1-weight) + float64(b)*weight)
	}
	return Color{
		R: mix(c.R, other.R),
		G: mix(c.G, other.G),
		B: mix(c.B, other.B),
	}
}

// ToRGBA converts the color to an opaque color.RGBA
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
