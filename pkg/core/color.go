package core

// Color is an additive RGB triple. Channel values nominally live in
// [0,1] but the arithmetic never clamps; accumulated light can exceed
// 1.0 per channel and only the glyph quantizer decides what to do with
// out-of-range brightness.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Standard palette colors
var (
	White = Color{R: 1, G: 1, B: 1}
	Red   = Color{R: 1, G: 0, B: 0}
	Green = Color{R: 0, G: 1, B: 0}
	Blue  = Color{R: 0, G: 0, B: 1}
)

// Scale returns the color with every channel multiplied by s
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// Brightness returns the mean of the three channels, the value the
// glyph quantizer maps onto the display palette
func (c Color) Brightness() float64 {
	return (c.R + c.G + c.B) / 3.0
}
