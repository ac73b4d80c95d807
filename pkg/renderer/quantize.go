package renderer

import (
	"math"

	"termray/pkg/core"
)

// glyphPalette is the display palette ordered from dimmest to
// brightest.
var glyphPalette = []rune{'.', '-', '+', '*', 'X', 'M'}

// Background is the glyph for cells where the ray hit nothing, and the
// saturation fallback for out-of-range brightness.
const Background = ' '

// Glyph quantizes a shaded color to a display glyph by mean channel
// brightness. Brightness at or above 1.0 (or below zero) deliberately
// falls through to the background glyph rather than clamping to the
// brightest palette entry: oversaturated cells render blank.
func Glyph(c core.Color) rune {
	index := int(math.Floor(c.Brightness() * float64(len(glyphPalette))))
	if index < 0 || index >= len(glyphPalette) {
		return Background
	}
	return glyphPalette[index]
}
