package renderer

import (
	"testing"

	"termray/pkg/core"
)

// gray builds a color whose brightness equals b exactly
func gray(b float64) core.Color {
	return core.NewColor(b, b, b)
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name       string
		brightness float64
		expected   rune
	}{
		{"zero maps to dimmest glyph", 0.0, '.'},
		{"just below first boundary", 0.16, '.'},
		{"second bucket", 0.2, '-'},
		{"middle bucket", 0.5, '*'},
		{"brightest bucket", 0.99, 'M'},
		{"exactly one saturates to background", 1.0, ' '},
		{"above one saturates to background", 1.5, ' '},
		{"negative saturates to background", -0.1, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Glyph(gray(tt.brightness)); got != tt.expected {
				t.Errorf("Brightness %f: expected %q, got %q", tt.brightness, tt.expected, got)
			}
		})
	}
}

// Saturation falls to the background glyph, never to the brightest
// palette entry: an overlit cell renders blank.
func TestGlyph_SaturationIsNotAClamp(t *testing.T) {
	if Glyph(gray(0.999)) != 'M' {
		t.Error("Expected brightness just under 1.0 to map to the brightest glyph")
	}
	if Glyph(core.White.Add(core.White)) != Background {
		t.Error("Expected oversaturated color to map to the background glyph")
	}
}
