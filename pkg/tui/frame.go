package tui

import "termray/pkg/renderer"

// Frame is a glyph grid one terminal screen in size. It implements
// renderer.Display and renders to a string for the bubbletea view.
type Frame struct {
	width  int
	height int
	cells  [][]rune
}

// NewFrame creates a frame of the given size with every cell set to
// the background glyph
func NewFrame(width, height int) *Frame {
	cells := make([][]rune, height)
	for row := range cells {
		line := make([]rune, width)
		for col := range line {
			line[col] = renderer.Background
		}
		cells[row] = line
	}
	return &Frame{width: width, height: height, cells: cells}
}

// SetGlyph writes one glyph. Writes outside the grid are dropped.
func (f *Frame) SetGlyph(row, col int, glyph rune) {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return
	}
	f.cells[row][col] = glyph
}

// Row returns the glyphs of one row as a string
func (f *Frame) Row(row int) string {
	return string(f.cells[row])
}

// Glyph returns the glyph at (row, col)
func (f *Frame) Glyph(row, col int) rune {
	return f.cells[row][col]
}
