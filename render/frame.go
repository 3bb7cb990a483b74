package render

import (
	"strings"
)

// Fixed frame dimensions in terminal cells
const (
	Width  = 80
	Height = 40
)

// Frame is a row-major glyph grid, one byte per cell
// Owned by the render loop, fully overwritten every frame
type Frame struct {
	cells  []byte
	width  int
	height int
}

// NewFrame creates a Width×Height frame with every cell set to fill
func NewFrame(fill byte) *Frame {
	f := &Frame{
		cells:  make([]byte, Width*Height),
		width:  Width,
		height: Height,
	}
	f.Reset(fill)
	return f
}

// Reset sets every cell to fill using exponential copy
func (f *Frame) Reset(fill byte) {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = fill
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// inBounds returns true if in frame bounds
func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes a glyph, out of bounds writes are dropped
func (f *Frame) Set(x, y int, g byte) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = g
}

// At returns the glyph at (x, y), 0 when out of bounds
func (f *Frame) At(x, y int) byte {
	if !f.inBounds(x, y) {
		return 0
	}
	return f.cells[y*f.width+x]
}

// Row returns row y as a slice aliasing the frame, nil when out of bounds
func (f *Frame) Row(y int) []byte {
	if y < 0 || y >= f.height {
		return nil
	}
	start := y * f.width
	return f.cells[start : start+f.width : start+f.width]
}

// Bounds returns frame dimensions
func (f *Frame) Bounds() (width, height int) {
	return f.width, f.height
}

// Count returns the number of cells holding g
func (f *Frame) Count(g byte) int {
	n := 0
	for _, c := range f.cells {
		if c == g {
			n++
		}
	}
	return n
}

// String renders rows joined by newlines, without terminal control sequences
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(len(f.cells) + f.height)
	for y := 0; y < f.height; y++ {
		sb.Write(f.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}
