package render

import (
	"strings"
	"testing"
)

func TestNewFrameFilled(t *testing.T) {
	f := NewFrame(' ')
	w, h := f.Bounds()
	if w != 80 || h != 40 {
		t.Fatalf("Expected 80x40, got %dx%d", w, h)
	}
	if got := f.Count(' '); got != w*h {
		t.Errorf("Expected %d blank cells, got %d", w*h, got)
	}
}

func TestFrameSetAt(t *testing.T) {
	f := NewFrame(' ')

	f.Set(0, 0, '#')
	f.Set(79, 39, '0')
	f.Set(80, 0, 'x')
	f.Set(-1, 5, 'x')
	f.Set(3, 40, 'x')

	if got := f.At(0, 0); got != '#' {
		t.Errorf("Expected '#' at (0,0), got %q", got)
	}
	if got := f.At(79, 39); got != '0' {
		t.Errorf("Expected '0' at (79,39), got %q", got)
	}
	if got := f.Count('x'); got != 0 {
		t.Errorf("Out of bounds writes must be dropped, found %d", got)
	}
	if got := f.At(80, 0); got != 0 {
		t.Errorf("Expected 0 for out of bounds read, got %q", got)
	}
}

func TestFrameRowMajor(t *testing.T) {
	f := NewFrame('.')
	f.Set(5, 2, '+')

	row := f.Row(2)
	if len(row) != Width {
		t.Fatalf("Expected row length %d, got %d", Width, len(row))
	}
	if row[5] != '+' {
		t.Errorf("Expected '+' at row[5], got %q", row[5])
	}
	if f.Row(40) != nil || f.Row(-1) != nil {
		t.Error("Expected nil for out of range rows")
	}
}

func TestFrameReset(t *testing.T) {
	f := NewFrame(' ')
	for y := 0; y < Height; y++ {
		f.Set(y, y, '#')
	}
	f.Reset(' ')
	if got := f.Count(' '); got != Width*Height {
		t.Errorf("Expected full reset, got %d blank cells", got)
	}
}

func TestFrameString(t *testing.T) {
	f := NewFrame(' ')
	f.Set(0, 0, '#')
	s := f.String()

	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != Height {
		t.Fatalf("Expected %d lines, got %d", Height, len(lines))
	}
	for i, l := range lines {
		if len(l) != Width {
			t.Errorf("Line %d: expected width %d, got %d", i, Width, len(l))
		}
	}
	if lines[0][0] != '#' {
		t.Errorf("Expected '#' at start, got %q", lines[0][0])
	}
}
