package terminal

import (
	"errors"

	"github.com/lixenwraith/raymarch/render"
)

// ErrNotTerminal is returned when a screen is requested on a non-terminal stream
var ErrNotTerminal = errors.New("output is not a terminal")

// Fallback dimensions when the window size cannot be queried
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Info describes an output stream
type Info struct {
	IsTerminal bool
	Width      int
	Height     int
}

// Fits reports whether a full frame is visible without scrolling
func (i Info) Fits() bool {
	return i.Width >= render.Width && i.Height >= render.Height
}
