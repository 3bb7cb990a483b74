// @focus: #sys { term, output }
package terminal

import (
	"bufio"
	"io"

	"github.com/lixenwraith/raymarch/render"
)

// Presenter flushes a finished frame to its output
type Presenter interface {
	Present(f *render.Frame) error
}

// ANSIPresenter writes frames as plain rows after a clear-and-home sequence
type ANSIPresenter struct {
	writer *bufio.Writer
}

// NewANSIPresenter buffers one full frame per write to w
func NewANSIPresenter(w io.Writer) *ANSIPresenter {
	return &ANSIPresenter{
		writer: bufio.NewWriterSize(w, len(csiHomeClear)+render.Width*render.Height+render.Height),
	}
}

// Present emits the clear sequence then every row top to bottom, each ended by '\n'
func (p *ANSIPresenter) Present(f *render.Frame) error {
	w := p.writer
	w.Write(csiHomeClear)

	_, height := f.Bounds()
	for y := 0; y < height; y++ {
		w.Write(f.Row(y))
		w.WriteByte('\n')
	}
	return w.Flush()
}

// EmergencyReset restores a sane terminal after a crash
func EmergencyReset(w io.Writer) {
	w.Write(csiReset)
	w.Write(csiCursorShow)
	w.Write(csiRIS)
}
