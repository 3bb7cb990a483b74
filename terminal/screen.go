// @focus: #sys { term, tcell }
package terminal

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/raymarch/render"
)

// ScreenPresenter draws frames through a tcell screen
type ScreenPresenter struct {
	screen tcell.Screen
	style  tcell.Style
	once   sync.Once
}

// NewScreenPresenter wraps an initialized screen
func NewScreenPresenter(screen tcell.Screen) *ScreenPresenter {
	screen.HideCursor()
	return &ScreenPresenter{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// OpenScreen initializes a tcell screen on the controlling terminal
// out must be a terminal, a redirected stream cannot host a screen
func OpenScreen(out *os.File) (*ScreenPresenter, error) {
	if !Probe(out).IsTerminal {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewScreenPresenter(screen), nil
}

// Present clears the screen, sets every cell, and shows the result
func (p *ScreenPresenter) Present(f *render.Frame) error {
	p.screen.Clear()

	width, height := f.Bounds()
	for y := 0; y < height; y++ {
		row := f.Row(y)
		for x := 0; x < width; x++ {
			p.screen.SetContent(x, y, rune(row[x]), nil, p.style)
		}
	}
	p.screen.Show()
	return nil
}

// Watch polls screen events until quit, then calls cancel
// Ctrl-C, Esc, and 'q' quit; raw mode swallows SIGINT so keys are the only way out
func (p *ScreenPresenter) Watch(cancel context.CancelFunc) {
	screen := p.screen
	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				// Screen finalized
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
			}
		}
	}()
}

// Fini restores the terminal. Safe to call multiple times
func (p *ScreenPresenter) Fini() {
	p.once.Do(p.screen.Fini)
}
