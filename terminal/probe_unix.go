//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Probe inspects f, non-terminals report the fallback size
func Probe(f *os.File) Info {
	fd := int(f.Fd())
	info := Info{
		IsTerminal: term.IsTerminal(fd),
		Width:      fallbackWidth,
		Height:     fallbackHeight,
	}
	if !info.IsTerminal {
		return info
	}

	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return info
	}
	info.Width, info.Height = int(ws.Col), int(ws.Row)
	return info
}
