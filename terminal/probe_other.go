//go:build !unix

package terminal

import (
	"os"

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

	if w, h, err := term.GetSize(fd); err == nil {
		info.Width, info.Height = w, h
	}
	return info
}
