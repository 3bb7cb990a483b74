// @focus: #sys { term }
// Package terminal presents glyph frames to a terminal.
//
// Two presenters are provided:
//   - ANSIPresenter writes the raw frame stream: clear-and-home, then each
//     row followed by a newline. Works on any io.Writer.
//   - ScreenPresenter draws through a tcell screen and restores the
//     terminal on Fini.
//
// Probe reports whether a file is a terminal and its size.
package terminal
