// @focus: #terminal { ansi }
package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// Cursor to row 1 column 1, then erase display
	csiHomeClear = []byte("\x1b[1;1H\x1b[2J")
	csiReset     = []byte("\x1b[0m")
	csiRIS       = []byte("\x1bc") // Reset to Initial State (emergency)

	csiCursorShow = []byte("\x1b[?25h")
)

// ClearSequence returns the control sequence emitted before every frame
func ClearSequence() []byte {
	return append([]byte(nil), csiHomeClear...)
}
