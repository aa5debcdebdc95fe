package tabular

import "golang.org/x/term"

// TerminalWidth reports the width in columns of the terminal open on fd,
// for use with SetAvailableWidth. ok is false when fd is not a terminal.
//
//	if w, ok := tabular.TerminalWidth(int(os.Stdout.Fd())); ok {
//		_ = t.SetAvailableWidth(w)
//	}
func TerminalWidth(fd int) (width int, ok bool) {
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
