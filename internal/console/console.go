// Package console wraps the host's console code page state.
//
// Only Windows has a per-console code page. On every other platform the
// setters are no-ops and the output code page always reads back as UTF-8.
package console

import (
	"os"

	"golang.org/x/term"
)

// CodePageUTF8 is the code page identifier for UTF-8.
const CodePageUTF8 uint32 = 65001

// Console is the code page state of the console attached to the process
type Console interface {
	SetOutputCodePage(cp uint32) error
	SetInputCodePage(cp uint32) error
	// OutputCodePage has no error path; a failed query reports whatever
	// the platform returned.
	OutputCodePage() uint32
}

// System returns the console of the current process
func System() Console {
	return systemConsole{}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
