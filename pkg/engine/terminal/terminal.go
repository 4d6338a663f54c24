// Package terminal reports properties of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// StdoutIsTerminal reports whether standard output is a terminal
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout)
}
