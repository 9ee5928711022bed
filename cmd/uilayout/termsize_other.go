//go:build !unix

package main

import "golang.org/x/term"

// terminalWidth returns the column count of the terminal on fd.
func terminalWidth(fd int) (int, bool) {
	width, _, err := term.GetSize(fd)
	if err != nil || width == 0 {
		return 0, false
	}
	return width, true
}
