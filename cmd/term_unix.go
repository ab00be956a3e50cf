//go:build linux || darwin
// +build linux darwin

package cmd

import (
	"golang.org/x/sys/unix"
)

// terminalWidth reports the column count of the terminal on fd, or 0 when
// it cannot be determined.
func terminalWidth(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}
