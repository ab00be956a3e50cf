//go:build !linux && !darwin
// +build !linux,!darwin

package cmd

func terminalWidth(fd int) int {
	return 0
}
