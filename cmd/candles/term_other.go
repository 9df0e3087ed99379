//go:build !unix

package main

func terminalSize() (cols, rows int) {
	return 80, 24
}
