//go:build windows

// Package stderr provides a no-op implementation for Windows. The
// engine runs detached from the console there, so fd 2 stays quiet.
package stderr

import "os"

// Messages receives captured stderr lines. Never written on Windows.
var Messages = make(chan string, 100)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
