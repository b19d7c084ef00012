//go:build darwin

package shell

import (
	"fmt"
	"os"
	"path/filepath"
)

// shortcutDirs returns the desktop dir twice: macOS has no launcher
// entry equivalent we can write without an app bundle, so both
// shortcuts land on the desktop as a command file.
func shortcutDirs() (appsDir, desktop string) {
	d := desktopDir()
	return d, d
}

func shortcutFileName() string {
	return "Reel.command"
}

func (m *Manager) createShortcuts() error {
	script := fmt.Sprintf("#!/bin/sh\nexec %q \"$@\"\n", m.ExecPath)
	if err := os.MkdirAll(m.AppsDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(m.AppsDir, shortcutFileName()), []byte(script), 0o755)
}
