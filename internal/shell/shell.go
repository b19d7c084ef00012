// Package shell integrates the application with the desktop shell:
// creating and removing launcher shortcuts.
package shell

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ErrPermission indicates the shell locations are not writable.
var ErrPermission = errors.New("insufficient permissions for shell integration")

const appName = "reel"

// Manager creates and removes launcher shortcuts. The target
// directories are fields so tests can point them at temp dirs.
type Manager struct {
	// ExecPath is the binary the shortcuts launch.
	ExecPath string
	// AppsDir receives the launcher entry (applications dir or Start Menu).
	AppsDir string
	// DesktopDir receives the desktop shortcut.
	DesktopDir string
}

// NewManager resolves the current executable and the platform's
// shortcut locations.
func NewManager() (*Manager, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	appsDir, desktopDir := shortcutDirs()
	return &Manager{
		ExecPath:   exe,
		AppsDir:    appsDir,
		DesktopDir: desktopDir,
	}, nil
}

// Installed reports whether the launcher entry exists.
func (m *Manager) Installed() bool {
	_, err := os.Stat(filepath.Join(m.AppsDir, shortcutFileName()))
	return err == nil
}

// Create writes the launcher entry and the desktop shortcut.
// Returns ErrPermission when the locations are not writable.
func (m *Manager) Create() error {
	if err := m.createShortcuts(); err != nil {
		if os.IsPermission(err) {
			return ErrPermission
		}
		return err
	}
	return nil
}

// Remove deletes the shortcuts. Missing files are not an error.
func (m *Manager) Remove() error {
	for _, path := range m.shortcutPaths() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if os.IsPermission(err) {
				return ErrPermission
			}
			return err
		}
	}
	return nil
}

func (m *Manager) shortcutPaths() []string {
	return []string{
		filepath.Join(m.AppsDir, shortcutFileName()),
		filepath.Join(m.DesktopDir, shortcutFileName()),
	}
}

// desktopDir returns the user's desktop directory, honoring
// XDG_DESKTOP_DIR via the xdg library.
func desktopDir() string {
	if xdg.UserDirs.Desktop != "" {
		return xdg.UserDirs.Desktop
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Desktop")
}
