//go:build !windows && !darwin

package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// shortcutDirs returns the freedesktop applications dir and the
// user's desktop dir.
func shortcutDirs() (appsDir, desktop string) {
	return filepath.Join(xdg.DataHome, "applications"), desktopDir()
}

func shortcutFileName() string {
	return appName + ".desktop"
}

// desktopEntry builds the freedesktop .desktop file contents.
func (m *Manager) desktopEntry() string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=Reel
Comment=Video player
Exec=%s %%f
Terminal=true
Categories=AudioVideo;Video;Player;
MimeType=video/mp4;video/x-matroska;video/x-msvideo;video/webm;
`, m.ExecPath)
}

func (m *Manager) createShortcuts() error {
	entry := []byte(m.desktopEntry())

	if err := os.MkdirAll(m.AppsDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(m.AppsDir, shortcutFileName()), entry, 0o755); err != nil {
		return err
	}

	if m.DesktopDir == "" {
		return nil
	}
	if _, err := os.Stat(m.DesktopDir); err != nil {
		// No desktop dir on this system, the launcher entry is enough
		return nil
	}
	return os.WriteFile(filepath.Join(m.DesktopDir, shortcutFileName()), entry, 0o755)
}
