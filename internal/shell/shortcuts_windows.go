//go:build windows

package shell

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// shortcutDirs returns the Start Menu programs dir and the desktop dir.
func shortcutDirs() (appsDir, desktop string) {
	appData := os.Getenv("APPDATA")
	return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs"), desktopDir()
}

func shortcutFileName() string {
	return "Reel.lnk"
}

// createShortcuts writes .lnk files through the WScript.Shell COM
// object, which is the only stable way to create them without cgo.
func (m *Manager) createShortcuts() error {
	for _, dir := range []string{m.AppsDir, m.DesktopDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		if err := createLink(filepath.Join(dir, shortcutFileName()), m.ExecPath); err != nil {
			return err
		}
	}
	return nil
}

func createLink(linkPath, target string) error {
	script := fmt.Sprintf(
		`$s=(New-Object -ComObject WScript.Shell).CreateShortcut(%q);$s.TargetPath=%q;$s.Save()`,
		linkPath, target,
	)
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("create shortcut: %w (%s)", err, string(out))
	}
	return nil
}
