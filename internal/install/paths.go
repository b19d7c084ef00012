package install

import (
	"os"
	"path/filepath"
	"runtime"
)

// wellKnownPaths lists install locations that are not on PATH by
// default. The VLC Windows installer does not modify PATH, and the
// macOS bundle keeps the binary inside the app directory.
func wellKnownPaths() []string {
	switch runtime.GOOS {
	case "windows":
		var paths []string
		for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
			if dir := os.Getenv(env); dir != "" {
				paths = append(paths, filepath.Join(dir, "VideoLAN", "VLC", "vlc.exe"))
			}
		}
		return paths
	case "darwin":
		return []string{"/Applications/VLC.app/Contents/MacOS/VLC"}
	default:
		return []string{
			"/usr/bin/vlc",
			"/usr/local/bin/vlc",
			"/snap/bin/vlc",
		}
	}
}
