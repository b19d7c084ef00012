// Package install locates the playback engine and installs it when
// missing. Detection checks the configured path, then PATH, then the
// platform's well-known install locations. Automatic installation is
// implemented for Windows, where no package manager can be assumed.
package install

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"reel/internal/engine"
)

// DisableEnv disables automatic downloads when set to "1".
const DisableEnv = "REEL_NO_VLC_DOWNLOAD"

// Phase identifies the current installation step.
type Phase int

const (
	PhaseDownloading Phase = iota
	PhaseInstalling
)

// Status reports installation progress.
type Status struct {
	Phase    Phase
	Received int64
	Total    int64 // 0 when unknown
}

// ProgressFunc receives installation progress updates. May be nil.
type ProgressFunc func(Status)

// Detect returns the path to the engine binary, or engine.ErrUnavailable.
// cfgPath is the explicitly configured binary path and wins when set.
func Detect(cfgPath string) (string, error) {
	if cfgPath != "" {
		if fileExists(cfgPath) {
			return cfgPath, nil
		}
		return "", fmt.Errorf("configured engine path %s: %w", cfgPath, engine.ErrUnavailable)
	}

	if p, err := exec.LookPath(binaryName()); err == nil {
		return p, nil
	}

	for _, p := range wellKnownPaths() {
		if fileExists(p) {
			return p, nil
		}
	}

	return "", engine.ErrUnavailable
}

// Ensure returns the engine binary path, installing it first when
// missing and allowed. progress may be nil.
func Ensure(ctx context.Context, cfgPath string, autoInstall bool, progress ProgressFunc) (string, error) {
	if p, err := Detect(cfgPath); err == nil {
		return p, nil
	} else if cfgPath != "" {
		// An explicitly configured path that does not exist is a
		// configuration error, not a reason to install elsewhere.
		return "", err
	}

	if os.Getenv(DisableEnv) == "1" {
		return "", notInstalledError("automatic download is disabled (" + DisableEnv + "=1)")
	}
	if !autoInstall {
		return "", notInstalledError("automatic install is disabled in the configuration")
	}
	if runtime.GOOS != "windows" {
		return "", notInstalledError("automatic install is only available on Windows")
	}

	if err := installWindows(ctx, progress); err != nil {
		return "", fmt.Errorf("install engine: %w", err)
	}

	return Detect("")
}

// notInstalledError builds an error carrying manual install guidance.
func notInstalledError(reason string) error {
	return fmt.Errorf("%w: VLC not found (%s)\n%s",
		engine.ErrUnavailable, reason, ManualInstructions())
}

// ManualInstructions returns platform-appropriate install guidance.
func ManualInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install VLC from https://www.videolan.org/vlc/ or with: brew install --cask vlc"
	case "windows":
		return "Install VLC from https://www.videolan.org/vlc/"
	default:
		return "Install VLC with your package manager, e.g.: sudo apt install vlc"
	}
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "vlc.exe"
	}
	return "vlc"
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

var errNotWindows = errors.New("automatic install is only implemented on Windows")
