package install

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

const (
	installerURL = "https://get.videolan.org/vlc/3.0.21/win64/vlc-3.0.21-win64.exe"

	downloadAttempts = 3
	downloadTimeout  = 10 * time.Minute
	installTimeout   = 10 * time.Minute
)

// installWindows downloads the VLC installer and runs it silently.
func installWindows(ctx context.Context, progress ProgressFunc) error {
	if runtime.GOOS != "windows" {
		return errNotWindows
	}

	dir, err := os.MkdirTemp("", "reel-vlc-setup-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	installer := filepath.Join(dir, "vlc-setup.exe")
	if err := downloadWithRetry(ctx, installerURL, installer, downloadAttempts, progress); err != nil {
		return fmt.Errorf("download installer: %w", err)
	}

	if progress != nil {
		progress(Status{Phase: PhaseInstalling})
	}
	return runSilentInstaller(ctx, installer)
}

// runSilentInstaller runs the NSIS installer without any UI.
// /S is silent mode, /NCRC skips the self-check to save time.
func runSilentInstaller(ctx context.Context, installer string) error {
	ctx, cancel := context.WithTimeout(ctx, installTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, installer, "/L=1033", "/S", "/NCRC")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("installer failed: %w (%s)", err, string(out))
	}
	return nil
}

func downloadWithRetry(ctx context.Context, url, out string, attempts int, progress ProgressFunc) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := download(ctx, url, out, progress); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if i < attempts-1 {
			time.Sleep(2 * time.Second)
		}
	}
	return lastErr
}

func download(ctx context.Context, url, out string, progress ProgressFunc) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: downloadTimeout}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("download failed: http %d", res.StatusCode)
	}

	tmp := out + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	src := io.Reader(res.Body)
	if progress != nil {
		src = &progressReader{
			r:        res.Body,
			total:    res.ContentLength,
			progress: progress,
		}
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, out)
}

// progressReader reports received bytes as it is read from.
type progressReader struct {
	r        io.Reader
	received int64
	total    int64
	progress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.received += int64(n)
	p.progress(Status{
		Phase:    PhaseDownloading,
		Received: p.received,
		Total:    max(p.total, 0),
	})
	return n, err
}
