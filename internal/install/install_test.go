package install

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reel/internal/engine"
)

func TestDetect_ConfiguredPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "vlc")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Detect(bin)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if got != bin {
		t.Errorf("Detect() = %q, want %q", got, bin)
	}
}

func TestDetect_ConfiguredPathMissing(t *testing.T) {
	_, err := Detect(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, engine.ErrUnavailable) {
		t.Errorf("Detect() error = %v, want ErrUnavailable", err)
	}
}

func TestEnsure_ConfiguredPathMissingDoesNotInstall(t *testing.T) {
	// A bad explicit path must fail instead of installing elsewhere.
	_, err := Ensure(context.Background(), filepath.Join(t.TempDir(), "absent"), true, nil)
	if !errors.Is(err, engine.ErrUnavailable) {
		t.Errorf("Ensure() error = %v, want ErrUnavailable", err)
	}
}

func TestManualInstructions_NotEmpty(t *testing.T) {
	got := ManualInstructions()
	if !strings.Contains(got, "VLC") {
		t.Errorf("ManualInstructions() = %q, want VLC guidance", got)
	}
}

func TestDownload(t *testing.T) {
	payload := strings.Repeat("x", 4096)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "installer.exe")

	var last Status
	err := download(context.Background(), srv.URL, out, func(s Status) { last = s })
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))

	assert.Equal(t, PhaseDownloading, last.Phase)
	assert.Equal(t, int64(len(payload)), last.Received)

	_, err = os.Stat(out + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file left behind")
}

func TestDownload_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "installer.exe")
	err := download(context.Background(), srv.URL, out, nil)
	require.Error(t, err)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "output file created despite error")
}

func TestDownloadWithRetry_EventualSuccess(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 2 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "installer.exe")
	require.NoError(t, downloadWithRetry(context.Background(), srv.URL, out, 3, nil))
	assert.Equal(t, 2, calls)
}
