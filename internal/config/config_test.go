package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/videos",
			expected: filepath.Join(home, "videos"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/bin/vlc",
			expected: "/usr/bin/vlc",
		},
		{
			name:     "relative path unchanged",
			input:    "videos/films",
			expected: "videos/films",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Volume != 50 {
		t.Errorf("Volume = %d, want 50", cfg.Volume)
	}
	if cfg.VolumeStep != 10 {
		t.Errorf("VolumeStep = %d, want 10", cfg.VolumeStep)
	}
	if cfg.SeekStep() != 2*time.Second {
		t.Errorf("SeekStep() = %v, want 2s", cfg.SeekStep())
	}
	if cfg.SeekInterval() != 100*time.Millisecond {
		t.Errorf("SeekInterval() = %v, want 100ms", cfg.SeekInterval())
	}
	if cfg.RevealTimeout() != 3*time.Second {
		t.Errorf("RevealTimeout() = %v, want 3s", cfg.RevealTimeout())
	}
	if cfg.OSDTimeout() != 2*time.Second {
		t.Errorf("OSDTimeout() = %v, want 2s", cfg.OSDTimeout())
	}
}

func TestApplyDefaults_OutOfRangeVolume(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 50},
		{0, 50},
		{100, 100},
		{200, 200},
		{500, 50},
	}
	for _, tt := range tests {
		cfg := &Config{Volume: tt.in}
		cfg.applyDefaults()
		if cfg.Volume != tt.want {
			t.Errorf("Volume %d -> %d, want %d", tt.in, cfg.Volume, tt.want)
		}
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Volume:          80,
		VolumeStep:      5,
		SeekStepMs:      5000,
		SeekIntervalMs:  200,
		RevealTimeoutMs: 1000,
		OSDTimeoutMs:    4000,
	}
	cfg.applyDefaults()

	if cfg.Volume != 80 || cfg.VolumeStep != 5 {
		t.Errorf("volume settings changed: %d/%d", cfg.Volume, cfg.VolumeStep)
	}
	if cfg.SeekStep() != 5*time.Second || cfg.SeekInterval() != 200*time.Millisecond {
		t.Errorf("seek settings changed: %v/%v", cfg.SeekStep(), cfg.SeekInterval())
	}
	if cfg.RevealTimeout() != time.Second || cfg.OSDTimeout() != 4*time.Second {
		t.Errorf("timeout settings changed: %v/%v", cfg.RevealTimeout(), cfg.OSDTimeout())
	}
}

func TestAutoInstall_DefaultsTrue(t *testing.T) {
	cfg := &Config{}
	if !cfg.AutoInstall() {
		t.Error("AutoInstall() = false with no setting, want true")
	}

	off := false
	cfg.Engine.AutoInstall = &off
	if cfg.AutoInstall() {
		t.Error("AutoInstall() = true with explicit false")
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if filepath.Base(paths[0]) != "config.toml" {
		t.Errorf("paths[0] = %q, want a config.toml", paths[0])
	}
	if paths[1] != "config.toml" {
		t.Errorf("paths[1] = %q, want config.toml", paths[1])
	}
}
