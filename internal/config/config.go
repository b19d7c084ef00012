package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "reel"

type Config struct {
	Volume     int `koanf:"volume"`      // initial volume percent (0-200)
	VolumeStep int `koanf:"volume_step"` // percent per up/down press

	SeekStepMs     int `koanf:"seek_step_ms"`     // seek distance per step while holding
	SeekIntervalMs int `koanf:"seek_interval_ms"` // time between seek steps while holding

	RevealTimeoutMs int `koanf:"reveal_timeout_ms"` // fullscreen chrome inactivity delay
	OSDTimeoutMs    int `koanf:"osd_timeout_ms"`    // on-screen display lifetime

	DefaultFolder string `koanf:"default_folder"` // starting folder for the file picker
	Icons         string `koanf:"icons"`          // "nerd", "unicode", or "none"

	// Engine settings
	Engine EngineConfig `koanf:"engine"`
}

// EngineConfig holds playback-engine configuration.
type EngineConfig struct {
	Path        string   `koanf:"path"`         // explicit engine binary path
	ExtraArgs   []string `koanf:"extra_args"`   // appended to the engine command line
	AutoInstall *bool    `koanf:"auto_install"` // download the engine when missing (default: true)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}
	if cfg.Engine.Path != "" {
		cfg.Engine.Path = expandPath(cfg.Engine.Path)
	}

	return cfg, nil
}

// applyDefaults fills missing or out-of-range values.
func (c *Config) applyDefaults() {
	if c.Volume <= 0 || c.Volume > 200 {
		c.Volume = 50
	}
	if c.VolumeStep <= 0 || c.VolumeStep > 100 {
		c.VolumeStep = 10
	}
	if c.SeekStepMs <= 0 {
		c.SeekStepMs = 2000
	}
	if c.SeekIntervalMs <= 0 {
		c.SeekIntervalMs = 100
	}
	if c.RevealTimeoutMs <= 0 {
		c.RevealTimeoutMs = 3000
	}
	if c.OSDTimeoutMs <= 0 {
		c.OSDTimeoutMs = 2000
	}
}

// SeekStep returns the per-step seek distance while a seek key is held.
func (c *Config) SeekStep() time.Duration {
	return time.Duration(c.SeekStepMs) * time.Millisecond
}

// SeekInterval returns the delay between seek steps while a key is held.
func (c *Config) SeekInterval() time.Duration {
	return time.Duration(c.SeekIntervalMs) * time.Millisecond
}

// RevealTimeout returns the fullscreen chrome inactivity delay.
func (c *Config) RevealTimeout() time.Duration {
	return time.Duration(c.RevealTimeoutMs) * time.Millisecond
}

// OSDTimeout returns the on-screen display lifetime.
func (c *Config) OSDTimeout() time.Duration {
	return time.Duration(c.OSDTimeoutMs) * time.Millisecond
}

// AutoInstall reports whether the engine should be installed when
// missing. Defaults to true when unset.
func (c *Config) AutoInstall() bool {
	if c.Engine.AutoInstall == nil {
		return true
	}
	return *c.Engine.AutoInstall
}

func getConfigPaths() []string {
	paths := []string{
		// 1. XDG config dir (~/.config/reel/config.toml)
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
