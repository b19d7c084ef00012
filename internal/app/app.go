// internal/app/app.go
package app

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/config"
	"reel/internal/engine"
	"reel/internal/install"
	"reel/internal/keymap"
	"reel/internal/mpris"
	"reel/internal/notify"
	"reel/internal/osd"
	"reel/internal/playback"
	"reel/internal/reveal"
	"reel/internal/ui/styles"
)

// startupPhase tracks engine initialization at launch.
type startupPhase int

const (
	phaseDetecting startupPhase = iota
	phaseInstalling
	phaseReady
	phaseFailed
)

// Model is the root application model containing all state.
type Model struct {
	Cfg      *config.Config
	Playback playback.Service
	Resolver *keymap.Resolver
	Reveal   *reveal.Machine
	OSD      *osd.Model
	Notifier notify.Notifier

	// Engine startup
	phase         startupPhase
	Spinner       spinner.Model
	installCh     chan install.Status
	installStatus install.Status
	startupErr    string

	// File picker overlay
	Picker     filepicker.Model
	PickerOpen bool

	// Continuous seek while a seek key is held
	hold        *seekHold
	holdVersion int

	// Path given on the command line, loaded once the engine is up
	startupPath string

	sub      *playback.Subscription
	mpris    *mpris.Adapter
	ErrorMsg string
	Width    int
	Height   int
}

// New creates a new application model from configuration.
// startupPath is an optional video to load once the engine is ready.
func New(cfg *config.Config, notifier notify.Notifier, startupPath string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Playing

	return Model{
		Cfg:         cfg,
		Resolver:    keymap.NewResolver(keymap.All),
		Reveal:      reveal.NewMachine(cfg.RevealTimeout()),
		OSD:         osd.New(cfg.OSDTimeout()),
		Notifier:    notifier,
		Spinner:     sp,
		installCh:   make(chan install.Status, 8),
		startupPath: startupPath,
		phase:       phaseDetecting,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		m.EnsureEngineCmd(),
		m.WatchInstallProgress(),
		WatchStderr(),
	)
}

// Ready reports whether the playback service is up.
func (m Model) Ready() bool {
	return m.phase == phaseReady && m.Playback != nil
}

// newPicker builds the file picker rooted at the configured folder.
func (m Model) newPicker() filepicker.Model {
	fp := filepicker.New()
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = engine.VideoExtensions()
	fp.CurrentDirectory = m.pickerDir()
	fp.AutoHeight = false
	fp.Height = max(m.Height-10, 5)
	return fp
}

func (m Model) pickerDir() string {
	if m.Cfg.DefaultFolder != "" {
		if _, err := os.Stat(m.Cfg.DefaultFolder); err == nil {
			return m.Cfg.DefaultFolder
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "/"
}
