// Package engine wraps the external VLC media engine behind a narrow
// adapter interface. All engine-specific failures are translated to the
// sentinel errors below at this boundary; nothing above this package ever
// sees a raw RC response.
package engine

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Sentinel errors for the engine boundary.
var (
	// ErrUnavailable means the VLC binary was not found or the engine
	// process could not be started.
	ErrUnavailable = errors.New("media engine unavailable")

	// ErrUnsupportedFormat means the engine rejected the file.
	ErrUnsupportedFormat = errors.New("unsupported media format")

	// ErrNoMedia means an operation requires loaded media.
	ErrNoMedia = errors.New("no media loaded")
)

// MediaInfo describes the currently loaded media.
type MediaInfo struct {
	Path  string
	Title string
}

// SubtitleTrack is one subtitle track reported by the engine.
// ID -1 is the engine's "disable" track.
type SubtitleTrack struct {
	ID   int
	Name string
}

// Interface defines the engine contract for dependency injection and testing.
type Interface interface {
	Load(path string) error
	Play() error
	Pause() error
	Toggle() error
	Clear() error
	State() State
	MediaInfo() *MediaInfo
	Position() time.Duration
	Duration() time.Duration
	SeekTo(pos time.Duration) error
	SetVolume(percent int) error
	SubtitleTracks() ([]SubtitleTrack, error)
	SetSubtitleTrack(id int) error
	SetFullscreen(on bool) error
	Close() error
}

// Verify VLC implements Interface at compile time.
var _ Interface = (*VLC)(nil)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
	".ts":   true,
	".mpg":  true,
	".mpeg": true,
}

// IsVideoFile reports whether the path has a playable video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// VideoExtensions lists the playable extensions, for file pickers.
func VideoExtensions() []string {
	exts := make([]string, 0, len(videoExtensions))
	for ext := range videoExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// TitleFromPath derives a display title from a media path.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
