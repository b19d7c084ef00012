// internal/engine/mock.go
package engine

import "time"

// Mock is a test double for the engine adapter.
type Mock struct {
	state    State
	media    *MediaInfo
	position time.Duration
	duration time.Duration
	volume   int
	tracks   []SubtitleTrack
	subtitle int
	fullscrn bool

	loadErr   error
	loadCalls []string
	seekCalls []time.Duration
	closed    bool
}

// NewMock creates a mock engine for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped, subtitle: -1, volume: 100}
}

func (m *Mock) Load(path string) error {
	m.loadCalls = append(m.loadCalls, path)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.media = &MediaInfo{Path: path, Title: TitleFromPath(path)}
	m.state = Playing
	m.position = 0
	m.subtitle = -1
	return nil
}

func (m *Mock) Play() error {
	if m.media == nil {
		return ErrNoMedia
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() error {
	if m.state == Playing {
		m.state = Paused
	}
	return nil
}

func (m *Mock) Toggle() error {
	switch m.state {
	case Playing:
		return m.Pause()
	case Paused:
		return m.Play()
	default:
		return nil
	}
}

func (m *Mock) Clear() error {
	m.media = nil
	m.state = Stopped
	m.position = 0
	m.duration = 0
	m.tracks = nil
	m.subtitle = -1
	return nil
}

func (m *Mock) State() State { return m.state }

func (m *Mock) MediaInfo() *MediaInfo {
	if m.media == nil {
		return nil
	}
	info := *m.media
	return &info
}

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SeekTo(pos time.Duration) error {
	if m.media == nil {
		return ErrNoMedia
	}
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
	return nil
}

func (m *Mock) SetVolume(percent int) error {
	m.volume = percent
	return nil
}

func (m *Mock) SubtitleTracks() ([]SubtitleTrack, error) {
	if m.media == nil {
		return nil, ErrNoMedia
	}
	return m.tracks, nil
}

func (m *Mock) SetSubtitleTrack(id int) error {
	if m.media == nil {
		return ErrNoMedia
	}
	m.subtitle = id
	return nil
}

func (m *Mock) SetFullscreen(on bool) error {
	m.fullscrn = on
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetLoadError(err error)            { m.loadErr = err }
func (m *Mock) SetDuration(d time.Duration)       { m.duration = d }
func (m *Mock) SetPosition(d time.Duration)       { m.position = d }
func (m *Mock) SetTracks(tracks []SubtitleTrack)  { m.tracks = tracks }
func (m *Mock) LoadCalls() []string               { return m.loadCalls }
func (m *Mock) SeekCalls() []time.Duration        { return m.seekCalls }
func (m *Mock) Volume() int                       { return m.volume }
func (m *Mock) SubtitleTrack() int                { return m.subtitle }
func (m *Mock) Fullscreen() bool                  { return m.fullscrn }
func (m *Mock) Closed() bool                      { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
