// internal/playback/service_impl.go
package playback

import (
	"sync"
	"time"

	"reel/internal/engine"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	eng engine.Interface

	media         *Media
	position      time.Duration
	duration      time.Duration
	volume        int
	initialVolume int

	subTracks []engine.SubtitleTrack
	subActive int // engine track id, -1 = off

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// New creates a playback service on top of an engine adapter.
// initialVolume is the volume applied to freshly loaded media.
func New(eng engine.Interface, initialVolume int) Service {
	return &serviceImpl{
		eng:           eng,
		volume:        ClampVolume(initialVolume),
		initialVolume: ClampVolume(initialVolume),
		subActive:     -1,
		done:          make(chan struct{}),
	}
}

// Load replaces the loaded media. A rejected file leaves all prior
// playback state untouched and emits exactly one error event.
func (s *serviceImpl) Load(path string) error {
	s.mu.Lock()
	prev := s.stateLocked()

	if err := s.eng.Load(path); err != nil {
		s.mu.Unlock()
		s.broadcast(func(sub *Subscription) {
			sub.sendError(ErrorEvent{Operation: "load", Path: path, Err: err})
		})
		return err
	}

	s.media = &Media{Path: path, Title: engine.TitleFromPath(path)}
	s.position = 0
	s.duration = s.eng.Duration()
	s.media.Duration = s.duration
	s.subTracks = nil
	s.subActive = -1
	_ = s.eng.SetVolume(s.volume)

	media := *s.media
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) {
		sub.sendMedia(MediaChange{Media: &media})
		if prev != StatePlaying {
			sub.sendState(StateChange{Previous: prev, Current: StatePlaying})
		}
	})
	return nil
}

// Clear releases the loaded media and resets playback state, volume
// included, so a subsequent Load behaves like one on a fresh service.
func (s *serviceImpl) Clear() error {
	s.mu.Lock()
	prev := s.stateLocked()
	if err := s.eng.Clear(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.media = nil
	s.position = 0
	s.duration = 0
	s.subTracks = nil
	s.subActive = -1
	volumeChanged := s.volume != s.initialVolume
	s.volume = s.initialVolume
	volume := s.volume
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) {
		sub.sendMedia(MediaChange{Media: nil})
		if prev != StateStopped {
			sub.sendState(StateChange{Previous: prev, Current: StateStopped})
		}
		if volumeChanged {
			sub.sendVolume(volume)
		}
	})
	return nil
}

func (s *serviceImpl) Play() error {
	return s.transition(func() error { return s.eng.Play() })
}

func (s *serviceImpl) Pause() error {
	return s.transition(func() error { return s.eng.Pause() })
}

func (s *serviceImpl) Toggle() error {
	return s.transition(func() error { return s.eng.Toggle() })
}

// transition runs an engine state operation and emits a StateChange if
// the observable state moved.
func (s *serviceImpl) transition(op func() error) error {
	s.mu.Lock()
	prev := s.stateLocked()
	if err := op(); err != nil {
		s.mu.Unlock()
		return err
	}
	cur := s.stateLocked()
	s.mu.Unlock()

	if prev != cur {
		s.broadcast(func(sub *Subscription) {
			sub.sendState(StateChange{Previous: prev, Current: cur})
		})
	}
	return nil
}

// Seek moves by delta relative to the current position.
func (s *serviceImpl) Seek(delta time.Duration) error {
	s.mu.Lock()
	target := s.position + delta
	err := s.seekLocked(target)
	pos := s.position
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.broadcast(func(sub *Subscription) { sub.sendPosition(pos) })
	return nil
}

// SeekTo moves to an absolute position.
func (s *serviceImpl) SeekTo(position time.Duration) error {
	s.mu.Lock()
	err := s.seekLocked(position)
	pos := s.position
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.broadcast(func(sub *Subscription) { sub.sendPosition(pos) })
	return nil
}

// seekLocked clamps the target to [0, duration] and forwards it.
// Out-of-range targets are never an error.
func (s *serviceImpl) seekLocked(target time.Duration) error {
	if s.media == nil {
		return engine.ErrNoMedia
	}
	if target < 0 {
		target = 0
	}
	if s.duration > 0 && target > s.duration {
		target = s.duration
	}
	if err := s.eng.SeekTo(target); err != nil {
		return err
	}
	s.position = target
	return nil
}

// SetVolume sets the volume, clamped to [0, 200].
func (s *serviceImpl) SetVolume(percent int) error {
	s.mu.Lock()
	v := ClampVolume(percent)
	if err := s.eng.SetVolume(v); err != nil {
		s.mu.Unlock()
		return err
	}
	s.volume = v
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) { sub.sendVolume(v) })
	return nil
}

// AdjustVolume changes the volume by delta percentage points.
func (s *serviceImpl) AdjustVolume(delta int) error {
	s.mu.RLock()
	v := s.volume
	s.mu.RUnlock()
	return s.SetVolume(v + delta)
}

// CycleSubtitle advances to the next subtitle track, wrapping through
// the disabled track.
func (s *serviceImpl) CycleSubtitle() error {
	s.mu.Lock()
	if s.media == nil {
		s.mu.Unlock()
		return engine.ErrNoMedia
	}

	if len(s.subTracks) == 0 {
		tracks, err := s.eng.SubtitleTracks()
		if err != nil {
			s.mu.Unlock()
			return err
		}
		s.subTracks = tracks
	}
	if len(s.subTracks) == 0 {
		s.mu.Unlock()
		return nil
	}

	next := s.nextTrackLocked()
	if err := s.eng.SetSubtitleTrack(next.ID); err != nil {
		s.mu.Unlock()
		return err
	}
	s.subActive = next.ID
	name := subtitleName(next)
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) { sub.sendSubtitle(name) })
	return nil
}

func (s *serviceImpl) nextTrackLocked() engine.SubtitleTrack {
	for i, t := range s.subTracks {
		if t.ID == s.subActive {
			return s.subTracks[(i+1)%len(s.subTracks)]
		}
	}
	return s.subTracks[0]
}

func subtitleName(t engine.SubtitleTrack) string {
	if t.ID == -1 {
		return "Off"
	}
	return t.Name
}

func (s *serviceImpl) SetFullscreen(on bool) error {
	return s.eng.SetFullscreen(on)
}

// State returns the current playback state.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *serviceImpl) stateLocked() State {
	switch s.eng.State() {
	case engine.Playing:
		return StatePlaying
	case engine.Paused:
		return StatePaused
	default:
		return StateStopped
	}
}

func (s *serviceImpl) IsPlaying() bool { return s.State() == StatePlaying }
func (s *serviceImpl) IsPaused() bool  { return s.State() == StatePaused }
func (s *serviceImpl) IsStopped() bool { return s.State() == StateStopped }

func (s *serviceImpl) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

func (s *serviceImpl) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.duration
}

func (s *serviceImpl) Volume() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// Media returns the loaded media, or nil if none.
func (s *serviceImpl) Media() *Media {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.media == nil {
		return nil
	}
	m := *s.media
	return &m
}

// SubtitleTrack returns the display name of the active subtitle track.
func (s *serviceImpl) SubtitleTrack() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.subTracks {
		if t.ID == s.subActive {
			return subtitleName(t)
		}
	}
	return "Off"
}

// RefreshPosition polls the engine for position and duration.
// Called from the periodic UI tick while media is active.
func (s *serviceImpl) RefreshPosition() {
	s.mu.Lock()
	if s.media == nil {
		s.mu.Unlock()
		return
	}
	prev := s.stateLocked()
	s.position = s.eng.Position()
	if d := s.eng.Duration(); d > 0 {
		s.duration = d
		s.media.Duration = d
	}
	cur := s.stateLocked()
	s.mu.Unlock()

	// The engine stops on its own at end of media.
	if prev != cur {
		s.broadcast(func(sub *Subscription) {
			sub.sendState(StateChange{Previous: prev, Current: cur})
		})
	}
}

func (s *serviceImpl) Engine() engine.Interface {
	return s.eng
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// broadcast applies send to every live subscription.
func (s *serviceImpl) broadcast(send func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		send(sub)
	}
}

// Close shuts down the service and the engine.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return s.eng.Close()
}
