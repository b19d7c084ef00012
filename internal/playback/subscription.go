package playback

import "time"

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged    <-chan StateChange
	MediaChanged    <-chan MediaChange
	PositionChanged <-chan PositionChange
	VolumeChanged   <-chan VolumeChange
	SubtitleChanged <-chan SubtitleChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	// Internal write channels
	stateCh    chan StateChange
	mediaCh    chan MediaChange
	positionCh chan PositionChange
	volumeCh   chan VolumeChange
	subtitleCh chan SubtitleChange
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		mediaCh:    make(chan MediaChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		volumeCh:   make(chan VolumeChange, eventBufferSize),
		subtitleCh: make(chan SubtitleChange, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.MediaChanged = s.mediaCh
	s.PositionChanged = s.positionCh
	s.VolumeChanged = s.volumeCh
	s.SubtitleChanged = s.subtitleCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// All sends are non-blocking: a full buffer drops the event rather than
// stalling the UI loop.

func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}

func (s *Subscription) sendMedia(e MediaChange) {
	select {
	case s.mediaCh <- e:
	default:
	}
}

func (s *Subscription) sendPosition(pos time.Duration) {
	select {
	case s.positionCh <- PositionChange{Position: pos}:
	default:
	}
}

func (s *Subscription) sendVolume(volume int) {
	select {
	case s.volumeCh <- VolumeChange{Volume: volume}:
	default:
	}
}

func (s *Subscription) sendSubtitle(track string) {
	select {
	case s.subtitleCh <- SubtitleChange{Track: track}:
	default:
	}
}

func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
