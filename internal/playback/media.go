package playback

import "time"

// Media describes the currently loaded media.
// This is a copy of the data, not a reference into the engine adapter.
type Media struct {
	Path     string
	Title    string
	Duration time.Duration
}
