// Package osd manages the transient on-screen display.
//
// Only one OSD message is visible at a time. Showing a new message
// supersedes the current one and restarts its lifetime, so the expiry
// timer of a superseded message must not clear its replacement. Each
// Show bumps a version counter and expiry only applies when the
// version still matches.
package osd

import "time"

// Kind classifies OSD messages for rendering.
type Kind int

const (
	KindNone Kind = iota
	KindPlay
	KindPause
	KindSeekForward
	KindSeekBack
	KindVolume
	KindSubtitle
	KindNotice
	KindError
)

// DefaultTTL is how long a message stays visible.
const DefaultTTL = 2 * time.Second

// Model holds the current OSD message.
type Model struct {
	TTL time.Duration

	version int
	kind    Kind
	text    string
}

// New creates an empty OSD model.
func New(ttl time.Duration) *Model {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Model{TTL: ttl}
}

// Show replaces the current message and returns the version to pass to
// Expire when the message's lifetime ends.
func (m *Model) Show(kind Kind, text string) int {
	m.version++
	m.kind = kind
	m.text = text
	return m.version
}

// Expire clears the message if version still identifies it. A stale
// version is ignored so a superseded message cannot clear its
// replacement. Reports whether the display changed.
func (m *Model) Expire(version int) bool {
	if version != m.version || m.kind == KindNone {
		return false
	}
	m.kind = KindNone
	m.text = ""
	return true
}

// Clear removes the message unconditionally.
func (m *Model) Clear() {
	m.version++
	m.kind = KindNone
	m.text = ""
}

// Active reports whether a message is currently visible.
func (m *Model) Active() bool { return m.kind != KindNone }

// Kind returns the kind of the visible message.
func (m *Model) Kind() Kind { return m.kind }

// Text returns the text of the visible message.
func (m *Model) Text() string { return m.text }

// Version returns the current message version.
func (m *Model) Version() int { return m.version }
