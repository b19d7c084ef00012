package app

import "time"

// holdReleaseWindow is how long a hold survives without another key
// repeat. Terminals deliver no key-up events, so release is inferred
// from the repeat stream going quiet.
const holdReleaseWindow = 600 * time.Millisecond

// seekHold tracks a seek key being held down. The first press performs
// one immediate seek step; continuous seeking only engages once a
// second press arrives, which proves the key is actually held rather
// than tapped.
type seekHold struct {
	forward  bool
	presses  int
	deadline time.Time
}

func newSeekHold(forward bool, now time.Time) *seekHold {
	return &seekHold{
		forward:  forward,
		presses:  1,
		deadline: now.Add(holdReleaseWindow),
	}
}

// press records another key repeat in the same direction and pushes
// out the release deadline.
func (h *seekHold) press(now time.Time) {
	h.presses++
	h.deadline = now.Add(holdReleaseWindow)
}

// engaged reports whether continuous seeking should run.
func (h *seekHold) engaged() bool {
	return h.presses >= 2
}

// expired reports whether the key has been released.
func (h *seekHold) expired(now time.Time) bool {
	return now.After(h.deadline)
}
