package app

import (
	"testing"
	"time"
)

func TestSeekHold_SinglePressDoesNotEngage(t *testing.T) {
	now := time.Now()
	h := newSeekHold(true, now)

	if h.engaged() {
		t.Error("single press should not engage continuous seeking")
	}
	if h.expired(now.Add(100 * time.Millisecond)) {
		t.Error("hold should survive within the release window")
	}
}

func TestSeekHold_RepeatEngages(t *testing.T) {
	now := time.Now()
	h := newSeekHold(false, now)
	h.press(now.Add(50 * time.Millisecond))

	if !h.engaged() {
		t.Error("second press should engage continuous seeking")
	}
}

func TestSeekHold_ExpiresAfterReleaseWindow(t *testing.T) {
	now := time.Now()
	h := newSeekHold(true, now)

	if h.expired(now.Add(holdReleaseWindow - time.Millisecond)) {
		t.Error("hold expired before the release window elapsed")
	}
	if !h.expired(now.Add(holdReleaseWindow + time.Millisecond)) {
		t.Error("hold should expire once the repeat stream goes quiet")
	}
}

func TestSeekHold_PressExtendsDeadline(t *testing.T) {
	now := time.Now()
	h := newSeekHold(true, now)

	late := now.Add(holdReleaseWindow / 2)
	h.press(late)

	if h.expired(now.Add(holdReleaseWindow + time.Millisecond)) {
		t.Error("press should push out the release deadline")
	}
	if !h.expired(late.Add(holdReleaseWindow + time.Millisecond)) {
		t.Error("extended deadline should still expire eventually")
	}
}
