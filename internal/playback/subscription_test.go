package playback

import (
	"errors"
	"testing"
	"testing/synctest"
	"time"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendState(StateChange{Previous: StateStopped, Current: StatePlaying})
		sub.sendMedia(MediaChange{Media: &Media{Path: "/films/clip.mkv"}})
		sub.sendPosition(30 * time.Second)
		sub.sendVolume(80)
		sub.sendSubtitle("English")
		sub.sendError(ErrorEvent{Operation: "load", Err: errors.New("boom")})

		e := <-sub.StateChanged
		if e.Current != StatePlaying {
			t.Errorf("StateChanged.Current = %v, want Playing", e.Current)
		}

		m := <-sub.MediaChanged
		if m.Media == nil || m.Media.Path != "/films/clip.mkv" {
			t.Errorf("MediaChanged.Media = %v, want /films/clip.mkv", m.Media)
		}

		pos := <-sub.PositionChanged
		if pos.Position != 30*time.Second {
			t.Errorf("PositionChanged.Position = %v, want 30s", pos.Position)
		}

		v := <-sub.VolumeChanged
		if v.Volume != 80 {
			t.Errorf("VolumeChanged.Volume = %d, want 80", v.Volume)
		}

		st := <-sub.SubtitleChanged
		if st.Track != "English" {
			t.Errorf("SubtitleChanged.Track = %q, want English", st.Track)
		}

		ev := <-sub.Error
		if ev.Operation != "load" {
			t.Errorf("Error.Operation = %q, want load", ev.Operation)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	// Fill the buffer and then some; none of these may block.
	for i := 0; i < eventBufferSize*2; i++ {
		sub.sendPosition(time.Duration(i) * time.Second)
	}

	if got := len(sub.positionCh); got != eventBufferSize {
		t.Errorf("len(positionCh) = %d, want %d", got, eventBufferSize)
	}
}
