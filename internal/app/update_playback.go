package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/errmsg"
	"reel/internal/notify"
	"reel/internal/osd"
	"reel/internal/playback"
)

// handlePlaybackMsg processes playback-related messages.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.handleTick(time.Time(msg))

	case SeekHoldTickMsg:
		return m.handleSeekHoldTick(msg)

	case OSDExpireMsg:
		m.OSD.Expire(msg.Version)
		return m, nil

	case MediaLoadResultMsg:
		// Failures already arrived as a ServiceErrorMsg; nothing to
		// chain on success either, playback starts on its own.
		return m, nil

	case ServiceStateChangedMsg:
		return m.handleStateChanged(msg)

	case ServiceMediaChangedMsg:
		// Media changed under the hold; stop any continuous seek.
		m.hold = nil
		m.holdVersion++
		return m, m.WatchServiceEvents()

	case ServiceVolumeChangedMsg:
		cmd := m.showOSD(osd.KindVolume, fmt.Sprintf("Volume %d%%", msg.Volume))
		return m, tea.Batch(cmd, m.WatchServiceEvents())

	case ServiceSubtitleChangedMsg:
		cmd := m.showOSD(osd.KindSubtitle, "Subtitles: "+msg.Track)
		return m, tea.Batch(cmd, m.WatchServiceEvents())

	case ServicePositionChangedMsg:
		return m, m.WatchServiceEvents()

	case ServiceErrorMsg:
		return m.handleServiceError(msg)

	case ServiceClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.Ready() {
		m.Playback.RefreshPosition()
	}
	m.Reveal.Tick(now)
	return m, TickCmd()
}

// handleSeekHoldTick performs one continuous-seek step while a seek key
// is held. Stale versions belong to an abandoned hold and are dropped.
func (m Model) handleSeekHoldTick(msg SeekHoldTickMsg) (tea.Model, tea.Cmd) {
	if m.hold == nil || msg.Version != m.holdVersion {
		return m, nil
	}
	now := time.Now()
	if m.hold.expired(now) {
		m.hold = nil
		return m, nil
	}
	if m.hold.engaged() && m.Ready() {
		step := m.Cfg.SeekStep()
		if !m.hold.forward {
			step = -step
		}
		_ = m.Playback.Seek(step)
	}
	return m, SeekHoldTickCmd(m.Cfg.SeekInterval(), m.holdVersion)
}

func (m Model) handleStateChanged(msg ServiceStateChangedMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Current {
	case playback.StatePlaying:
		cmd = m.showOSD(osd.KindPlay, "Playing")
	case playback.StatePaused:
		cmd = m.showOSD(osd.KindPause, "Paused")
	case playback.StateStopped:
		if msg.Previous.IsActive() {
			cmd = m.showOSD(osd.KindNotice, "Stopped")
		}
	}
	return m, tea.Batch(cmd, m.WatchServiceEvents())
}

func (m Model) handleServiceError(msg ServiceErrorMsg) (tea.Model, tea.Cmd) {
	text := errmsg.Format(opForService(msg.Operation), msg.Err)
	m.ErrorMsg = text
	cmd := m.showOSD(osd.KindError, text)
	if m.Notifier != nil {
		_, _ = m.Notifier.Notify(notify.Notification{
			Title:   "Reel",
			Body:    text,
			Urgency: notify.UrgencyCritical,
		})
	}
	return m, tea.Batch(cmd, m.WatchServiceEvents())
}

// opForService maps a service error operation to its message prefix.
func opForService(operation string) errmsg.Op {
	switch operation {
	case "load":
		return errmsg.OpLoadMedia
	case "clear":
		return errmsg.OpClearMedia
	case "play", "pause", "toggle":
		return errmsg.OpPlayPause
	case "seek":
		return errmsg.OpSeek
	case "volume":
		return errmsg.OpVolume
	case "subtitle":
		return errmsg.OpSubtitle
	default:
		return errmsg.Op(operation)
	}
}

// showOSD displays an on-screen message and schedules its expiry.
func (m Model) showOSD(kind osd.Kind, text string) tea.Cmd {
	version := m.OSD.Show(kind, text)
	return OSDExpireCmd(m.Cfg.OSDTimeout(), version)
}
