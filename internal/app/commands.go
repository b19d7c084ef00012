// internal/app/commands.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/engine"
	"reel/internal/install"
	"reel/internal/playback"
	"reel/internal/stderr"
)

const tickInterval = 500 * time.Millisecond

// TickCmd returns a command that sends TickMsg after the poll interval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SeekHoldTickCmd schedules the next continuous-seek step.
func SeekHoldTickCmd(interval time.Duration, version int) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return SeekHoldTickMsg{Version: version}
	})
}

// OSDExpireCmd schedules the expiry of the current OSD message.
func OSDExpireCmd(ttl time.Duration, version int) tea.Cmd {
	return tea.Tick(ttl, func(_ time.Time) tea.Msg {
		return OSDExpireMsg{Version: version}
	})
}

// EnsureEngineCmd locates the engine binary, installing it if needed.
// Progress is streamed through m.installCh.
func (m Model) EnsureEngineCmd() tea.Cmd {
	cfg := m.Cfg
	ch := m.installCh
	return func() tea.Msg {
		path, err := install.Ensure(
			context.Background(),
			cfg.Engine.Path,
			cfg.AutoInstall(),
			func(s install.Status) {
				select {
				case ch <- s:
				default:
				}
			},
		)
		close(ch)
		if err != nil {
			return EngineFailedMsg{Err: err}
		}
		return EngineReadyMsg{Path: path}
	}
}

// WatchInstallProgress returns a command that waits for install progress.
func (m Model) WatchInstallProgress() tea.Cmd {
	ch := m.installCh
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return InstallProgressMsg(s)
	}
}

// StartServiceCmd launches the engine process and wraps it in the
// playback service.
func (m Model) StartServiceCmd(binPath string) tea.Cmd {
	cfg := m.Cfg
	return func() tea.Msg {
		eng, err := engine.New(engine.Options{
			BinPath:   binPath,
			ExtraArgs: cfg.Engine.ExtraArgs,
		})
		if err != nil {
			return EngineFailedMsg{Err: err}
		}
		return ServiceReadyMsg{Service: playback.New(eng, cfg.Volume)}
	}
}

// LoadMediaCmd loads a video into the playback service.
func (m Model) LoadMediaCmd(path string) tea.Cmd {
	svc := m.Playback
	return func() tea.Msg {
		return MediaLoadResultMsg{Path: path, Err: svc.Load(path)}
	}
}

// WatchServiceEvents returns a command that waits for playback service events.
// It listens on all subscription channels and converts events to tea.Msg.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.MediaChanged:
			return ServiceMediaChangedMsg{Media: e.Media}
		case e := <-sub.VolumeChanged:
			return ServiceVolumeChangedMsg{Volume: e.Volume}
		case e := <-sub.SubtitleChanged:
			return ServiceSubtitleChangedMsg{Track: e.Track}
		case <-sub.PositionChanged:
			return ServicePositionChangedMsg{}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, Path: e.Path, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchStderr returns a command that waits for captured engine stderr output.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return StderrMsg(line)
	}
}
