package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/errmsg"
	"reel/internal/install"
	"reel/internal/mpris"
	"reel/internal/notify"
)

// handleLoadingMsg processes engine startup messages.
func (m Model) handleLoadingMsg(msg LoadingMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case InstallProgressMsg:
		m.phase = phaseInstalling
		m.installStatus = install.Status(msg)
		return m, m.WatchInstallProgress()

	case EngineReadyMsg:
		return m, m.StartServiceCmd(msg.Path)

	case EngineFailedMsg:
		m.phase = phaseFailed
		m.startupErr = errmsg.Format(errmsg.OpEngineStart, msg.Err)
		if m.Notifier != nil {
			_, _ = m.Notifier.Notify(notify.Notification{
				Title:   "Reel",
				Body:    m.startupErr,
				Urgency: notify.UrgencyCritical,
			})
		}
		return m, nil

	case ServiceReadyMsg:
		m.phase = phaseReady
		m.Playback = msg.Service
		m.sub = m.Playback.Subscribe()
		if adapter, err := mpris.New(m.Playback); err == nil {
			m.mpris = adapter
		}

		cmds := []tea.Cmd{TickCmd(), m.WatchServiceEvents()}
		if m.startupPath != "" {
			path := m.startupPath
			m.startupPath = ""
			cmds = append(cmds, m.LoadMediaCmd(path))
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}
