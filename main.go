package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/app"
	"reel/internal/config"
	"reel/internal/errmsg"
	"reel/internal/icons"
	"reel/internal/notify"
	"reel/internal/stderr"
)

func main() {
	flag.Parse()

	// The engine process shares our stderr; capture it so its chatter
	// does not corrupt the terminal UI.
	if err := stderr.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
	defer stderr.Stop()

	cfg, err := config.Load()
	if err != nil {
		stderr.Stop()
		fmt.Fprintf(os.Stderr, "%s\n", errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
	icons.Init(cfg.Icons)

	notifier, err := notify.New()
	if err != nil {
		// Notifications are optional; run without them.
		notifier = nil
	}

	m := app.New(cfg, notifier, flag.Arg(0))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		stderr.Stop()
		fmt.Fprintf(os.Stderr, "%s\n", errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}
