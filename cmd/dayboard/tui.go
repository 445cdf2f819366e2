package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/dayboard/internal/clock"
	"github.com/sandeepkv93/dayboard/internal/update"
	"github.com/sandeepkv93/dayboard/internal/watcher"
)

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	ticker, err := clock.NewTicker(a.cfg.ClockInterval(), a.cfg.ClockBuffer)
	if err != nil {
		return err
	}
	ticker.Start()
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := update.NewModel(a.planner(), update.RuntimeConfig{
		Context:      ctx,
		Ticker:       ticker,
		TickInterval: a.cfg.ClockInterval(),
		ColumnWidth:  a.cfg.ColumnWidth,
		Logger:       a.logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if a.cfg.Watch {
		go startTUIWatcher(ctx, a, p)
	}

	_, err = p.Run()
	if dropped := ticker.Dropped(); dropped > 0 {
		a.logger.Debug("clock ticks dropped", "count", dropped)
	}
	return err
}

// startTUIWatcher reloads the board when another process saves tasks.
func startTUIWatcher(ctx context.Context, a *app, p *tea.Program) {
	w, err := watcher.New([]string{a.store.WatchPath()}, func() {
		p.Send(update.ReloadMsg{})
	})
	if err != nil {
		a.logger.Warn("live reload disabled", "err", err)
		return
	}
	defer w.Close()
	w.Run(ctx, func(err error) {
		a.logger.Warn("watcher error", "err", err)
	})
}
