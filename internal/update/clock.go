package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/clock"
)

// nextTickCmd waits on the shared ticker when one is wired, otherwise
// falls back to a bubbletea timer.
func (m Model) nextTickCmd() tea.Cmd {
	if m.ticker != nil {
		return waitForTickCmd(m.ticker.C())
	}
	return tea.Tick(m.tickInterval, func(at time.Time) tea.Msg {
		return ClockTickMsg{At: at}
	})
}

func waitForTickCmd(ch <-chan clock.Tick) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		tick, ok := <-ch
		if !ok {
			return nil
		}
		return ClockTickMsg{At: tick.At}
	}
}
