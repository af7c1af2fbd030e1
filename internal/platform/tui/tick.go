// Package tui runs minesweeper in the terminal with Bubble Tea: the game
// loop, key and mouse mapping, the board picker and the best-times board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// TickMsg advances the game by one step.
type TickMsg time.Time

// tickCmd schedules the next step. The board clock counts whole seconds
// from these steps, so cfg must carry the rate handed to the game.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
