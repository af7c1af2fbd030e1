package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	_ "github.com/vovakirdan/tui-mines/internal/games/mines"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMenuListsPresetsInOrder(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DefaultMinesConfig())

	want := []string{"beginner", "intermediate", "expert", "custom"}
	if len(m.items) != len(want) {
		t.Fatalf("menu has %d items, expected %d", len(m.items), len(want))
	}
	for i, id := range want {
		if m.items[i].GameID != id {
			t.Errorf("item %d = %q, expected %q", i, m.items[i].GameID, id)
		}
	}
	if m.items[2].Detail != "16x30, 99 mines" {
		t.Errorf("expert detail = %q", m.items[2].Detail)
	}
}

func TestMenuStartsOnDefault(t *testing.T) {
	mcfg := config.DefaultMinesConfig()
	mcfg.Default = config.DifficultyExpert

	m := NewMenuModel(nil, core.DefaultConfig(), mcfg)
	if m.items[m.cursor].GameID != "expert" {
		t.Errorf("cursor on %q, expected expert", m.items[m.cursor].GameID)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DefaultMinesConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	sel := next.(MenuModel).Selected()
	if cmd == nil || sel == nil || sel.GameID != "intermediate" {
		t.Fatalf("expected intermediate to be selected, got %+v", sel)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DefaultMinesConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuShowsBestTime(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: "beginner", Won: true, Seconds: 83}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig(), config.DefaultMinesConfig())
	if m.items[0].Best != "00:01:23" {
		t.Errorf("beginner best = %q, expected 00:01:23", m.items[0].Best)
	}
	if !strings.Contains(m.View(), "best 00:01:23") {
		t.Error("view should show the best time")
	}
}

func TestScoreboardBestTimes(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Result{
		{GameID: "beginner", Won: true, Seconds: 70},
		{GameID: "beginner", Won: true, Seconds: 50},
		{GameID: "beginner", Won: false, Seconds: 4},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30, config.DefaultMinesConfig())

	if len(m.scores) != 2 || m.scores[0].Seconds != 50 {
		t.Fatalf("scores = %+v, expected two wins fastest first", m.scores)
	}
	if line := m.statsLine(); !strings.Contains(line, "Played 3, won 2") {
		t.Errorf("stats line = %q", line)
	}

	// Switching preset reloads
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb := next.(ScoreboardModel)
	if sb.boards[sb.current].ID != "intermediate" || len(sb.scores) != 0 {
		t.Errorf("expected empty intermediate board, got %s with %d scores", sb.boards[sb.current].ID, len(sb.scores))
	}
	if sb.statsLine() != "No games played" {
		t.Errorf("stats line = %q", sb.statsLine())
	}

	// And wraps backwards
	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sb = next.(ScoreboardModel)
	if sb.boards[sb.current].ID != "custom" {
		t.Errorf("expected custom after wrapping, got %s", sb.boards[sb.current].ID)
	}
	if !strings.Contains(sb.View(), "BEST TIMES") {
		t.Error("view should show the title")
	}
}
