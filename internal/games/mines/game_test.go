package mines

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/mines/board"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

func newTestGame(t *testing.T, d config.Difficulty, custom config.Preset, tickRate int, seed int64) *Game {
	t.Helper()

	cfg := config.DefaultMinesConfig()
	if custom != (config.Preset{}) {
		cfg.Custom = custom
	}
	SetConfig(&cfg)
	t.Cleanup(func() { SetConfig(nil) })

	g := New(d)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate, Seed: seed})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

// press clicks on cell c with the given action.
func press(g *Game, c board.Coordinate, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.SetPointer(g.layout.glyphX(c.Col), g.layout.rowY(c.Row))
	in.Set(a)
	return g.Step(in)
}

func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func findCell(t *testing.T, b *board.Board, pred func(board.Cell) bool) board.Coordinate {
	t.Helper()
	for _, cell := range b.Cells() {
		if pred(cell) {
			return cell.Coordinate()
		}
	}
	t.Fatal("no matching cell on board")
	return board.None
}

func isMine(c board.Cell) bool     { return c.IsMine() }
func isNumbered(c board.Cell) bool { return !c.IsMine() && c.AdjacentMines() > 0 }

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 120)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 6 {
		case 0:
			inputs[i].Set(core.ActionRight)
		case 1:
			inputs[i].Set(core.ActionDown)
		case 2:
			inputs[i].Set(core.ActionReveal)
		case 4:
			inputs[i].Set(core.ActionFlag)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, config.DifficultyIntermediate, config.Preset{}, 60, 12345)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Tick != s2.Tick || s1.State != s2.State || s1.Hidden != s2.Hidden || s1.FlagsRemaining != s2.FlagsRemaining {
		t.Fatalf("Determinism failed: %+v vs %+v", s1, s2)
	}
	for r := range s1.Grid {
		if s1.Grid[r] != s2.Grid[r] {
			t.Errorf("Determinism failed at row %d: %q vs %q", r, s1.Grid[r], s2.Grid[r])
		}
	}
}

func TestFirstRevealNeverHitsMine(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 60, seed)
		mine := findCell(t, g.Board(), isMine)

		result := press(g, mine, core.ActionReveal)

		if g.Board().Lost() {
			t.Fatalf("seed %d: first reveal on a mine lost the game", seed)
		}
		if g.Board().At(mine).Hidden() || g.Board().At(mine).IsMine() {
			t.Errorf("seed %d: first cell should be revealed and safe", seed)
		}
		if g.Board().MineCount() != 10 {
			t.Errorf("seed %d: mine count = %d, expected 10", seed, g.Board().MineCount())
		}
		if !g.Board().FirstClickConsumed() {
			t.Errorf("seed %d: first click should be consumed", seed)
		}
		if result.State.Score == 0 {
			t.Errorf("seed %d: score should count revealed cells", seed)
		}
	}
}

func TestRevealMineLoses(t *testing.T) {
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 60, 7)
	b := g.Board()

	press(g, findCell(t, b, isNumbered), core.ActionReveal)
	mine := findCell(t, b, isMine)
	result := press(g, mine, core.ActionReveal)

	if !result.State.GameOver || result.State.Won {
		t.Fatalf("expected a loss, got %+v", result.State)
	}
	if b.GameOverCause() != mine {
		t.Errorf("cause = %v, expected %v", b.GameOverCause(), mine)
	}
	if b.HiddenCount() != 0 {
		t.Errorf("all cells should be revealed after a loss, %d hidden", b.HiddenCount())
	}
	if s := g.Snapshot(); s.State != StateLost {
		t.Errorf("snapshot state = %s, expected %s", s.State, StateLost)
	}
}

func TestWinByRevealingAllSafeCells(t *testing.T) {
	g := newTestGame(t, config.DifficultyCustom, config.Preset{Rows: 2, Cols: 2, Mines: 1}, 60, 3)
	b := g.Board()

	var result core.StepResult
	for _, cell := range b.Cells() {
		if !cell.IsMine() {
			result = press(g, cell.Coordinate(), core.ActionReveal)
		}
	}

	if !result.State.GameOver || !result.State.Won {
		t.Fatalf("expected a win, got %+v", result.State)
	}
	if result.State.Score != 3 {
		t.Errorf("score = %d, expected 3", result.State.Score)
	}
	if b.GameOverCause() != board.None {
		t.Errorf("win cause should be None, got %v", b.GameOverCause())
	}
}

func TestFlagBudgetEnforced(t *testing.T) {
	g := newTestGame(t, config.DifficultyCustom, config.Preset{Rows: 3, Cols: 3, Mines: 1}, 60, 1)
	b := g.Board()

	press(g, board.At(0, 0), core.ActionFlag)
	press(g, board.At(0, 1), core.ActionFlag)

	if !b.At(board.At(0, 0)).Flagged() {
		t.Error("first flag should be placed")
	}
	if b.At(board.At(0, 1)).Flagged() {
		t.Error("second flag should be refused with no flags left")
	}
	if b.FlagsRemaining() != 0 {
		t.Errorf("flags remaining = %d, expected 0", b.FlagsRemaining())
	}

	// Clearing is always allowed.
	press(g, board.At(0, 0), core.ActionFlag)
	if b.At(board.At(0, 0)).Flagged() || b.FlagsRemaining() != 1 {
		t.Errorf("unflag failed: flagged=%v remaining=%d", b.At(board.At(0, 0)).Flagged(), b.FlagsRemaining())
	}
}

func TestFlagIgnoredOnRevealedCell(t *testing.T) {
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 60, 9)
	b := g.Board()

	c := findCell(t, b, isNumbered)
	press(g, c, core.ActionReveal)
	press(g, c, core.ActionFlag)

	if b.At(c).Flagged() {
		t.Error("revealed cell should not take a flag")
	}
	if b.FlagsRemaining() != 10 {
		t.Errorf("flags remaining = %d, expected 10", b.FlagsRemaining())
	}
}

func TestFlaggedCellCanStillBeRevealed(t *testing.T) {
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 60, 9)
	b := g.Board()

	c := findCell(t, b, isNumbered)
	press(g, c, core.ActionFlag)
	press(g, c, core.ActionReveal)

	if b.At(c).Hidden() || b.At(c).Flagged() {
		t.Error("reveal should clear the flag and expose the cell")
	}
	if b.FlagsRemaining() != 10 {
		t.Errorf("flag should be refunded, remaining = %d", b.FlagsRemaining())
	}
}

func TestClockRunsBetweenFirstClickAndGameOver(t *testing.T) {
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 4, 11)
	b := g.Board()

	idle(g, 10)
	if b.Elapsed() != 0 {
		t.Fatalf("clock should not run before the first click, elapsed = %d", b.Elapsed())
	}

	press(g, findCell(t, b, isNumbered), core.ActionReveal)
	idle(g, 7)
	if b.Elapsed() != 2 {
		t.Errorf("elapsed = %d, expected 2 after 8 steps at 4 steps/second", b.Elapsed())
	}

	press(g, findCell(t, b, func(c board.Cell) bool { return c.IsMine() && c.Hidden() }), core.ActionReveal)
	stopped := b.Elapsed()
	idle(g, 20)
	if b.Elapsed() != stopped {
		t.Errorf("clock should stop at game over: %d -> %d", stopped, b.Elapsed())
	}
}

func TestPauseFreezesGame(t *testing.T) {
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 2, 11)
	b := g.Board()

	press(g, findCell(t, b, isNumbered), core.ActionReveal)
	hidden := b.HiddenCount()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if r := g.Step(pause); !r.State.Paused {
		t.Fatal("game should be paused")
	}

	idle(g, 10)
	press(g, findCell(t, b, func(c board.Cell) bool { return c.Hidden() }), core.ActionReveal)
	if b.Elapsed() != 0 || b.HiddenCount() != hidden {
		t.Errorf("paused game changed: elapsed=%d hidden=%d", b.Elapsed(), b.HiddenCount())
	}
	if s := g.Snapshot(); s.State != StatePaused {
		t.Errorf("snapshot state = %s, expected %s", s.State, StatePaused)
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestCursorMovementClamps(t *testing.T) {
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 60, 1)

	if g.Cursor() != board.At(4, 4) {
		t.Fatalf("cursor should start centered, got %v", g.Cursor())
	}

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	up.Set(core.ActionLeft)
	idleFrames := 12
	for i := 0; i < idleFrames; i++ {
		g.Step(up)
	}
	if g.Cursor() != board.At(0, 0) {
		t.Errorf("cursor = %v, expected (0,0)", g.Cursor())
	}

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	down.Set(core.ActionRight)
	for i := 0; i < idleFrames; i++ {
		g.Step(down)
	}
	if g.Cursor() != board.At(8, 8) {
		t.Errorf("cursor = %v, expected (8,8)", g.Cursor())
	}
}

func TestCellAt(t *testing.T) {
	// Beginner on 80x24: box at x=29, grid origin (30, 2).
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 60, 1)

	tests := []struct {
		name   string
		x, y   int
		want   board.Coordinate
		wantOK bool
	}{
		{"first glyph", 31, 2, board.At(0, 0), true},
		{"gap before glyph", 30, 2, board.At(0, 0), true},
		{"second column", 33, 3, board.At(1, 1), true},
		{"last glyph", 47, 10, board.At(8, 8), true},
		{"right edge clamps", 48, 5, board.At(3, 8), true},
		{"bottom edge clamps", 31, 11, board.At(8, 0), true},
		{"left border", 29, 2, board.None, false},
		{"hud row", 31, 1, board.None, false},
		{"past right edge", 49, 2, board.None, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.CellAt(tt.x, tt.y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CellAt(%d, %d) = %v, %v; expected %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClickOffBoardIsIgnored(t *testing.T) {
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 60, 1)

	in := core.NewInputFrame()
	in.SetPointer(0, 0)
	in.Set(core.ActionReveal)
	g.Step(in)

	if g.Board().FirstClickConsumed() || g.Board().HiddenCount() != 81 {
		t.Error("click outside the grid should not reveal")
	}
}

func TestRevealAfterGameOverIgnored(t *testing.T) {
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 60, 5)
	b := g.Board()

	press(g, findCell(t, b, isNumbered), core.ActionReveal)
	mine := findCell(t, b, func(c board.Cell) bool { return c.IsMine() && c.Hidden() })
	press(g, mine, core.ActionReveal)
	before := g.Snapshot()

	press(g, board.At(0, 0), core.ActionReveal)
	press(g, board.At(0, 0), core.ActionFlag)
	after := g.Snapshot()

	if before.Cause != after.Cause || before.FlagsRemaining != after.FlagsRemaining {
		t.Errorf("game over state changed: %+v -> %+v", before, after)
	}
}

func TestConfigErrorState(t *testing.T) {
	bad := config.DefaultMinesConfig()
	bad.Custom = config.Preset{Rows: 2, Cols: 2, Mines: 4}
	SetConfig(&bad)
	t.Cleanup(func() { SetConfig(nil) })

	g := New(config.DifficultyCustom)
	g.Reset(core.DefaultConfig())

	if !errors.Is(g.Err(), board.ErrInvalidMineCount) {
		t.Fatalf("Err() = %v, expected ErrInvalidMineCount", g.Err())
	}
	g.Step(core.NewInputFrame())
	if s := g.Snapshot(); s.State != StateError {
		t.Errorf("snapshot state = %s, expected %s", s.State, StateError)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Configuration error") {
		t.Error("error state should render the configuration error")
	}
}

func TestRenderHUDAndBanners(t *testing.T) {
	g := newTestGame(t, config.DifficultyBeginner, config.Preset{}, 60, 5)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if hud := screen.Row(0); !strings.Contains(hud, "⚑ 010") || !strings.Contains(hud, "00:00:00") {
		t.Errorf("HUD row = %q", hud)
	}
	if c := screen.GetCell(31, 2); c.Rune != HiddenGlyph {
		t.Errorf("hidden cell glyph = %q, expected %q", c.Rune, HiddenGlyph)
	}

	b := g.Board()
	press(g, findCell(t, b, isNumbered), core.ActionReveal)
	mine := findCell(t, b, func(c board.Cell) bool { return c.IsMine() && c.Hidden() })
	press(g, mine, core.ActionReveal)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, LoseMessage) {
		t.Error("loss should render the game over banner")
	}
	x, y := g.layout.glyphX(mine.Col), g.layout.rowY(mine.Row)
	if c := screen.GetCell(x, y); c.Rune != LosingMineGlyph || c.Color != core.ColorBrightRed {
		t.Errorf("losing mine cell = %+v", c)
	}
}

func TestRenderWinBanner(t *testing.T) {
	g := newTestGame(t, config.DifficultyCustom, config.Preset{Rows: 2, Cols: 2, Mines: 1}, 60, 3)
	for _, cell := range g.Board().Cells() {
		if !cell.IsMine() {
			press(g, cell.Coordinate(), core.ActionReveal)
		}
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), WinMessage) {
		t.Error("win should render the win banner")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, config.DifficultyExpert, config.Preset{}, 60, 1)
	screen := core.NewScreen(40, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("expert board should not fit a 40x10 screen")
	}
}

func TestRegistered(t *testing.T) {
	for _, d := range config.Difficulties() {
		if !registry.Exists(string(d)) {
			t.Errorf("difficulty %q is not registered", d)
		}
	}

	g, err := registry.Create("expert")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "expert" || g.Title() != "Minesweeper (Expert)" {
		t.Errorf("got ID %q title %q", g.ID(), g.Title())
	}
}
