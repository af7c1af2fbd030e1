// Package mines implements minesweeper on top of the board package.
// The game owns the cursor, the step-driven clock and the first-click
// rule; the board owns everything about cells.
package mines

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/mines/board"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// loaded overrides file loading when set.
var loaded *config.MinesConfig

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetConfig makes every new game use cfg instead of reading files.
// Passing nil restores file loading.
func SetConfig(cfg *config.MinesConfig) {
	loaded = cfg
}

// Game implements minesweeper for one difficulty.
type Game struct {
	difficulty config.Difficulty
	preset     config.Preset
	board      *board.Board
	err        error // configuration error, shown instead of a board

	cursor   board.Coordinate
	paused   bool
	tick     uint64
	tickRate int // steps per clock second
	subTicks int // steps since the last clock second

	layout layout
}

// New creates a game for the given difficulty.
func New(d config.Difficulty) *Game {
	return &Game{difficulty: d}
}

func init() {
	for _, d := range config.Difficulties() {
		registry.Register(string(d), func() registry.Game {
			return New(d)
		})
	}
}

// ID returns the difficulty name, which doubles as the score key.
func (g *Game) ID() string {
	return string(g.difficulty)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	title := string(g.difficulty)
	if g.preset.Title != "" {
		title = g.preset.Title
	} else if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	return "Minesweeper (" + title + ")"
}

// Reset builds a fresh board. A bad configuration leaves the game in an
// error state that Render reports.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.err = nil
	g.board = nil
	g.cursor = board.At(0, 0)
	g.paused = false
	g.tick = 0
	g.subTicks = 0

	mcfg, err := g.loadConfig()
	if err != nil {
		g.err = err
		return
	}

	preset, err := mcfg.Preset(g.difficulty)
	if err != nil {
		g.err = err
		return
	}
	g.preset = preset

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = mcfg.TickRate
	}

	b, err := board.New(preset.Rows, preset.Cols, preset.Mines, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		g.err = err
		return
	}
	g.board = b
	g.cursor = board.At(preset.Rows/2, preset.Cols/2)
	g.layout = computeLayout(cfg.ScreenW, cfg.ScreenH, preset.Rows, preset.Cols)
}

func (g *Game) loadConfig() (config.MinesConfig, error) {
	if loaded != nil {
		return *loaded, nil
	}
	return config.LoadMines(configPath)
}

// Err returns the configuration error, if any.
func (g *Game) Err() error {
	return g.err
}

// Board exposes the underlying board, nil in the error state.
func (g *Game) Board() *board.Board {
	return g.board
}

// Cursor returns the selected cell.
func (g *Game) Cursor() board.Coordinate {
	return g.cursor
}

// Step applies one frame of input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.board == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.board.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// A press off the grid moves nothing and reveals nothing.
	ok := true
	if in.Pointer.Valid {
		var c board.Coordinate
		if c, ok = g.CellAt(in.Pointer.X, in.Pointer.Y); ok {
			g.cursor = c
		}
	} else {
		g.moveCursor(in)
	}
	target := g.cursor

	if ok && in.Has(core.ActionReveal) {
		g.reveal(target)
	}
	if ok && in.Has(core.ActionFlag) {
		g.flag(target)
	}

	g.board.CheckWin()
	g.advanceClock()

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	g.cursor = board.At(
		core.Clamp(row, 0, g.board.Rows()-1),
		core.Clamp(col, 0, g.board.Cols()-1),
	)
}

// reveal applies the first-click rule and ends the game on a mine.
func (g *Game) reveal(c board.Coordinate) {
	if g.board.GameOver() || !g.board.At(c).Hidden() {
		return
	}

	if !g.board.FirstClickConsumed() {
		if g.board.At(c).IsMine() {
			g.board.MoveMine(c)
		}
		g.board.ConsumeFirstClick()
	}

	if !g.board.Reveal(c) {
		g.board.SetGameOver(c)
	}
}

// flag toggles a flag while flags remain, or clears an existing one.
func (g *Game) flag(c board.Coordinate) {
	if g.board.GameOver() {
		return
	}
	cell := g.board.At(c)
	if !cell.Hidden() {
		return
	}
	if g.board.FlagsRemaining() > 0 || cell.Flagged() {
		g.board.ToggleFlag(c)
	}
}

// advanceClock adds a second every tickRate steps between the first
// click and game over.
func (g *Game) advanceClock() {
	if !g.board.FirstClickConsumed() || g.board.GameOver() {
		return
	}
	g.subTicks++
	if g.subTicks >= g.tickRate {
		g.subTicks = 0
		g.board.AddSecond()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.RevealedSafeCount(),
		GameOver: g.board.GameOver(),
		Won:      g.board.Won(),
		Paused:   g.paused,
		Elapsed:  g.board.Elapsed(),
	}
}
