package mines

import (
	"strings"

	"github.com/vovakirdan/tui-mines/internal/games/mines/board"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateError   GameStateType = "error"
	StateReady   GameStateType = "ready" // waiting for the first reveal
	StatePlaying GameStateType = "playing"
	StatePaused  GameStateType = "paused"
	StateWon     GameStateType = "won"
	StateLost    GameStateType = "lost"
)

// Snapshot characters, one per cell.
const (
	SnapHidden = '#'
	SnapFlag   = 'F'
	SnapMine   = '*'
	SnapEmpty  = '.'
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Difficulty     string
	Rows, Cols     int
	Mines          int
	FlagsRemaining int
	Hidden         int
	Cursor         board.Coordinate
	Cause          board.Coordinate
	Elapsed        uint64
	State          GameStateType
	// Grid has one string per row: '#' hidden, 'F' flagged, '*' revealed
	// mine, '.' empty, '1'-'8' counts.
	Grid []string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Difficulty: string(g.difficulty),
		Cursor:     g.cursor,
		Cause:      board.None,
		State:      g.stateType(),
	}
	if g.board == nil {
		return snap
	}

	b := g.board
	snap.Rows, snap.Cols = b.Rows(), b.Cols()
	snap.Mines = b.Mines()
	snap.FlagsRemaining = b.FlagsRemaining()
	snap.Hidden = b.HiddenCount()
	snap.Cause = b.GameOverCause()
	snap.Elapsed = b.Elapsed()

	snap.Grid = make([]string, b.Rows())
	var row strings.Builder
	for r := 0; r < b.Rows(); r++ {
		row.Reset()
		for c := 0; c < b.Cols(); c++ {
			row.WriteRune(snapRune(b.At(board.At(r, c))))
		}
		snap.Grid[r] = row.String()
	}
	return snap
}

func (g *Game) stateType() GameStateType {
	switch {
	case g.board == nil:
		return StateError
	case g.board.Won():
		return StateWon
	case g.board.Lost():
		return StateLost
	case g.paused:
		return StatePaused
	case !g.board.FirstClickConsumed():
		return StateReady
	default:
		return StatePlaying
	}
}

func snapRune(cell board.Cell) rune {
	switch {
	case cell.Hidden() && cell.Flagged():
		return SnapFlag
	case cell.Hidden():
		return SnapHidden
	case cell.IsMine():
		return SnapMine
	case cell.AdjacentMines() == 0:
		return SnapEmpty
	default:
		return rune('0' + cell.AdjacentMines())
	}
}
