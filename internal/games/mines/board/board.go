// Package board implements the minesweeper grid: mine placement, adjacent
// counts, flood-fill reveal, the flag budget and the game-over state.
// It knows nothing about input or rendering.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrInvalidSize is returned for boards with no rows or columns.
	ErrInvalidSize = errors.New("board: rows and cols must be positive")
	// ErrInvalidMineCount is returned when the mines cannot leave at least
	// one safe cell.
	ErrInvalidMineCount = errors.New("board: mine count must be in [0, rows*cols)")
)

// Validate checks that a rows x cols board can hold the given mines.
func Validate(rows, cols, mines int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rows, cols)
	}
	if mines < 0 || mines >= rows*cols {
		return fmt.Errorf("%w: %d mines on %d cells", ErrInvalidMineCount, mines, rows*cols)
	}
	return nil
}

// Board is the grid plus game bookkeeping. Cells live in a row-major
// arena; swapping a cell's kind is a single slot assignment.
type Board struct {
	rows  int
	cols  int
	mines int
	cells []Cell

	flagsRemaining     int
	firstClickConsumed bool
	gameOver           bool
	cause              Coordinate
	clock              Clock

	rng *rand.Rand
}

// New creates a board with mines placed at random. A nil rng seeds from
// the current time.
func New(rows, cols, mines int, rng *rand.Rand) (*Board, error) {
	if err := Validate(rows, cols, mines); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &Board{rows: rows, cols: cols, mines: mines, rng: rng}
	b.Reset()
	return b, nil
}

// NewWithMines creates a board with mines at fixed positions. Duplicate
// positions count once. A later Reset places mines at random again.
func NewWithMines(rows, cols int, mines []Coordinate, rng *rand.Rand) (*Board, error) {
	b, err := New(rows, cols, 0, rng)
	if err != nil {
		return nil, err
	}

	for _, c := range mines {
		if !b.inBounds(c) {
			return nil, fmt.Errorf("board: mine %s outside %dx%d grid", c, rows, cols)
		}
		if b.cell(c).IsMine() {
			continue
		}
		b.placeMine(c)
		b.mines++
	}
	if err := Validate(rows, cols, b.mines); err != nil {
		return nil, err
	}
	b.flagsRemaining = b.mines
	return b, nil
}

// Reset rebuilds the grid with fresh random mines and clears all game
// state. It is the only way out of game over.
func (b *Board) Reset() {
	b.cells = make([]Cell, b.rows*b.cols)
	for i := range b.cells {
		b.cells[i] = newSafeCell(b.coordOf(i))
	}

	for placed := 0; placed < b.mines; placed++ {
		var c Coordinate
		for {
			c = At(b.rng.Intn(b.rows), b.rng.Intn(b.cols))
			if !b.cell(c).IsMine() {
				break
			}
		}
		b.placeMine(c)
	}

	b.flagsRemaining = b.mines
	b.firstClickConsumed = false
	b.gameOver = false
	b.cause = None
	b.clock.Reset()
}

// MoveMine relocates the mine at c to a random hidden safe cell other
// than c and returns the cell now at c. Adjacent counts are kept exact.
// A flag on the vacated mine is cleared and refunded; a flag on the
// target is carried onto the new mine. Calling it on a non-mine returns
// that cell untouched. It panics when no target exists.
func (b *Board) MoveMine(c Coordinate) Cell {
	old := b.cell(c)
	if !old.IsMine() {
		return old
	}

	targets := b.relocationTargets(c)
	if len(targets) == 0 {
		panic(fmt.Sprintf("board: no hidden safe cell to move mine %s to", c))
	}

	wasFlagged := old.Flagged()
	vacated := newSafeCell(c)
	b.set(c, vacated)
	vacated.resetFromMine(b)
	if wasFlagged {
		b.flagsRemaining++
	}

	target := targets[b.rng.Intn(len(targets))]
	targetFlagged := b.cell(target).Flagged()
	mine := newMineCell(b, target)
	b.set(target, mine)
	if targetFlagged {
		b.flagsRemaining++
		mine.toggleFlag(b)
	}

	return vacated
}

func (b *Board) relocationTargets(exclude Coordinate) []Coordinate {
	var targets []Coordinate
	for _, cell := range b.cells {
		if cell.IsMine() || !cell.Hidden() || cell.Coordinate() == exclude {
			continue
		}
		targets = append(targets, cell.Coordinate())
	}
	return targets
}

// Reveal reveals the cell at c. It returns false only when a mine was hit;
// the caller decides whether that ends the game. Once the game is over it
// does nothing and returns true.
func (b *Board) Reveal(c Coordinate) bool {
	if b.gameOver {
		return true
	}
	return b.cell(c).reveal(b)
}

// ToggleFlag flips the flag on a hidden cell. The flag budget is not
// checked here; the flags remaining may go negative if the caller allows
// it. Revealed cells and finished games are ignored.
func (b *Board) ToggleFlag(c Coordinate) {
	if b.gameOver {
		return
	}
	cell := b.cell(c)
	if !cell.Hidden() {
		return
	}
	cell.state().toggleFlag(b)
}

// HiddenCount returns the number of cells still hidden.
func (b *Board) HiddenCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.Hidden() {
			n++
		}
	}
	return n
}

// RevealedSafeCount returns the number of revealed cells that are not
// mines.
func (b *Board) RevealedSafeCount() int {
	n := 0
	for _, cell := range b.cells {
		if !cell.Hidden() && !cell.IsMine() {
			n++
		}
	}
	return n
}

// CheckWin ends the game as a win once only mines remain hidden and
// reports whether the game is won.
func (b *Board) CheckWin() bool {
	if !b.gameOver && b.HiddenCount() == b.mines {
		b.SetGameOver(None)
	}
	return b.Won()
}

// SetGameOver ends the game. cause is the mine that was hit, or None for
// a win.
func (b *Board) SetGameOver(cause Coordinate) {
	b.gameOver = true
	b.cause = cause
}

func (b *Board) GameOver() bool            { return b.gameOver }
func (b *Board) GameOverCause() Coordinate { return b.cause }
func (b *Board) Won() bool                 { return b.gameOver && b.cause.IsNone() }
func (b *Board) Lost() bool                { return b.gameOver && !b.cause.IsNone() }

func (b *Board) FirstClickConsumed() bool { return b.firstClickConsumed }
func (b *Board) ConsumeFirstClick()       { b.firstClickConsumed = true }

// AddSecond advances the game clock by one second.
func (b *Board) AddSecond() { b.clock.Tick() }

// Elapsed returns the game clock in seconds.
func (b *Board) Elapsed() uint64 { return b.clock.Seconds() }

// ElapsedTime returns the game clock as HH:MM:SS.
func (b *Board) ElapsedTime() string { return b.clock.String() }

func (b *Board) Rows() int           { return b.rows }
func (b *Board) Cols() int           { return b.cols }
func (b *Board) Mines() int          { return b.mines }
func (b *Board) FlagsRemaining() int { return b.flagsRemaining }

// At returns the cell at c. c must be inside the grid.
func (b *Board) At(c Coordinate) Cell {
	return b.cell(c)
}

// InBounds reports whether c lies inside the grid.
func (b *Board) InBounds(c Coordinate) bool {
	return b.inBounds(c)
}

// Cells returns the cells in row-major order. The slice is a copy.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// MineCount counts the mine cells on the grid.
func (b *Board) MineCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.IsMine() {
			n++
		}
	}
	return n
}

func (b *Board) placeMine(c Coordinate) {
	b.set(c, newMineCell(b, c))
}

func (b *Board) inBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

func (b *Board) cell(c Coordinate) Cell {
	return b.cells[c.Row*b.cols+c.Col]
}

func (b *Board) set(c Coordinate, cell Cell) {
	b.cells[c.Row*b.cols+c.Col] = cell
}

func (b *Board) coordOf(i int) Coordinate {
	return Coordinate{Row: i / b.cols, Col: i % b.cols}
}
