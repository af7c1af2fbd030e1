package board

import "github.com/vovakirdan/tui-mines/internal/core"

// MineSentinel is the adjacent-mine count reported by a mine cell.
const MineSentinel = -1

// Cell is one board position. Renderers only ever see the exported,
// read-only half; mutation goes through the owning Board.
type Cell interface {
	Coordinate() Coordinate
	// AdjacentMines returns the number of mines among the eight
	// neighbours, or MineSentinel if the cell is itself a mine.
	AdjacentMines() int
	IsMine() bool
	Hidden() bool
	Flagged() bool
	// NumberColor is the display color of the adjacent-mine count.
	NumberColor() core.Color

	reveal(b *Board) bool
	state() *cellState
}

// cellState holds the fields shared by safe and mine cells.
type cellState struct {
	coord   Coordinate
	count   int
	hidden  bool
	flagged bool
}

func newCellState(c Coordinate) cellState {
	return cellState{coord: c, hidden: true}
}

func (s *cellState) Coordinate() Coordinate { return s.coord }
func (s *cellState) AdjacentMines() int     { return s.count }
func (s *cellState) IsMine() bool           { return s.count == MineSentinel }
func (s *cellState) Hidden() bool           { return s.hidden }
func (s *cellState) Flagged() bool          { return s.flagged }
func (s *cellState) state() *cellState      { return s }

// NumberColor maps the count onto the classic minesweeper palette.
func (s *cellState) NumberColor() core.Color {
	switch s.count {
	case 1:
		return core.ColorBrightBlue
	case 2:
		return core.ColorGreen
	case 3:
		return core.ColorBrightRed
	case 4:
		return core.ColorNavy
	case 5:
		return core.ColorMaroon
	case 6:
		return core.ColorTeal
	case 7:
		return core.ColorBrightWhite
	case 8:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// toggleFlag flips the flag and moves the board's flag budget with it.
// Callers must only flag hidden cells.
func (s *cellState) toggleFlag(b *Board) {
	s.flagged = !s.flagged
	if s.flagged {
		b.flagsRemaining--
	} else {
		b.flagsRemaining++
	}
}

// expose unhides the cell, handing a held flag back to the budget.
func (s *cellState) expose(b *Board) {
	s.hidden = false
	if s.flagged {
		s.toggleFlag(b)
	}
}

// safeCell is a cell without a mine.
type safeCell struct {
	cellState
}

func newSafeCell(c Coordinate) *safeCell {
	return &safeCell{cellState: newCellState(c)}
}

// reveal unhides the cell and, if it has no adjacent mines, flood-fills
// outwards. A cell is exposed before its neighbours are queued, so every
// cell enters the worklist at most once.
func (c *safeCell) reveal(b *Board) bool {
	c.expose(b)
	if c.count != 0 {
		return true
	}

	stack := []Coordinate{c.coord}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range cur.Adjacent(b.rows, b.cols) {
			neighbour := b.cell(n)
			if !neighbour.Hidden() {
				continue
			}
			st := neighbour.state()
			st.expose(b)
			if st.count == 0 {
				stack = append(stack, n)
			}
		}
	}
	return true
}

// resetFromMine fixes counts after this cell replaced a mine: non-mine
// neighbours lose the vacated mine, neighbouring mines count towards
// this cell.
func (c *safeCell) resetFromMine(b *Board) {
	for _, n := range c.coord.Adjacent(b.rows, b.cols) {
		neighbour := b.cell(n).state()
		if neighbour.count == MineSentinel {
			c.count++
		} else {
			neighbour.count--
		}
	}
}

// mineCell is a cell holding a mine. Revealing it loses the game.
type mineCell struct {
	cellState
}

// newMineCell builds a mine at c and adds it to the counts of every
// non-mine neighbour already in the grid.
func newMineCell(b *Board, c Coordinate) *mineCell {
	m := &mineCell{cellState: newCellState(c)}
	m.count = MineSentinel

	for _, n := range c.Adjacent(b.rows, b.cols) {
		neighbour := b.cell(n).state()
		if neighbour.count != MineSentinel {
			neighbour.count++
		}
	}
	return m
}

// reveal unhides the mine and then every other hidden cell on the board.
// Safe cells go through their own reveal; other mines are exposed
// directly. Always returns false.
func (m *mineCell) reveal(b *Board) bool {
	m.expose(b)

	for _, cell := range b.cells {
		if !cell.Hidden() {
			continue
		}
		if cell.IsMine() {
			cell.state().expose(b)
			continue
		}
		cell.reveal(b)
	}
	return false
}
