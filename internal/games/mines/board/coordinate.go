package board

import "fmt"

// Coordinate addresses one cell by row and column.
type Coordinate struct {
	Row int
	Col int
}

// None is the "no cell" sentinel. As a game-over cause it means the game
// was won rather than ended by a mine.
var None = Coordinate{Row: -1, Col: -1}

// At is a convenience constructor for Coordinate.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Equal returns true if both coordinates address the same cell.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// IsNone reports whether c is the sentinel.
func (c Coordinate) IsNone() bool {
	return c == None
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent returns the up to eight neighbours of c that lie inside a
// rows x cols grid. c itself is never included.
func (c Coordinate) Adjacent(rows, cols int) []Coordinate {
	adjacent := make([]Coordinate, 0, 8)
	for r := c.Row - 1; r <= c.Row+1; r++ {
		if r < 0 || r >= rows {
			continue
		}
		for col := c.Col - 1; col <= c.Col+1; col++ {
			if col < 0 || col >= cols {
				continue
			}
			if r == c.Row && col == c.Col {
				continue
			}
			adjacent = append(adjacent, Coordinate{Row: r, Col: col})
		}
	}
	return adjacent
}
