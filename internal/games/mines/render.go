package mines

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/mines/board"
)

// Visual characters for rendering
const (
	HiddenGlyph     = '■'
	FlagGlyph       = '⚑'
	MineGlyph       = '*'
	LosingMineGlyph = 'X'
	EmptyGlyph      = ' '
)

// Status banners
const (
	WinMessage  = "YOU WIN, YAY! :)"
	LoseMessage = "GAME OVER! :("
)

const helpLine = "arrows move  space reveal  f flag  p pause  r new board  q quit"

// layout places the board on screen. Every cell takes two columns: a
// gap and the glyph. The cursor brackets sit in the gaps either side.
type layout struct {
	screenW, screenH int
	rows, cols       int
	box              core.Rect
	gridX, gridY     int
}

func computeLayout(screenW, screenH, rows, cols int) layout {
	boxW := 2*cols + 3
	boxH := rows + 2
	boxX := max((screenW-boxW)/2, 0)
	box := core.NewRect(boxX, 1, boxW, boxH)

	return layout{
		screenW: screenW,
		screenH: screenH,
		rows:    rows,
		cols:    cols,
		box:     box,
		gridX:   box.X + 1,
		gridY:   box.Y + 1,
	}
}

// fits reports whether the HUD, the box and the status line fit.
func (l layout) fits() bool {
	return l.screenW >= l.box.W && l.screenH >= l.box.H+2
}

func (l layout) glyphX(col int) int {
	return l.gridX + 2*col + 1
}

func (l layout) rowY(row int) int {
	return l.gridY + row
}

// CellAt maps a screen position to the board cell under it. Positions on
// the right or bottom border clamp to the last column or row.
func (g *Game) CellAt(x, y int) (board.Coordinate, bool) {
	if g.board == nil {
		return board.None, false
	}
	l := g.layout
	area := core.NewRect(l.gridX, l.gridY, 2*l.cols, l.rows)
	if !area.ContainsInclusive(x, y) {
		return board.None, false
	}

	row := core.Clamp(y-l.gridY, 0, l.rows-1)
	col := core.Clamp((x-l.gridX)/2, 0, l.cols-1)
	return board.At(row, col), true
}

// Render draws the HUD, the board and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		drawMessage(dst, core.ColorBrightRed, "Configuration error", g.errText(), "q to quit")
		return
	}

	g.layout = computeLayout(dst.Width(), dst.Height(), g.board.Rows(), g.board.Cols())
	if !g.layout.fits() {
		drawMessage(dst, core.ColorYellow,
			"Terminal too small",
			fmt.Sprintf("need %dx%d, have %dx%d", g.layout.box.W, g.layout.box.H+2, dst.Width(), dst.Height()),
		)
		return
	}

	g.drawHUD(dst)
	g.drawGrid(dst)
	g.drawStatus(dst)
}

func (g *Game) errText() string {
	if g.err == nil {
		return "board not initialised"
	}
	return g.err.Error()
}

func (g *Game) drawHUD(dst *core.Screen) {
	box := g.layout.box
	y := box.Y - 1

	dst.DrawTextColored(box.X, y, fmt.Sprintf("%c %03d", FlagGlyph, g.board.FlagsRemaining()), core.ColorBrightRed)

	clock := g.board.ElapsedTime()
	dst.DrawText(box.Right()-utf8.RuneCountInString(clock), y, clock)

	title := g.Title()
	if n := utf8.RuneCountInString(title); box.W >= n+24 {
		dst.DrawText(box.X+(box.W-n)/2, y, title)
	}
}

func (g *Game) drawGrid(dst *core.Screen) {
	dst.DrawBox(g.layout.box, core.ColorGray)

	cause := g.board.GameOverCause()
	for _, cell := range g.board.Cells() {
		c := cell.Coordinate()
		r, color := glyph(cell, cause)
		dst.SetColored(g.layout.glyphX(c.Col), g.layout.rowY(c.Row), r, color)
	}

	if !g.board.GameOver() {
		x, y := g.layout.glyphX(g.cursor.Col), g.layout.rowY(g.cursor.Row)
		dst.SetColored(x-1, y, '[', core.ColorBrightYellow)
		dst.SetColored(x+1, y, ']', core.ColorBrightYellow)
	}
}

// glyph picks the character and color for one cell.
func glyph(cell board.Cell, cause board.Coordinate) (rune, core.Color) {
	switch {
	case cell.Hidden() && cell.Flagged():
		return FlagGlyph, core.ColorBrightRed
	case cell.Hidden():
		return HiddenGlyph, core.ColorGray
	case cell.IsMine() && cell.Coordinate() == cause:
		return LosingMineGlyph, core.ColorBrightRed
	case cell.IsMine():
		return MineGlyph, core.ColorBrightWhite
	case cell.AdjacentMines() == 0:
		return EmptyGlyph, core.ColorDefault
	default:
		return rune('0' + cell.AdjacentMines()), cell.NumberColor()
	}
}

func (g *Game) drawStatus(dst *core.Screen) {
	y := g.layout.box.Bottom()

	switch {
	case g.board.Won():
		dst.DrawTextCentered(y, WinMessage+"  r: new board", core.ColorBrightGreen)
	case g.board.Lost():
		dst.DrawTextCentered(y, LoseMessage+"  r: new board", core.ColorBrightRed)
	case g.paused:
		dst.DrawTextCentered(y, "PAUSED  p: resume", core.ColorBrightYellow)
	default:
		dst.DrawTextCentered(y, helpLine, core.ColorGray)
	}
}

// drawMessage draws a boxed block of centered lines.
func drawMessage(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	boxW := min(width+4, dst.Width())
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawBox(box, color)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextCentered(box.Y+1+i, line, c)
	}
}
