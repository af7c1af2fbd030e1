package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// palette maps every non-default core.Color to an ANSI 256 code.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorNavy:          "18",
	core.ColorTeal:          "30",
	core.ColorMaroon:        "88",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyles is built once from palette; ColorDefault is unstyled.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen turns the screen buffer into terminal output, one styled
// run per stretch of same-colored cells.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var out, run strings.Builder
	runColor := core.ColorDefault

	flush := func() {
		if run.Len() > 0 {
			out.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return out.String()
}
