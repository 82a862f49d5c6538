package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadehall/blockfall/internal/core"
	"github.com/arcadehall/blockfall/internal/tetris"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board cells are drawn two characters wide so the playfield looks roughly
// square in a terminal.
const cellWidth = 2

// drawGame renders a full frame: the playfield with the active piece, the
// next-piece preview, the score panel, and any state overlay.
func drawGame(s *core.Screen, snap tetris.Snapshot, highScore int) {
	s.Clear()

	visible := snap.Rows - snap.HiddenRows
	boardW := snap.Cols * cellWidth

	// Center the playfield, leaving room for the side panel.
	left := core.Max(0, (s.Width()-(boardW+2+panelWidth))/2)
	top := core.Max(0, (s.Height()-(visible+2))/2)

	s.DrawBox(left, top, boardW+2, visible+2)
	drawField(s, snap, left+1, top+1)
	drawPanel(s, snap, highScore, left+boardW+4, top+1)
	drawOverlay(s, snap, left+1, top+1, boardW, visible)
}

// panelWidth is the column budget for the score/next panel.
const panelWidth = 16

// drawField draws the settled stack, the clearing flash, and the active
// piece. Hidden buffer rows are never drawn; a piece cell still inside the
// buffer is simply clipped.
func drawField(s *core.Screen, snap tetris.Snapshot, x0, y0 int) {
	put := func(col, row int, r rune, c core.Color) {
		vr := row - snap.HiddenRows
		if vr < 0 {
			return
		}
		for i := 0; i < cellWidth; i++ {
			s.SetCell(x0+col*cellWidth+i, y0+vr, r, c)
		}
	}

	clearing := make(map[int]bool, len(snap.ClearingRows))
	for _, row := range snap.ClearingRows {
		clearing[row] = true
	}

	for row := snap.HiddenRows; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			shape := snap.Cells[row][col]
			switch {
			case clearing[row]:
				put(col, row, '▒', core.ColorBrightWhite)
			case shape != tetris.ShapeNone:
				put(col, row, '█', shape.Color())
			}
		}
	}

	for _, c := range snap.PieceCells {
		put(c.Col, c.Row, '█', snap.PieceShape.Color())
	}
}

// drawPanel draws the score column and the next-piece preview.
func drawPanel(s *core.Screen, snap tetris.Snapshot, highScore, x0, y0 int) {
	s.DrawText(x0, y0, "BLOCKFALL")
	s.DrawText(x0, y0+2, fmt.Sprintf("Score %d", snap.Score))
	s.DrawText(x0, y0+3, fmt.Sprintf("Level %d", snap.Level))
	s.DrawText(x0, y0+4, fmt.Sprintf("Lines %d", snap.Lines))
	if highScore > 0 {
		s.DrawTextColored(x0, y0+5, fmt.Sprintf("Best  %d", highScore), core.ColorGray)
	}

	s.DrawText(x0, y0+7, "Next")
	for _, off := range nextPreviewCells(snap.NextShape) {
		for i := 0; i < cellWidth; i++ {
			s.SetCell(x0+off.DCol*cellWidth+i, y0+8+off.DRow, '█', snap.NextShape.Color())
		}
	}

	s.DrawTextColored(x0, y0+12, "←/→ move", core.ColorGray)
	s.DrawTextColored(x0, y0+13, "↑/z rotate", core.ColorGray)
	s.DrawTextColored(x0, y0+14, "↓ soft drop", core.ColorGray)
	s.DrawTextColored(x0, y0+15, "p pause  q quit", core.ColorGray)
}

// nextPreviewCells returns the preview offsets for a shape in its spawn
// orientation.
func nextPreviewCells(shape tetris.Shape) []tetris.Offset {
	if shape == tetris.ShapeNone {
		return nil
	}
	offs := shape.Offsets(0)
	return offs[:]
}

// drawOverlay prints the paused or game-over banner across the playfield.
func drawOverlay(s *core.Screen, snap tetris.Snapshot, x0, y0, w, h int) {
	var text string
	var color core.Color
	switch snap.State {
	case tetris.StatePaused:
		text, color = " PAUSED ", core.ColorBrightYellow
	case tetris.StateGameOver:
		text, color = " GAME OVER ", core.ColorBrightRed
	default:
		return
	}

	x := x0 + core.Clamp((w-len(text))/2, 0, w-1)
	y := y0 + h/2
	s.DrawTextColored(x, y, text, color)
	if snap.State == tetris.StateGameOver {
		hint := " r restart, q quit "
		s.DrawTextColored(x0+core.Clamp((w-len(hint))/2, 0, w-1), y+1, hint, core.ColorGray)
	}
}
