package term

import (
	"fmt"
	"image/color"

	"systemsnake/internal/domain"
	"systemsnake/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	boardLeft = 1
	boardTop  = 3
	// Terminal cells are roughly twice as tall as wide, so each board cell
	// takes two columns.
	cellColumns = 2
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255))
	styleTitle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 255)).Bold(true)
	styleBorder = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 255))
	styleError  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 255)).Bold(true)
	styleDim    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 120, 120))
)

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// blend flattens a translucent quad color onto the black board.
func blend(c color.NRGBA) tcell.Color {
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
}

func glyph(kind render.Kind) (rune, bool) {
	switch kind {
	case render.KindFood:
		return '◆', true
	case render.KindFoodGlitch:
		return '▒', true
	case render.KindTrail:
		return '░', true
	case render.KindBody, render.KindHead:
		return '█', true
	case render.KindBodyGlitch:
		return '▄', true
	}
	return 0, false
}

// DrawBoard paints the composed frame. Background and grid quads are skipped;
// the terminal's own background stands in for them.
func DrawBoard(s tcell.Screen, width, height int, quads []render.Quad) {
	right := boardLeft + width*cellColumns
	bottom := boardTop + height

	for x := boardLeft - 1; x <= right; x++ {
		s.SetContent(x, boardTop-1, '─', nil, styleBorder)
		s.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := boardTop - 1; y <= bottom; y++ {
		s.SetContent(boardLeft-1, y, '│', nil, styleBorder)
		s.SetContent(right, y, '│', nil, styleBorder)
	}
	s.SetContent(boardLeft-1, boardTop-1, '┌', nil, styleBorder)
	s.SetContent(right, boardTop-1, '┐', nil, styleBorder)
	s.SetContent(boardLeft-1, bottom, '└', nil, styleBorder)
	s.SetContent(right, bottom, '┘', nil, styleBorder)

	for _, q := range quads {
		r, ok := glyph(q.Kind)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(blend(q.Color))
		x := boardLeft + q.Cell.X*cellColumns
		y := boardTop + q.Cell.Y
		for i := 0; i < cellColumns; i++ {
			s.SetContent(x+i, y, r, nil, style)
		}
	}
}

// DrawStatus paints the header above the board and the phase line below it.
func DrawStatus(s tcell.Screen, state *domain.GameState, message string) {
	drawText(s, boardLeft, 0, styleTitle, "SYSTEM.SNAKE_")
	drawText(s, boardLeft, 1, styleText,
		fmt.Sprintf("SCORE %04d  HIGH_SCORE %04d  TICK %v", state.Score, state.BestScore, state.TickPeriod))

	y := boardTop + state.Field.Height + 1
	switch state.Phase {
	case domain.PhasePaused:
		drawText(s, boardLeft, y, styleText, "EXECUTE: SPACE   HALT: SPACE   QUIT: Q")
	case domain.PhaseRunning:
		drawText(s, boardLeft, y, styleDim, "[W][A][S][D] OVERRIDE_VECTORS")
	case domain.PhaseGameOver:
		title := "FATAL_ERR"
		if state.Won {
			title = "MEM_FULL"
		}
		drawText(s, boardLeft, y, styleError, fmt.Sprintf("%s  SCORE_DUMP: %d  REBOOT: SPACE", title, state.Score))
	}

	if message != "" {
		drawText(s, boardLeft, y+1, styleError, message)
	}
}
