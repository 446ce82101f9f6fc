package components

import (
	"fmt"

	"systemsnake/internal/domain"
	"systemsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay covers the board while paused or after a fatal error.
type Overlay struct {
	X, Y          int
	Width, Height int

	btnExecute *Button
	btnReboot  *Button
}

func NewOverlay(x, y, width, height int) *Overlay {
	cx := x + width/2
	cy := y + height/2

	return &Overlay{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		btnExecute: NewButton(cx-110, cy-60, 220, 60, "EXECUTE", types.ColorButton),
		btnReboot:  NewButton(cx-100, cy+40, 200, 60, "REBOOT", types.ColorButtonAlt),
	}
}

func Visible(phase domain.Phase) bool {
	return phase != domain.PhaseRunning
}

func (o *Overlay) Update(phase domain.Phase) types.UIEvent {
	switch phase {
	case domain.PhasePaused:
		if o.btnExecute.Update() {
			return types.UIEvent{Type: types.UIEventToggle}
		}
	case domain.PhaseGameOver:
		if o.btnReboot.Update() {
			return types.UIEvent{Type: types.UIEventReset}
		}
	}
	return types.UIEvent{Type: types.UIEventNone}
}

func (o *Overlay) Draw(screen *ebiten.Image, state *domain.GameState) {
	if state == nil || !Visible(state.Phase) {
		return
	}

	vector.DrawFilledRect(screen,
		float32(o.X), float32(o.Y),
		float32(o.Width), float32(o.Height),
		types.ColorOverlay, false)
	vector.StrokeRect(screen,
		float32(o.X), float32(o.Y),
		float32(o.Width), float32(o.Height),
		4, types.ColorMagenta, false)

	cx := o.X + o.Width/2
	cy := o.Y + o.Height/2

	if state.Phase == domain.PhaseGameOver {
		title := "FATAL_ERR"
		if state.Won {
			title = "MEM_FULL"
		}
		types.DrawTextCentered(screen, title, cx, cy-110, 5, types.ColorMagenta)
		types.DrawTextCentered(screen, fmt.Sprintf("SCORE_DUMP: %d", state.Score), cx, cy-30, 2, types.ColorCyan)
		types.DrawTextCentered(screen, "C: COPY DUMP", cx, cy+120, 1, types.ColorTextDim)
		o.btnReboot.Draw(screen)
		return
	}

	o.btnExecute.Draw(screen)
	types.DrawTextCentered(screen, "INPUT: [SPACE] TO HALT", cx, cy+40, 2, types.ColorCyan)
}
