package components

import (
	"image/color"
	"strconv"

	"systemsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Scoreboard struct {
	X, Y          int
	Width, Height int
}

func NewScoreboard(x, y, width, height int) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, score, best int) {
	drawPanel(screen, sb.X, sb.Y, sb.Width, sb.Height, types.ColorMagenta, types.ColorCyan)

	types.DrawText(screen, "SCORE", sb.X+24, sb.Y+16, 2, types.ColorMagenta)
	types.DrawText(screen, strconv.Itoa(score), sb.X+24, sb.Y+44, 4, types.ColorCyan)

	title := "> HIGH_SCORE"
	tw, _ := types.TextSize(title, 2)
	types.DrawText(screen, title, sb.X+sb.Width-24-tw, sb.Y+16, 2, types.ColorCyan)

	bestText := strconv.Itoa(best)
	bw, _ := types.TextSize(bestText, 4)
	types.DrawText(screen, bestText, sb.X+sb.Width-24-bw, sb.Y+44, 4, types.ColorMagenta)
}

// drawPanel is the shared black box with a colored border and hard offset
// shadow.
func drawPanel(screen *ebiten.Image, x, y, w, h int, border, shadow color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(x+8), float32(y+8),
		float32(w), float32(h),
		shadow, false)

	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		float32(w), float32(h),
		types.ColorPanelBg, false)

	vector.StrokeRect(screen,
		float32(x), float32(y),
		float32(w), float32(h),
		4, border, false)
}
