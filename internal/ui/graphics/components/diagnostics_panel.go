package components

import (
	"fmt"

	"systemsnake/internal/domain"
	"systemsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type diagRow struct {
	key   string
	value string
	blink bool
}

// DiagnosticsPanel is decorative. The first rows are fixed flavour text, the
// rest mirror the game snapshot.
type DiagnosticsPanel struct {
	X, Y          int
	Width, Height int
	frame         int
}

func NewDiagnosticsPanel(x, y, width, height int) *DiagnosticsPanel {
	return &DiagnosticsPanel{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (dp *DiagnosticsPanel) Draw(screen *ebiten.Image, state *domain.GameState) {
	dp.frame++

	drawPanel(screen, dp.X, dp.Y, dp.Width, dp.Height, types.ColorMagenta, types.ColorCyan)
	types.DrawText(screen, "DIAGNOSTICS", dp.X+20, dp.Y+18, 2, types.ColorMagenta)

	rows := []diagRow{
		{key: "MEM_ALLOC", value: "0xFA4B"},
		{key: "NEURAL_LINK", value: "ACTIVE", blink: true},
		{key: "CORRUPTION", value: "99.9%"},
	}
	if state != nil {
		rows = append(rows,
			diagRow{key: "TICK_PERIOD", value: fmt.Sprintf("%dMS", state.TickPeriod.Milliseconds())},
			diagRow{key: "SEGMENTS", value: fmt.Sprintf("%d", state.Snake.Length())},
			diagRow{key: "STATE", value: state.Phase.String()},
		)
	}

	y := dp.Y + 52
	for i, row := range rows {
		if y > dp.Y+dp.Height-24 {
			break
		}
		valueColor := types.ColorMagenta
		if i%2 == 1 {
			valueColor = types.ColorCyan
		}
		if row.blink && dp.frame%60 < 30 {
			valueColor = types.Darken(valueColor, 0.4)
		}

		types.DrawText(screen, row.key, dp.X+20, y, 2, types.ColorCyan)
		vw, _ := types.TextSize(row.value, 2)
		types.DrawText(screen, row.value, dp.X+dp.Width-20-vw, y, 2, valueColor)

		vector.StrokeLine(screen,
			float32(dp.X+20), float32(y+28),
			float32(dp.X+dp.Width-20), float32(y+28),
			1, types.Darken(types.ColorCyan, 0.3), false)
		y += 32
	}
}
