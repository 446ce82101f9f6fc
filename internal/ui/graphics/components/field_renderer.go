package components

import (
	"systemsnake/internal/render"
	"systemsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const boardFrame = 4

// FieldRenderer paints composed frames at a fixed offset. Quads are already
// in the board's 20-units-per-cell coordinate system.
type FieldRenderer struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

func NewFieldRenderer(x, y, width, height int) *FieldRenderer {
	return &FieldRenderer{
		OffsetX: x,
		OffsetY: y,
		Width:   width,
		Height:  height,
	}
}

func (fr *FieldRenderer) Contains(x, y int) bool {
	return x >= fr.OffsetX && x < fr.OffsetX+fr.Width && y >= fr.OffsetY && y < fr.OffsetY+fr.Height
}

// DrawFrame draws the neon frame around the board, then the quads.
func (fr *FieldRenderer) DrawFrame(screen *ebiten.Image, quads []render.Quad) {
	ox := float32(fr.OffsetX)
	oy := float32(fr.OffsetY)
	w := float32(fr.Width)
	h := float32(fr.Height)
	pad := float32(boardFrame + 8)

	vector.DrawFilledRect(screen, ox-pad+8, oy-pad+8, w+pad*2, h+pad*2, types.ColorMagenta, false)
	vector.DrawFilledRect(screen, ox-pad, oy-pad, w+pad*2, h+pad*2, types.ColorBackground, false)
	vector.StrokeRect(screen, ox-pad, oy-pad, w+pad*2, h+pad*2, boardFrame, types.ColorCyan, false)

	for _, q := range quads {
		vector.DrawFilledRect(screen, ox+q.X, oy+q.Y, q.W, q.H, q.Color, false)
	}
}
