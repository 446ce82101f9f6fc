// Package render turns a game snapshot into a list of flat rectangles in the
// 400x400 logical surface. Frontends only translate rectangles to pixels or
// terminal cells.
package render

import (
	"image/color"
	"math/rand"

	"systemsnake/internal/domain"
)

const CellSize = 20

type Kind int

const (
	KindBackground Kind = iota
	KindGridLine
	KindFood
	KindFoodGlitch
	KindTrail
	KindBody
	KindHead
	KindBodyGlitch
)

type Quad struct {
	Kind  Kind
	Cell  domain.Coord
	X, Y  float32
	W, H  float32
	Color color.NRGBA
}

var (
	ColorVoid    = color.NRGBA{0, 0, 0, 255}
	ColorCyan    = color.NRGBA{0, 255, 255, 255}
	ColorMagenta = color.NRGBA{255, 0, 255, 255}
	ColorWhite   = color.NRGBA{255, 255, 255, 255}
)

const (
	gridAlpha         = 0.1
	foodGlitchChance  = 0.2
	bodyGlitchChance  = 0.1
	foodInset         = 2
	snakeInset        = 1
	gridLineThickness = 1
)

// View is the part of the game state a frame depends on.
type View struct {
	Width  int
	Height int
	Snake  []domain.Coord
	Food   domain.Coord
	// Won means the snake fills the grid and the food cell sits under it.
	Won bool
}

func ViewOf(state *domain.GameState) View {
	return View{
		Width:  state.Field.Width,
		Height: state.Field.Height,
		Snake:  state.Snake.Points,
		Food:   state.Food,
		Won:    state.Won,
	}
}

// Compose builds one frame. It reads the trail without fading it. glitch may
// be nil, in which case no glitch marks are produced and the output depends
// only on its inputs.
func Compose(view View, trail []TrailMark, glitch *rand.Rand) []Quad {
	w := float32(view.Width * CellSize)
	h := float32(view.Height * CellSize)

	quads := make([]Quad, 0, 2+view.Width+view.Height+len(trail)+len(view.Snake)*2)
	quads = append(quads, Quad{Kind: KindBackground, W: w, H: h, Color: ColorVoid})

	gridColor := withAlpha(ColorCyan, gridAlpha)
	for i := 0; i <= view.Width; i++ {
		x := float32(i * CellSize)
		quads = append(quads, Quad{Kind: KindGridLine, X: x, W: gridLineThickness, H: h, Color: gridColor})
	}
	for i := 0; i <= view.Height; i++ {
		y := float32(i * CellSize)
		quads = append(quads, Quad{Kind: KindGridLine, Y: y, W: w, H: gridLineThickness, Color: gridColor})
	}

	if !view.Won {
		quads = append(quads, cellQuad(KindFood, view.Food, foodInset, ColorMagenta))
	}
	if !view.Won && roll(glitch) > 1-foodGlitchChance {
		quads = append(quads, Quad{
			Kind:  KindFoodGlitch,
			Cell:  view.Food,
			X:     float32(view.Food.X*CellSize + 4),
			Y:     float32(view.Food.Y * CellSize),
			W:     CellSize - 8,
			H:     CellSize,
			Color: ColorCyan,
		})
	}

	for _, m := range trail {
		quads = append(quads, cellQuad(KindTrail, m.Cell, foodInset, withAlpha(ColorCyan, m.Alpha)))
	}

	for i, seg := range view.Snake {
		if i == 0 {
			quads = append(quads, cellQuad(KindHead, seg, snakeInset, ColorWhite))
		} else {
			quads = append(quads, cellQuad(KindBody, seg, snakeInset, ColorCyan))
		}

		if roll(glitch) > 1-bodyGlitchChance {
			quads = append(quads, Quad{
				Kind:  KindBodyGlitch,
				Cell:  seg,
				X:     float32(seg.X*CellSize - 2),
				Y:     float32(seg.Y*CellSize + 5),
				W:     CellSize + 4,
				H:     2,
				Color: ColorMagenta,
			})
		}
	}

	return quads
}

func cellQuad(kind Kind, c domain.Coord, inset int, col color.NRGBA) Quad {
	return Quad{
		Kind:  kind,
		Cell:  c,
		X:     float32(c.X*CellSize + inset),
		Y:     float32(c.Y*CellSize + inset),
		W:     float32(CellSize - inset*2),
		H:     float32(CellSize - inset*2),
		Color: col,
	}
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	return c
}

func roll(r *rand.Rand) float64 {
	if r == nil {
		return 0
	}
	return r.Float64()
}
