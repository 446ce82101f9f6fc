package components

import (
	"image/color"

	"systemsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const buttonShadow = 4

type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Scale         float64
	Fill          color.RGBA
	Enabled       bool
	hovered       bool
	pressed       bool
}

func NewButton(x, y, width, height int, buttonText string, fill color.RGBA) *Button {
	return &Button{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Text:    buttonText,
		Scale:   2,
		Fill:    fill,
		Enabled: true,
	}
}

func (b *Button) Update() bool {
	if !b.Enabled {
		return false
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = mx >= b.X && mx < b.X+b.Width && my >= b.Y && my < b.Y+b.Height

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Draw(screen *ebiten.Image) {
	fill := b.Fill
	shadow := types.Swap(b.Fill)
	if !b.Enabled {
		fill = types.Darken(b.Fill, 0.4)
	} else if b.hovered {
		fill, shadow = shadow, fill
	}

	offset := float32(0)
	if b.pressed {
		offset = buttonShadow / 2
	}

	vector.DrawFilledRect(screen,
		float32(b.X+buttonShadow), float32(b.Y+buttonShadow),
		float32(b.Width), float32(b.Height),
		shadow, false)

	vector.DrawFilledRect(screen,
		float32(b.X)+offset, float32(b.Y)+offset,
		float32(b.Width), float32(b.Height),
		fill, false)

	_, th := types.TextSize(b.Text, b.Scale)
	types.DrawTextCentered(screen, b.Text,
		b.X+b.Width/2+int(offset), b.Y+(b.Height-th)/2+int(offset),
		b.Scale, types.ColorButtonText)
}
