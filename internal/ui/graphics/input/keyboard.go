package input

import (
	"systemsnake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the direction pressed this frame, or DirectionNone.
func (kh *KeyboardHandler) Update() domain.Direction {
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		return domain.DirectionUp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		return domain.DirectionDown
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		return domain.DirectionLeft
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		return domain.DirectionRight
	}

	return domain.DirectionNone
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsTogglePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func IsCopyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}

// Click reports a left click made this frame and where it landed.
func Click() (x, y int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y = ebiten.CursorPosition()
	return x, y, true
}

// PlaylistKey maps the media keys: P play/pause, N next, B previous, M mute.
func PlaylistKey() (next, prev, toggle, mute bool) {
	return inpututil.IsKeyJustPressed(ebiten.KeyN),
		inpututil.IsKeyJustPressed(ebiten.KeyB),
		inpututil.IsKeyJustPressed(ebiten.KeyP),
		inpututil.IsKeyJustPressed(ebiten.KeyM)
}
