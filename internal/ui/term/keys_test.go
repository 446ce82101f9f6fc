package term

import (
	"testing"

	"systemsnake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"arrow up", tcell.KeyUp, 0, Command{Kind: CommandSteer, Direction: domain.DirectionUp}},
		{"arrow down", tcell.KeyDown, 0, Command{Kind: CommandSteer, Direction: domain.DirectionDown}},
		{"arrow left", tcell.KeyLeft, 0, Command{Kind: CommandSteer, Direction: domain.DirectionLeft}},
		{"arrow right", tcell.KeyRight, 0, Command{Kind: CommandSteer, Direction: domain.DirectionRight}},
		{"w", tcell.KeyRune, 'w', Command{Kind: CommandSteer, Direction: domain.DirectionUp}},
		{"S upper", tcell.KeyRune, 'S', Command{Kind: CommandSteer, Direction: domain.DirectionDown}},
		{"a", tcell.KeyRune, 'a', Command{Kind: CommandSteer, Direction: domain.DirectionLeft}},
		{"D upper", tcell.KeyRune, 'D', Command{Kind: CommandSteer, Direction: domain.DirectionRight}},
		{"space", tcell.KeyRune, ' ', Command{Kind: CommandToggle}},
		{"r", tcell.KeyRune, 'r', Command{Kind: CommandReset}},
		{"enter", tcell.KeyEnter, 0, Command{Kind: CommandReset}},
		{"q", tcell.KeyRune, 'q', Command{Kind: CommandQuit}},
		{"escape", tcell.KeyEscape, 0, Command{Kind: CommandQuit}},
		{"ctrl-c", tcell.KeyCtrlC, 0, Command{Kind: CommandQuit}},
		{"unmapped rune", tcell.KeyRune, 'x', Command{Kind: CommandNone}},
		{"unmapped key", tcell.KeyF1, 0, Command{Kind: CommandNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapKey(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			if got != tt.want {
				t.Errorf("MapKey() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
