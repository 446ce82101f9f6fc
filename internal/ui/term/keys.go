package term

import (
	"systemsnake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandSteer
	CommandToggle
	CommandReset
	CommandQuit
)

type Command struct {
	Kind      CommandKind
	Direction domain.Direction
}

var arrowKeys = map[tcell.Key]domain.Direction{
	tcell.KeyUp:    domain.DirectionUp,
	tcell.KeyDown:  domain.DirectionDown,
	tcell.KeyLeft:  domain.DirectionLeft,
	tcell.KeyRight: domain.DirectionRight,
}

var letterKeys = map[rune]domain.Direction{
	'w': domain.DirectionUp,
	's': domain.DirectionDown,
	'a': domain.DirectionLeft,
	'd': domain.DirectionRight,
}

// MapKey translates a key press into a game command. Upper and lower case
// letters map the same.
func MapKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: CommandQuit}
	case tcell.KeyEnter:
		return Command{Kind: CommandReset}
	case tcell.KeyRune:
	default:
		if dir, ok := arrowKeys[ev.Key()]; ok {
			return Command{Kind: CommandSteer, Direction: dir}
		}
		return Command{Kind: CommandNone}
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	if dir, ok := letterKeys[r]; ok {
		return Command{Kind: CommandSteer, Direction: dir}
	}

	switch r {
	case ' ':
		return Command{Kind: CommandToggle}
	case 'r':
		return Command{Kind: CommandReset}
	case 'q':
		return Command{Kind: CommandQuit}
	}

	return Command{Kind: CommandNone}
}
