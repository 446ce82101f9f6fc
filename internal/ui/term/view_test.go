package term

import (
	"testing"

	"systemsnake/internal/domain"
	"systemsnake/internal/render"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawBoardPlacesCells(t *testing.T) {
	screen := newSimScreen(t)

	view := render.View{
		Width:  20,
		Height: 20,
		Snake:  []domain.Coord{{X: 10, Y: 10}, {X: 10, Y: 11}},
		Food:   domain.Coord{X: 5, Y: 5},
	}
	quads := render.Compose(view, nil, nil)

	DrawBoard(screen, view.Width, view.Height, quads)
	screen.Show()

	if got := runeAt(screen, boardLeft+5*cellColumns, boardTop+5); got != '◆' {
		t.Errorf("food cell = %q, want %q", got, '◆')
	}
	for i := 0; i < cellColumns; i++ {
		if got := runeAt(screen, boardLeft+10*cellColumns+i, boardTop+10); got != '█' {
			t.Errorf("head column %d = %q, want %q", i, got, '█')
		}
	}
	if got := runeAt(screen, boardLeft-1, boardTop-1); got != '┌' {
		t.Errorf("corner = %q, want %q", got, '┌')
	}
	if got := runeAt(screen, boardLeft, boardTop); got == '█' {
		t.Errorf("empty cell drawn as snake")
	}
}

func TestDrawStatusGameOver(t *testing.T) {
	screen := newSimScreen(t)

	state := domain.NewGameState(domain.DefaultGameConfig(), 0, nil)
	state.Phase = domain.PhaseGameOver
	state.Score = 30

	DrawStatus(screen, state, "")
	screen.Show()

	y := boardTop + state.Field.Height + 1
	want := "FATAL_ERR"
	for i, r := range want {
		if got := runeAt(screen, boardLeft+i, y); got != r {
			t.Fatalf("status line = %q at %d, want %q", got, i, r)
		}
	}
}
