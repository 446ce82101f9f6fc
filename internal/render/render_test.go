package render

import (
	"math/rand"
	"reflect"
	"testing"

	"systemsnake/internal/domain"
)

func testView() View {
	return View{
		Width:  20,
		Height: 20,
		Snake:  []domain.Coord{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}},
		Food:   domain.Coord{X: 5, Y: 5},
	}
}

func countKind(quads []Quad, kind Kind) int {
	n := 0
	for _, q := range quads {
		if q.Kind == kind {
			n++
		}
	}
	return n
}

func TestComposeIsIdempotentWithoutGlitch(t *testing.T) {
	trail := []TrailMark{{Cell: domain.Coord{X: 10, Y: 13}, Alpha: 0.5}}

	a := Compose(testView(), trail, nil)
	b := Compose(testView(), trail, nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Compose differs for identical input")
	}
	if countKind(a, KindFoodGlitch)+countKind(a, KindBodyGlitch) != 0 {
		t.Errorf("glitch marks produced without a glitch source")
	}
}

func TestComposeLayers(t *testing.T) {
	quads := Compose(testView(), []TrailMark{{Cell: domain.Coord{X: 10, Y: 13}, Alpha: 0.8}}, nil)

	if quads[0].Kind != KindBackground {
		t.Fatalf("first quad = %v, want background", quads[0].Kind)
	}
	if got := countKind(quads, KindGridLine); got != 42 {
		t.Errorf("grid lines = %d, want 42", got)
	}
	if got := countKind(quads, KindHead); got != 1 {
		t.Errorf("heads = %d, want 1", got)
	}
	if got := countKind(quads, KindBody); got != 2 {
		t.Errorf("body cells = %d, want 2", got)
	}

	var head, body, food, trail Quad
	for _, q := range quads {
		switch q.Kind {
		case KindHead:
			head = q
		case KindBody:
			body = q
		case KindFood:
			food = q
		case KindTrail:
			trail = q
		}
	}
	if head.Color == body.Color {
		t.Errorf("head and body share color %v", head.Color)
	}
	if food.X != 102 || food.Y != 102 || food.W != 16 {
		t.Errorf("food quad = %+v, want inset 2 at (5,5)", food)
	}
	if trail.Color.A != 204 {
		t.Errorf("trail alpha = %d, want 204", trail.Color.A)
	}
}

func TestComposeGlitchIsSeedable(t *testing.T) {
	a := Compose(testView(), nil, rand.New(rand.NewSource(7)))
	b := Compose(testView(), nil, rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different frames")
	}
}

func TestTrailFadesAndPrunes(t *testing.T) {
	trail := NewTrail()
	trail.Add(domain.Coord{X: 1, Y: 1})

	for i := 0; i < 7; i++ {
		trail.Fade()
	}
	if trail.Len() != 1 {
		t.Fatalf("trail pruned too early after 7 fades")
	}
	trail.Fade()
	if trail.Len() != 0 {
		t.Errorf("trail length = %d after 8 fades, want 0", trail.Len())
	}
}

func TestRendererFadesOncePerStateChange(t *testing.T) {
	state := domain.NewGameState(domain.DefaultGameConfig(), 0, rand.New(rand.NewSource(1)))
	r := NewRenderer(nil)
	r.Vacated(domain.Coord{X: 10, Y: 13}, 1)

	first := r.Frame(state)
	second := r.Frame(state)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated frame for unchanged state differs")
	}
	if got := r.Trail().Marks()[0].Alpha; got > TrailStartAlpha-TrailFadeStep+1e-9 || got < TrailStartAlpha-TrailFadeStep-1e-9 {
		t.Errorf("trail alpha = %v, want exactly one fade", got)
	}

	state.Start()
	state.Tick()
	r.Frame(state)
	if got := r.Trail().Marks()[0].Alpha; got > TrailStartAlpha-2*TrailFadeStep+1e-9 {
		t.Errorf("trail alpha = %v, want two fades", got)
	}
}

func TestRendererDoesNotMutateState(t *testing.T) {
	state := domain.NewGameState(domain.DefaultGameConfig(), 0, rand.New(rand.NewSource(2)))
	before := state.Copy()

	r := NewRenderer(rand.New(rand.NewSource(3)))
	for i := 0; i < 10; i++ {
		r.Frame(state)
	}

	if !reflect.DeepEqual(before.Snake.Points, state.Snake.Points) || before.Food != state.Food {
		t.Errorf("rendering changed game state")
	}
}

func TestRendererClearsTrailOnReset(t *testing.T) {
	r := NewRenderer(nil)
	r.Vacated(domain.Coord{X: 1, Y: 1}, 5)
	r.Vacated(domain.Coord{X: 1, Y: 2}, 1)
	if r.Trail().Len() != 1 {
		t.Errorf("trail length = %d, want 1 after reset", r.Trail().Len())
	}
}

func TestComposeSkipsFoodWhenWon(t *testing.T) {
	view := testView()
	view.Food = view.Snake[0]
	view.Won = true

	for seed := int64(0); seed < 20; seed++ {
		quads := Compose(view, nil, rand.New(rand.NewSource(seed)))
		if n := countKind(quads, KindFood) + countKind(quads, KindFoodGlitch); n != 0 {
			t.Fatalf("seed %d: %d food quads on a won board, want 0", seed, n)
		}
		if countKind(quads, KindHead) != 1 {
			t.Fatalf("seed %d: head not drawn", seed)
		}
	}
}
