package render

import (
	"math/rand"
	"sync"

	"systemsnake/internal/domain"
)

type frameKey struct {
	order  int64
	head   domain.Coord
	food   domain.Coord
	length int
	won    bool
}

// Renderer owns the cosmetic state of the board: the fading trail, the glitch
// random source, and the last composed frame. It never touches game state.
//
// A frame is recomposed, and the trail faded, only when the game state
// changes. Frontends that draw every display frame get the same quads until
// the next tick.
type Renderer struct {
	trail  *Trail
	glitch *rand.Rand

	last        []Quad
	lastKey     frameKey
	hasLast     bool
	lastVacated int64

	mu sync.Mutex
}

// NewRenderer creates a renderer. A nil glitch source disables glitch marks.
func NewRenderer(glitch *rand.Rand) *Renderer {
	return &Renderer{
		trail:  NewTrail(),
		glitch: glitch,
	}
}

func (r *Renderer) Trail() *Trail {
	return r.trail
}

// Vacated records a cell the tail just left. stateOrder restarts from zero on
// reset, which also drops the previous game's trail.
func (r *Renderer) Vacated(cell domain.Coord, stateOrder int64) {
	r.mu.Lock()
	if stateOrder < r.lastVacated {
		r.trail.Clear()
	}
	r.lastVacated = stateOrder
	r.mu.Unlock()

	r.trail.Add(cell)
}

func (r *Renderer) Frame(state *domain.GameState) []Quad {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := frameKey{
		order:  state.StateOrder,
		head:   state.Snake.Head(),
		food:   state.Food,
		length: state.Snake.Length(),
		won:    state.Won,
	}
	if r.hasLast && key == r.lastKey {
		return r.last
	}
	if r.hasLast && key.order < r.lastKey.order {
		r.trail.Clear()
	}

	r.last = Compose(ViewOf(state), r.trail.Marks(), r.glitch)
	r.lastKey = key
	r.hasLast = true
	r.trail.Fade()
	return r.last
}
