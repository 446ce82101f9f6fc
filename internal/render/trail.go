package render

import (
	"sync"

	"systemsnake/internal/domain"
)

const (
	TrailStartAlpha = 0.8
	TrailFadeStep   = 0.1
)

type TrailMark struct {
	Cell  domain.Coord
	Alpha float64
}

// Trail is the list of recently vacated cells. Each Fade lowers every mark's
// opacity by TrailFadeStep and drops marks that reach zero.
type Trail struct {
	marks []TrailMark
	mu    sync.Mutex
}

func NewTrail() *Trail {
	return &Trail{}
}

func (t *Trail) Add(cell domain.Coord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.marks = append(t.marks, TrailMark{Cell: cell, Alpha: TrailStartAlpha})
}

func (t *Trail) Marks() []TrailMark {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make([]TrailMark, len(t.marks))
	copy(result, t.marks)
	return result
}

func (t *Trail) Fade() {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.marks[:0]
	for _, m := range t.marks {
		m.Alpha -= TrailFadeStep
		// Float drift leaves 0.8-8*0.1 slightly above zero.
		if m.Alpha > 1e-9 {
			kept = append(kept, m)
		}
	}
	t.marks = kept
}

func (t *Trail) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.marks = nil
}

func (t *Trail) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.marks)
}
