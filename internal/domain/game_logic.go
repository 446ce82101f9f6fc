package domain

import (
	"errors"
	"time"
)

type DeathCause int

const (
	CauseNone     DeathCause = 0
	CauseWall     DeathCause = 1
	CauseSelf     DeathCause = 2
	CauseGridFull DeathCause = 3
)

func (c DeathCause) String() string {
	switch c {
	case CauseWall:
		return "boundary violation"
	case CauseSelf:
		return "self collision"
	case CauseGridFull:
		return "grid full"
	}
	return "none"
}

type TickResult struct {
	Moved      bool
	Ate        bool
	NewBest    bool
	GameOver   bool
	Cause      DeathCause
	Vacated    Coord
	HasVacated bool
	Score      int
	BestScore  int
	TickPeriod time.Duration
}

// Tick advances the simulation by one step. It does nothing unless the game
// is running. Fatal moves leave the snake as it was before the tick.
func (gs *GameState) Tick() *TickResult {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	result := &TickResult{
		Score:      gs.Score,
		BestScore:  gs.BestScore,
		TickPeriod: gs.TickPeriod,
	}

	if gs.Phase != PhaseRunning {
		return result
	}

	gs.StateOrder++

	heading := gs.Snake.HeadDirection
	if gs.pending != DirectionNone {
		heading = gs.pending
	}

	newHead := gs.Field.Move(gs.Snake.Head(), heading)

	if !gs.Field.Contains(newHead) {
		gs.endUnlocked(result, CauseWall)
		return result
	}
	if gs.Snake.Occupies(newHead) {
		gs.endUnlocked(result, CauseSelf)
		return result
	}

	gs.Snake.HeadDirection = heading
	gs.pending = DirectionNone

	ate := newHead.Equals(gs.Food)
	vacated, hasVacated := gs.Snake.Advance(newHead, ate)
	result.Moved = true
	result.Vacated = vacated
	result.HasVacated = hasVacated

	if ate {
		result.Ate = true
		gs.Score += gs.Config.ScoreIncrement
		if gs.Score > gs.BestScore {
			gs.BestScore = gs.Score
			result.NewBest = true
		}

		gs.TickPeriod -= gs.Config.TickStep
		if gs.TickPeriod < gs.Config.MinTickPeriod {
			gs.TickPeriod = gs.Config.MinTickPeriod
		}

		food, err := PlaceFood(gs.Field, gs.Snake.Occupied(), gs.rng)
		if errors.Is(err, ErrGridFull) {
			gs.Won = true
			gs.endUnlocked(result, CauseGridFull)
		} else {
			gs.Food = food
		}
	}

	result.Score = gs.Score
	result.BestScore = gs.BestScore
	result.TickPeriod = gs.TickPeriod
	return result
}

func (gs *GameState) endUnlocked(result *TickResult, cause DeathCause) {
	gs.Phase = PhaseGameOver
	gs.pending = DirectionNone
	result.GameOver = true
	result.Cause = cause
}
