package domain

import (
	"log"
	"math/rand"
	"sync"
	"time"
)

type Phase int

const (
	PhasePaused   Phase = 0
	PhaseRunning  Phase = 1
	PhaseGameOver Phase = 2
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "PAUSED"
	case PhaseRunning:
		return "RUNNING"
	case PhaseGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

type GameState struct {
	StateOrder int64
	Phase      Phase
	Field      *Field
	Config     *GameConfig
	Snake      *Snake
	Food       Coord
	Score      int
	BestScore  int
	TickPeriod time.Duration
	Won        bool

	pending Direction
	rng     *rand.Rand

	mu sync.RWMutex
}

// NewGameState builds a paused game. best is the persisted best score; rng
// drives food placement and may be seeded for reproducible runs.
func NewGameState(config *GameConfig, best int, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if best < 0 {
		best = 0
	}

	cfg := config.Copy()
	return &GameState{
		Phase:      PhasePaused,
		Field:      NewField(cfg.Width, cfg.Height),
		Config:     cfg,
		Snake:      NewSnake(cfg.InitialSnake, cfg.InitialHeading),
		Food:       cfg.InitialFood,
		BestScore:  best,
		TickPeriod: cfg.TickPeriod,
		rng:        rng,
	}
}

func (gs *GameState) Copy() *GameState {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	return &GameState{
		StateOrder: gs.StateOrder,
		Phase:      gs.Phase,
		Field:      NewField(gs.Field.Width, gs.Field.Height),
		Config:     gs.Config.Copy(),
		Snake:      gs.Snake.Copy(),
		Food:       gs.Food,
		Score:      gs.Score,
		BestScore:  gs.BestScore,
		TickPeriod: gs.TickPeriod,
		Won:        gs.Won,
		pending:    gs.pending,
	}
}

func (gs *GameState) GetPhase() Phase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Phase
}

func (gs *GameState) GetTickPeriod() time.Duration {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.TickPeriod
}

func (gs *GameState) GetScore() (score, best int) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Score, gs.BestScore
}

// Heading is the direction the next tick will move in: the pending steer if
// one is queued, otherwise the committed heading.
func (gs *GameState) Heading() Direction {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	if gs.pending != DirectionNone {
		return gs.pending
	}
	return gs.Snake.HeadDirection
}

// Steer queues a heading for the next tick. Requests outside Running, and the
// exact reverse of the heading the snake last moved in, are rejected. Later
// valid requests overwrite earlier ones.
func (gs *GameState) Steer(dir Direction) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Phase != PhaseRunning || !dir.Valid() {
		return false
	}
	if dir.IsOpposite(gs.Snake.HeadDirection) {
		return false
	}
	gs.pending = dir
	return true
}

func (gs *GameState) Start() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Phase != PhasePaused {
		return false
	}
	gs.Phase = PhaseRunning
	return true
}

func (gs *GameState) Pause() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Phase != PhaseRunning {
		return false
	}
	gs.Phase = PhasePaused
	return true
}

// Toggle is the single pause/resume/reset control.
func (gs *GameState) Toggle() Phase {
	switch gs.GetPhase() {
	case PhaseRunning:
		gs.Pause()
	case PhasePaused:
		gs.Start()
	case PhaseGameOver:
		gs.Reset()
	}
	return gs.GetPhase()
}

// Reset restarts a finished game. BestScore is kept.
func (gs *GameState) Reset() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Phase != PhaseGameOver {
		return false
	}

	cfg := gs.Config
	gs.Snake = NewSnake(cfg.InitialSnake, cfg.InitialHeading)
	gs.Score = 0
	gs.TickPeriod = cfg.TickPeriod
	gs.pending = DirectionNone
	gs.Won = false
	gs.StateOrder = 0

	food, err := PlaceFood(gs.Field, gs.Snake.Occupied(), gs.rng)
	if err != nil {
		log.Printf("Failed to place food on reset, using configured cell %v: %v", cfg.InitialFood, err)
		food = cfg.InitialFood
	}
	gs.Food = food
	gs.Phase = PhaseRunning
	return true
}

func (gs *GameState) GetSnakeCells() []Coord {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	result := make([]Coord, len(gs.Snake.Points))
	copy(result, gs.Snake.Points)
	return result
}
