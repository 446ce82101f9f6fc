package app

import (
	"time"

	"systemsnake/internal/domain"
)

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventTick
	AppEventFoodEaten
	AppEventNewBest
	AppEventGameOver
	AppEventPhaseChanged
	AppEventError
	// AppEventQuit is the last event; the session is stopped and frontends
	// should exit.
	AppEventQuit
)

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputSteer InputEventType = iota
	InputToggle
	InputStart
	InputPause
	InputReset
	InputQuit
)

type TickPayload struct {
	Vacated    domain.Coord
	HasVacated bool
	StateOrder int64
}

type FoodEatenPayload struct {
	Score      int
	Food       domain.Coord
	TickPeriod time.Duration
}

type NewBestPayload struct {
	BestScore int
}

type GameOverPayload struct {
	Cause     domain.DeathCause
	Score     int
	BestScore int
	Won       bool
}

type PhasePayload struct {
	Phase domain.Phase
}

type ErrorPayload struct {
	Message string
}
