package app

import (
	"context"
	"log"
	"time"

	"systemsnake/internal/domain"
	"systemsnake/internal/storage"
)

type command struct {
	input     InputEventType
	direction domain.Direction
}

// Session is the single owner of a game's mutable state. Commands and ticks
// are handled on one goroutine, so steering never races the simulation.
type Session struct {
	state   *domain.GameState
	store   storage.Store
	eventCh chan<- AppEvent
	cmdCh   chan command

	ticker *time.Ticker
	period time.Duration

	done chan struct{}
}

func NewSession(state *domain.GameState, store storage.Store, eventCh chan<- AppEvent) *Session {
	return &Session{
		state:   state,
		store:   store,
		eventCh: eventCh,
		cmdCh:   make(chan command, 64),
		done:    make(chan struct{}),
	}
}

func (s *Session) Start(ctx context.Context) {
	go s.run(ctx)
}

// Done is closed once the session goroutine has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Submit(input InputEventType, dir domain.Direction) bool {
	select {
	case s.cmdCh <- command{input: input, direction: dir}:
		return true
	default:
		log.Println("Session: command queue full, dropping input")
		return false
	}
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	defer s.stopTicker()

	for {
		var tickC <-chan time.Time
		if s.ticker != nil {
			tickC = s.ticker.C
		}

		select {
		case <-ctx.Done():
			return

		case cmd := <-s.cmdCh:
			s.handleCommand(cmd)

		case <-tickC:
			s.doTick()
		}

		s.syncTicker()
	}
}

func (s *Session) handleCommand(cmd command) {
	before := s.state.GetPhase()

	switch cmd.input {
	case InputSteer:
		s.state.Steer(cmd.direction)
		return

	case InputStart:
		s.state.Start()

	case InputPause:
		s.state.Pause()

	case InputToggle:
		if before == domain.PhaseGameOver {
			s.stopTicker()
		}
		s.state.Toggle()

	case InputReset:
		if before != domain.PhaseGameOver {
			return
		}
		s.stopTicker()
		s.state.Reset()
	}

	after := s.state.GetPhase()
	if after != before {
		log.Printf("Session: %v -> %v", before, after)
		s.emit(AppEvent{Type: AppEventPhaseChanged, Payload: PhasePayload{Phase: after}})
		s.emit(AppEvent{Type: AppEventStateUpdated})
	}
}

func (s *Session) doTick() {
	result := s.state.Tick()
	if !result.Moved && !result.GameOver {
		return
	}

	if result.Moved {
		s.emit(AppEvent{
			Type: AppEventTick,
			Payload: TickPayload{
				Vacated:    result.Vacated,
				HasVacated: result.HasVacated,
				StateOrder: s.state.Copy().StateOrder,
			},
		})
	}

	if result.Ate {
		snapshot := s.state.Copy()
		s.emit(AppEvent{
			Type: AppEventFoodEaten,
			Payload: FoodEatenPayload{
				Score:      result.Score,
				Food:       snapshot.Food,
				TickPeriod: result.TickPeriod,
			},
		})
	}

	if result.NewBest {
		s.persistBest(result.BestScore)
	}

	if result.GameOver {
		log.Printf("Session: game over (%v), score=%d best=%d", result.Cause, result.Score, result.BestScore)
		s.emit(AppEvent{
			Type: AppEventGameOver,
			Payload: GameOverPayload{
				Cause:     result.Cause,
				Score:     result.Score,
				BestScore: result.BestScore,
				Won:       result.Cause == domain.CauseGridFull,
			},
		})
	}

	s.emit(AppEvent{Type: AppEventStateUpdated})
}

func (s *Session) persistBest(best int) {
	s.emit(AppEvent{Type: AppEventNewBest, Payload: NewBestPayload{BestScore: best}})

	if s.store == nil {
		return
	}
	if err := s.store.Save(best); err != nil {
		log.Printf("Failed to save best score: %v", err)
		s.emit(AppEvent{Type: AppEventError, Payload: ErrorPayload{Message: err.Error()}})
	}
}

// syncTicker keeps exactly one ticker alive while running, at the current
// tick period.
func (s *Session) syncTicker() {
	if s.state.GetPhase() != domain.PhaseRunning {
		s.stopTicker()
		return
	}

	period := s.state.GetTickPeriod()
	if s.ticker == nil {
		s.ticker = time.NewTicker(period)
		s.period = period
		return
	}
	if period != s.period {
		s.ticker.Reset(period)
		s.period = period
	}
}

func (s *Session) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
		s.period = 0
	}
}

func (s *Session) emit(event AppEvent) {
	select {
	case s.eventCh <- event:
	default:
		log.Println("Event channel full, dropping event")
	}
}
