package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"systemsnake/internal/domain"
	"systemsnake/internal/storage"
)

var ErrInvalidConfig = errors.New("invalid game config")

type Config struct {
	Game  *domain.GameConfig
	Store storage.Store
	// Seed fixes food placement; zero means time-seeded.
	Seed int64
}

type App struct {
	state   *domain.GameState
	session *Session
	store   storage.Store

	eventCh chan AppEvent
	inputCh chan InputEvent

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewApp(cfg Config) (*App, error) {
	gameCfg := cfg.Game
	if gameCfg == nil {
		gameCfg = domain.DefaultGameConfig()
	}
	if !gameCfg.Validate() {
		return nil, ErrInvalidConfig
	}

	best, err := storage.LoadBest(cfg.Store)
	if err != nil {
		log.Printf("Failed to load best score, starting from 0: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state := domain.NewGameState(gameCfg, best, rand.New(rand.NewSource(seed)))
	eventCh := make(chan AppEvent, 256)

	return &App{
		state:   state,
		session: NewSession(state, cfg.Store, eventCh),
		store:   cfg.Store,
		eventCh: eventCh,
		inputCh: make(chan InputEvent, 100),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	if a.cancel != nil {
		return fmt.Errorf("app already started")
	}
	a.ctx, a.cancel = context.WithCancel(ctx)

	a.session.Start(a.ctx)

	a.wg.Add(1)
	go a.inputLoop()

	score, best := a.state.GetScore()
	log.Printf("App started: score=%d best=%d tick=%v", score, best, a.state.GetTickPeriod())

	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
		<-a.session.Done()
	}

	a.wg.Wait()
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input() chan<- InputEvent {
	return a.inputCh
}

// GetState returns a snapshot safe to read from any goroutine.
func (a *App) GetState() *domain.GameState {
	return a.state.Copy()
}

func (a *App) SendSteer(dir domain.Direction) error {
	if !a.session.Submit(InputSteer, dir) {
		return fmt.Errorf("failed to queue steer %v", dir)
	}
	return nil
}

func (a *App) Toggle() {
	a.session.Submit(InputToggle, domain.DirectionNone)
}

func (a *App) StartGame() {
	a.session.Submit(InputStart, domain.DirectionNone)
}

func (a *App) Pause() {
	a.session.Submit(InputPause, domain.DirectionNone)
}

func (a *App) Reset() {
	a.session.Submit(InputReset, domain.DirectionNone)
}

func (a *App) inputLoop() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return

		case input := <-a.inputCh:
			a.handleInput(input)
		}
	}
}

func (a *App) handleInput(input InputEvent) {
	switch input.Type {
	case InputSteer:
		dir, ok := input.Payload.(domain.Direction)
		if !ok {
			log.Printf("Steer input without direction: %v", input.Payload)
			return
		}
		if err := a.SendSteer(dir); err != nil {
			log.Printf("Failed to steer: %v", err)
		}

	case InputToggle:
		a.Toggle()

	case InputStart:
		a.StartGame()

	case InputPause:
		a.Pause()

	case InputReset:
		a.Reset()

	case InputQuit:
		a.cancel()
		a.notifyQuit()
	}
}

func (a *App) notifyQuit() {
	select {
	case a.eventCh <- AppEvent{Type: AppEventQuit}:
	case <-time.After(time.Second):
		log.Println("Event channel full, dropping quit event")
	}
}
