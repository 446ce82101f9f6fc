package app

import (
	"context"
	"testing"
	"time"

	"systemsnake/internal/domain"
	"systemsnake/internal/storage"
)

func newTestApp(t *testing.T, cfg *domain.GameConfig, store storage.Store) *App {
	t.Helper()
	a, err := NewApp(Config{Game: cfg, Store: store, Seed: 42})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(a.Stop)
	return a
}

func waitFor(t *testing.T, a *App, want AppEventType) AppEvent {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case ev := <-a.Events():
			if ev.Type == want {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for event %d", want)
			return AppEvent{}
		}
	}
}

func waitPhase(t *testing.T, a *App, want domain.Phase) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if a.GetState().Phase == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("phase = %v, want %v", a.GetState().Phase, want)
}

func fastConfig() *domain.GameConfig {
	cfg := domain.DefaultGameConfig()
	cfg.TickPeriod = 2 * time.Millisecond
	cfg.TickStep = time.Millisecond
	cfg.MinTickPeriod = time.Millisecond
	return cfg
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := domain.DefaultGameConfig()
	cfg.InitialSnake = nil
	if _, err := NewApp(Config{Game: cfg}); err == nil {
		t.Fatalf("NewApp with empty snake succeeded")
	}
}

func TestAppStartsPaused(t *testing.T) {
	a := newTestApp(t, fastConfig(), nil)

	time.Sleep(20 * time.Millisecond)
	state := a.GetState()
	if state.Phase != domain.PhasePaused {
		t.Fatalf("phase = %v, want paused", state.Phase)
	}
	if state.StateOrder != 0 {
		t.Errorf("paused session ticked %d times", state.StateOrder)
	}
}

func TestSessionRunsIntoWall(t *testing.T) {
	a := newTestApp(t, fastConfig(), nil)

	a.Toggle()
	ev := waitFor(t, a, AppEventGameOver)

	payload, ok := ev.Payload.(GameOverPayload)
	if !ok {
		t.Fatalf("payload type %T", ev.Payload)
	}
	if payload.Cause != domain.CauseWall && payload.Cause != domain.CauseSelf {
		t.Errorf("cause = %v, want a fatal collision", payload.Cause)
	}
	if a.GetState().Phase != domain.PhaseGameOver {
		t.Errorf("phase = %v, want game over", a.GetState().Phase)
	}
}

func TestSessionPauseStopsTicks(t *testing.T) {
	cfg := fastConfig()
	cfg.TickPeriod = 20 * time.Millisecond
	cfg.InitialFood = domain.Coord{X: 0, Y: 19}
	a := newTestApp(t, cfg, nil)

	a.StartGame()
	waitPhase(t, a, domain.PhaseRunning)
	a.Pause()
	waitPhase(t, a, domain.PhasePaused)

	order := a.GetState().StateOrder
	time.Sleep(80 * time.Millisecond)
	if got := a.GetState().StateOrder; got != order {
		t.Errorf("state advanced while paused: %d -> %d", order, got)
	}
}

func TestSessionResetFromGameOver(t *testing.T) {
	store := storage.NewMemoryStore(0)
	cfg := fastConfig()
	cfg.TickPeriod = 30 * time.Millisecond
	cfg.MinTickPeriod = 30 * time.Millisecond
	cfg.TickStep = 0
	cfg.InitialFood = domain.Coord{X: 10, Y: 9}
	a := newTestApp(t, cfg, store)

	a.Toggle()
	waitFor(t, a, AppEventGameOver)

	best := a.GetState().BestScore
	if best < 10 {
		t.Fatalf("best = %d, want at least 10", best)
	}
	if saved, _ := store.Load(); saved != best {
		t.Errorf("stored best = %d, want %d", saved, best)
	}

	a.Reset()
	a.Pause()
	waitPhase(t, a, domain.PhasePaused)

	state := a.GetState()
	if state.BestScore != best {
		t.Errorf("best after reset = %d, want %d", state.BestScore, best)
	}
	if state.Score != 0 {
		t.Errorf("score after reset = %d, want 0", state.Score)
	}
}

func TestSessionLoadsBestFromStore(t *testing.T) {
	a := newTestApp(t, fastConfig(), storage.NewMemoryStore(70))
	if best := a.GetState().BestScore; best != 70 {
		t.Errorf("best = %d, want 70", best)
	}
}

func TestInputQuitNotifiesFrontends(t *testing.T) {
	a := newTestApp(t, fastConfig(), nil)

	a.Input() <- InputEvent{Type: InputStart}
	waitPhase(t, a, domain.PhaseRunning)
	a.Input() <- InputEvent{Type: InputQuit}

	waitFor(t, a, AppEventQuit)

	select {
	case <-a.session.Done():
	case <-time.After(time.Second):
		t.Fatal("session still running after quit")
	}
}

func TestInputChannelSteers(t *testing.T) {
	cfg := fastConfig()
	cfg.TickPeriod = 50 * time.Millisecond
	cfg.MinTickPeriod = 50 * time.Millisecond
	a := newTestApp(t, cfg, nil)

	a.Input() <- InputEvent{Type: InputStart}
	waitPhase(t, a, domain.PhaseRunning)
	a.Input() <- InputEvent{Type: InputSteer, Payload: domain.DirectionLeft}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if a.GetState().Heading() == domain.DirectionLeft {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("heading = %v, want left", a.GetState().Heading())
}
