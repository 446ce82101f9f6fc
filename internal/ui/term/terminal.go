// Package term is a terminal frontend drawn with tcell. It shares the board
// composition with the graphical frontend and maps keys onto the same app
// commands.
package term

import (
	"context"
	"errors"
	"sync"

	"systemsnake/internal/app"
	"systemsnake/internal/domain"
	"systemsnake/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// ErrQuit is returned by Run when the player asked to leave.
var ErrQuit = errors.New("quit requested")

// Game is the part of app.App the terminal drives.
type Game interface {
	Events() <-chan app.AppEvent
	GetState() *domain.GameState
	SendSteer(dir domain.Direction) error
	Toggle()
	Reset()
}

type Terminal struct {
	screen   tcell.Screen
	renderer *render.Renderer
	game     Game

	message string

	drawMu sync.Mutex
}

// New wraps an initialized screen.
func New(screen tcell.Screen, renderer *render.Renderer, game Game) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: renderer,
		game:     game,
	}
}

// Run draws the game and feeds keys to it until ctx is done or the player
// quits.
func (t *Terminal) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	t.draw()

	g.Go(func() error {
		return t.pollLoop()
	})
	g.Go(func() error {
		return t.eventLoop(gctx)
	})

	return g.Wait()
}

func (t *Terminal) pollLoop() error {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := t.handleKey(ev); err != nil {
				return err
			}

		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()

		case *tcell.EventInterrupt:
			// Only posted by the event loop on its way out.
			return nil
		}
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) error {
	cmd := MapKey(ev)

	switch cmd.Kind {
	case CommandSteer:
		if err := t.game.SendSteer(cmd.Direction); err != nil {
			glog.Warningf("Failed to steer: %v", err)
		}

	case CommandToggle:
		t.game.Toggle()

	case CommandReset:
		t.game.Reset()

	case CommandQuit:
		return ErrQuit
	}

	return nil
}

func (t *Terminal) eventLoop(ctx context.Context) error {
	events := t.game.Events()

	for {
		select {
		case <-ctx.Done():
			t.wakePoll()
			return nil

		case event, ok := <-events:
			if !ok {
				t.wakePoll()
				return nil
			}
			if event.Type == app.AppEventQuit {
				t.wakePoll()
				return ErrQuit
			}
			t.handleAppEvent(event)
		}
	}
}

// wakePoll unblocks PollEvent so the poll loop returns.
func (t *Terminal) wakePoll() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (t *Terminal) handleAppEvent(event app.AppEvent) {
	switch event.Type {
	case app.AppEventTick:
		if payload, ok := event.Payload.(app.TickPayload); ok {
			glog.V(2).Infof("Tick: order=%d vacated=%v", payload.StateOrder, payload.Vacated)
			if payload.HasVacated {
				t.renderer.Vacated(payload.Vacated, payload.StateOrder)
			}
		}

	case app.AppEventFoodEaten:
		if payload, ok := event.Payload.(app.FoodEatenPayload); ok {
			glog.V(2).Infof("Food eaten: score=%d next=%v tick=%v", payload.Score, payload.Food, payload.TickPeriod)
		}

	case app.AppEventGameOver:
		if payload, ok := event.Payload.(app.GameOverPayload); ok {
			glog.Infof("Game over: cause=%v score=%d best=%d", payload.Cause, payload.Score, payload.BestScore)
		}
		t.draw()

	case app.AppEventError:
		if payload, ok := event.Payload.(app.ErrorPayload); ok {
			glog.Errorf("App error: %s", payload.Message)
			t.drawMu.Lock()
			t.message = payload.Message
			t.drawMu.Unlock()
		}

	case app.AppEventStateUpdated, app.AppEventPhaseChanged:
		t.draw()
	}
}

func (t *Terminal) draw() {
	state := t.game.GetState()
	if state == nil {
		return
	}
	quads := t.renderer.Frame(state)

	t.drawMu.Lock()
	defer t.drawMu.Unlock()

	t.screen.Clear()
	DrawStatus(t.screen, state, t.message)
	DrawBoard(t.screen, state.Field.Width, state.Field.Height, quads)
	t.screen.Show()
}
