package graphics

import (
	"fmt"
	"log"
	"sync"

	"systemsnake/internal/audio"
	"systemsnake/internal/domain"
	"systemsnake/internal/ui/types"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 760
)

type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	state  *domain.GameState
	player *audio.Player

	// Status line; set from the app event goroutine, read in Draw.
	message  string
	errorMsg string

	dataMu sync.RWMutex

	eventCh chan types.UIEvent
}

func NewEngine(player *audio.Player) *Engine {
	types.InitFonts()

	return &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		currentScreen: types.ScreenGame,
		screenMap:     make(map[types.ScreenType]types.Screen),
		player:        player,
		eventCh:       make(chan types.UIEvent, 100),
	}
}

func (e *Engine) RegisterScreens(game types.Screen) {
	e.screenMap[types.ScreenGame] = game
	game.OnEnter()
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("SYSTEM.SNAKE_")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	if e.player != nil {
		e.player.Update()
	}

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	event := screen.Update()

	e.handleEvent(event)

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(GameStateUpdater); ok {
		e.dataMu.RLock()
		updater.SetState(e.state)
		e.dataMu.RUnlock()
	}

	if updater, ok := currentScreen.(StatusUpdater); ok {
		e.dataMu.RLock()
		updater.SetStatus(e.message, e.errorMsg)
		e.dataMu.RUnlock()
	}

	if updater, ok := currentScreen.(AudioUpdater); ok {
		if e.player != nil {
			updater.SetAudio(e.player.Playlist(), e.player.Loading())
		} else {
			updater.SetAudio(nil, false)
		}
	}

	currentScreen.Draw(screen)
}

// Layout keeps a fixed logical canvas; ebiten scales it to the window.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) SetState(state *domain.GameState) {
	e.dataMu.Lock()
	e.state = state
	e.dataMu.Unlock()
}

func (e *Engine) RecordVacated(cell domain.Coord, stateOrder int64) {
	if r, ok := e.screenMap[e.currentScreen].(TrailRecorder); ok {
		r.RecordVacated(cell, stateOrder)
	}
}

// SetError replaces the status line with an error. Safe from any goroutine.
func (e *Engine) SetError(err string) {
	e.dataMu.Lock()
	e.errorMsg = err
	e.message = ""
	e.dataMu.Unlock()
}

// SetMessage replaces the status line with a notice. Safe from any goroutine.
func (e *Engine) SetMessage(msg string) {
	e.dataMu.Lock()
	e.message = msg
	e.errorMsg = ""
	e.dataMu.Unlock()
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventTrackToggle, types.UIEventTrackNext, types.UIEventTrackPrev, types.UIEventTrackMute:
		e.handleTrackEvent(event.Type)

	case types.UIEventCopyScore:
		e.copyScore()

	case types.UIEventQuit:
		select {
		case e.eventCh <- event:
		default:
		}

	default:
		select {
		case e.eventCh <- event:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
}

func (e *Engine) handleTrackEvent(t types.UIEventType) {
	if e.player == nil {
		return
	}
	playlist := e.player.Playlist()

	switch t {
	case types.UIEventTrackToggle:
		playlist.TogglePlay()
	case types.UIEventTrackNext:
		playlist.Next()
	case types.UIEventTrackPrev:
		playlist.Previous()
	case types.UIEventTrackMute:
		playlist.ToggleMute()
	}
}

func (e *Engine) copyScore() {
	e.dataMu.RLock()
	state := e.state
	e.dataMu.RUnlock()
	if state == nil {
		return
	}

	dump := fmt.Sprintf("SCORE_DUMP: %d", state.Score)
	if err := clipboard.WriteAll(dump); err != nil {
		log.Printf("Failed to copy score: %v", err)
		e.SetError("CLIPBOARD_UNAVAILABLE")
		return
	}
	e.SetMessage("DUMP COPIED")
}

type GameStateUpdater interface {
	SetState(state *domain.GameState)
}

type AudioUpdater interface {
	SetAudio(playlist *audio.Playlist, loading bool)
}

type TrailRecorder interface {
	RecordVacated(cell domain.Coord, stateOrder int64)
}

type StatusUpdater interface {
	SetStatus(message, errorMsg string)
}
