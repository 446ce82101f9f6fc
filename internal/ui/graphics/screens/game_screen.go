package screens

import (
	"systemsnake/internal/audio"
	"systemsnake/internal/domain"
	"systemsnake/internal/render"
	"systemsnake/internal/ui/graphics/components"
	"systemsnake/internal/ui/graphics/input"
	"systemsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	boardX    = 480
	boardY    = 270
	boardSize = domain.DefaultGridSide * render.CellSize
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	overlay       *components.Overlay
	playlistPanel *components.PlaylistPanel
	diagnostics   *components.DiagnosticsPanel
	keyboard      *input.KeyboardHandler
	renderer      *render.Renderer

	scanlines *ebiten.Image

	state    *domain.GameState
	playlist *audio.Playlist
	loading  bool

	message  string
	errorMsg string
}

func NewGameScreen(ctx types.ScreenContext, renderer *render.Renderer) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(boardX, boardY, boardSize, boardSize),
		scoreboard:    components.NewScoreboard(430, 130, 500, 100),
		overlay:       components.NewOverlay(boardX, boardY, boardSize, boardSize),
		playlistPanel: components.NewPlaylistPanel(30, 130, 340, 340),
		diagnostics:   components.NewDiagnosticsPanel(30, 490, 340, 250),
		keyboard:      input.NewKeyboardHandler(),
		renderer:      renderer,
	}
}

func (s *GameScreen) SetState(state *domain.GameState) {
	s.state = state
}

func (s *GameScreen) SetAudio(playlist *audio.Playlist, loading bool) {
	s.playlist = playlist
	s.loading = loading
}

// RecordVacated feeds the fading trail.
func (s *GameScreen) RecordVacated(cell domain.Coord, stateOrder int64) {
	s.renderer.Vacated(cell, stateOrder)
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	if ev := s.playlistPanel.Update(s.playlist); ev.Type != types.UIEventNone {
		return ev
	}
	if s.playlist != nil {
		next, prev, toggle, mute := input.PlaylistKey()
		switch {
		case next:
			return types.UIEvent{Type: types.UIEventTrackNext}
		case prev:
			return types.UIEvent{Type: types.UIEventTrackPrev}
		case toggle:
			return types.UIEvent{Type: types.UIEventTrackToggle}
		case mute:
			return types.UIEvent{Type: types.UIEventTrackMute}
		}
	}

	if s.state == nil {
		return types.UIEvent{Type: types.UIEventNone}
	}
	phase := s.state.Phase

	if components.Visible(phase) {
		if ev := s.overlay.Update(phase); ev.Type != types.UIEventNone {
			return ev
		}
	}

	if input.IsTogglePressed() {
		return types.UIEvent{Type: types.UIEventToggle}
	}

	if phase == domain.PhaseGameOver && input.IsCopyPressed() {
		return types.UIEvent{Type: types.UIEventCopyScore}
	}

	if x, y, ok := input.Click(); ok && phase == domain.PhaseRunning && s.fieldRenderer.Contains(x, y) {
		return types.UIEvent{Type: types.UIEventToggle}
	}

	if dir := s.keyboard.Update(); dir != domain.DirectionNone && phase == domain.PhaseRunning {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)
	s.drawScanlines(screen)

	w, h := s.ctx.Size()

	types.DrawTextCentered(screen, "SYSTEM.SNAKE_", w/2, 24, 5, types.ColorMagenta)
	types.DrawTextCentered(screen, "[ AUDIO_MATRIX_SYNC_ESTABLISHED ]", w/2, 92, 2, types.ColorCyan)

	s.playlistPanel.Draw(screen, s.playlist, s.loading)
	s.diagnostics.Draw(screen, s.state)

	if s.state == nil {
		types.DrawTextCentered(screen, "BOOTING...", boardX+boardSize/2, boardY+boardSize/2, 2, types.ColorTextDim)
		return
	}

	s.scoreboard.Draw(screen, s.state.Score, s.state.BestScore)
	s.fieldRenderer.DrawFrame(screen, s.renderer.Frame(s.state))
	s.overlay.Draw(screen, s.state)

	s.drawFooter(screen, w, h)
}

func (s *GameScreen) drawScanlines(screen *ebiten.Image) {
	if s.scanlines == nil {
		w, h := s.ctx.Size()
		s.scanlines = ebiten.NewImage(w, h)
		for y := 2; y < h; y += 4 {
			vector.DrawFilledRect(s.scanlines, 0, float32(y), float32(w), 2, types.ColorScanline, false)
		}
	}
	screen.DrawImage(s.scanlines, nil)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	hint := "[W][A][S][D] OVERRIDE_VECTORS"
	types.DrawTextCentered(screen, hint, boardX+boardSize/2, h-40, 2, types.ColorCyan)

	if s.errorMsg != "" {
		tw, _ := types.TextSize(s.errorMsg, 1)
		types.DrawText(screen, s.errorMsg, w-tw-20, h-16, 1, types.ColorError)
	} else if s.message != "" {
		tw, _ := types.TextSize(s.message, 1)
		types.DrawText(screen, s.message, w-tw-20, h-16, 1, types.ColorSuccess)
	}
}

func (s *GameScreen) OnEnter() {}

func (s *GameScreen) OnExit() {}

// SetStatus is called from the engine's Draw with the current status line.
func (s *GameScreen) SetStatus(message, errorMsg string) {
	s.message = message
	s.errorMsg = errorMsg
}
