package components

import (
	"math"

	"systemsnake/internal/audio"
	"systemsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlaylistPanel is the music widget: current track, transport buttons and a
// mute toggle.
type PlaylistPanel struct {
	X, Y          int
	Width, Height int

	btnPrev *Button
	btnPlay *Button
	btnNext *Button
	btnMute *Button

	frame int
}

func NewPlaylistPanel(x, y, width, height int) *PlaylistPanel {
	cx := x + width/2
	row := y + 200

	return &PlaylistPanel{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		btnPrev: NewButton(cx-140, row, 60, 48, "<<", types.ColorButtonAlt),
		btnPlay: NewButton(cx-50, row-8, 100, 64, "PLAY", types.ColorButtonAlt),
		btnNext: NewButton(cx+80, row, 60, 48, ">>", types.ColorButtonAlt),
		btnMute: NewButton(cx-60, row+84, 120, 36, "MUTE", types.ColorButton),
	}
}

func (pp *PlaylistPanel) Update(playlist *audio.Playlist) types.UIEvent {
	pp.frame++

	if playlist == nil {
		return types.UIEvent{Type: types.UIEventNone}
	}

	if pp.btnPrev.Update() {
		return types.UIEvent{Type: types.UIEventTrackPrev}
	}
	if pp.btnPlay.Update() {
		return types.UIEvent{Type: types.UIEventTrackToggle}
	}
	if pp.btnNext.Update() {
		return types.UIEvent{Type: types.UIEventTrackNext}
	}
	if pp.btnMute.Update() {
		return types.UIEvent{Type: types.UIEventTrackMute}
	}
	return types.UIEvent{Type: types.UIEventNone}
}

func (pp *PlaylistPanel) Draw(screen *ebiten.Image, playlist *audio.Playlist, loading bool) {
	drawPanel(screen, pp.X, pp.Y, pp.Width, pp.Height, types.ColorCyan, types.ColorMagenta)

	pulse := uint8(128 + 127*math.Sin(float64(pp.frame)/10))
	vector.DrawFilledRect(screen, float32(pp.X), float32(pp.Y), float32(pp.Width), 4,
		types.Darken(types.ColorMagenta, float64(pulse)/255), false)

	cx := pp.X + pp.Width/2

	if playlist == nil {
		types.DrawTextCentered(screen, "AUDIO_OFFLINE", cx, pp.Y+100, 2, types.ColorTextDim)
		return
	}

	icon := float32(64)
	ix := float32(cx) - icon/2
	iy := float32(pp.Y + 24)
	vector.StrokeRect(screen, ix, iy, icon, icon, 4, types.ColorMagenta, false)
	glyph := types.ColorCyan
	if playlist.IsPlaying() && pp.frame%40 < 20 {
		glyph = types.Darken(glyph, 0.5)
	}
	types.DrawTextCentered(screen, ">_", cx, int(iy)+22, 2, glyph)

	track := playlist.Current()
	types.DrawTextCentered(screen, track.Title, cx, pp.Y+110, 2, types.ColorCyan)
	types.DrawTextCentered(screen, "["+track.Artist+"]", cx, pp.Y+140, 2, types.ColorMagenta)
	if loading {
		types.DrawTextCentered(screen, "BUFFERING...", cx, pp.Y+166, 1, types.ColorTextDim)
	}
	vector.StrokeLine(screen,
		float32(pp.X+20), float32(pp.Y+182),
		float32(pp.X+pp.Width-20), float32(pp.Y+182),
		2, types.ColorCyan, false)

	if playlist.IsPlaying() {
		pp.btnPlay.Text = "PAUSE"
	} else {
		pp.btnPlay.Text = "PLAY"
	}
	if playlist.IsMuted() {
		pp.btnMute.Text = "UNMUTE"
	} else {
		pp.btnMute.Text = "MUTE"
	}

	pp.btnPrev.Draw(screen)
	pp.btnPlay.Draw(screen)
	pp.btnNext.Draw(screen)
	pp.btnMute.Draw(screen)
}
