// Package audio is the background music widget: a fixed playlist of streamed
// tracks with play, pause, next, previous and mute controls. It has no
// connection to the game.
package audio

import (
	"errors"
	"sync"
)

var ErrNoTracks = errors.New("playlist has no tracks")

type Track struct {
	Title  string
	Artist string
	URL    string
}

var DefaultTracks = []Track{
	{
		Title:  "ERR_01: DRIFT",
		Artist: "SYS.ADMIN",
		URL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
	},
	{
		Title:  "ERR_02: PULSE",
		Artist: "SYS.ADMIN",
		URL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3",
	},
	{
		Title:  "ERR_03: HORIZON",
		Artist: "SYS.ADMIN",
		URL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3",
	},
}

type Playlist struct {
	tracks  []Track
	index   int
	playing bool
	muted   bool

	mu sync.RWMutex
}

func NewPlaylist(tracks []Track) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	list := make([]Track, len(tracks))
	copy(list, tracks)
	return &Playlist{tracks: list}, nil
}

func (p *Playlist) Tracks() []Track {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

func (p *Playlist) Current() Track {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracks[p.index]
}

func (p *Playlist) Index() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.index
}

func (p *Playlist) IsPlaying() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.playing
}

func (p *Playlist) IsMuted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.muted
}

func (p *Playlist) TogglePlay() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = !p.playing
	return p.playing
}

// Next and Previous wrap around and always start playback.
func (p *Playlist) Next() Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.index = (p.index + 1) % len(p.tracks)
	p.playing = true
	return p.tracks[p.index]
}

func (p *Playlist) Previous() Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.index = (p.index - 1 + len(p.tracks)) % len(p.tracks)
	p.playing = true
	return p.tracks[p.index]
}

func (p *Playlist) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

func (p *Playlist) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Ended is the end-of-track notification; it advances to the next track.
func (p *Playlist) Ended() Track {
	return p.Next()
}

// Fail records a playback failure. Playback stops and is not retried until
// the user asks for it again.
func (p *Playlist) Fail() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}
