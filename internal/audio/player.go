package audio

import (
	"bytes"
	"context"
	"log"
	"sync"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const SampleRate = 44100

// Stream is the slice of *audio.Player the widget drives.
type Stream interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Decoder turns downloaded track bytes into a playable stream.
type Decoder func(data []byte) (Stream, error)

// NewMP3Decoder decodes tracks with ebiten's mp3 package into players on ctx.
func NewMP3Decoder(ctx *ebitenaudio.Context) Decoder {
	return func(data []byte) (Stream, error) {
		decoded, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		player, err := ctx.NewPlayer(decoded)
		if err != nil {
			return nil, err
		}
		return player, nil
	}
}

type trackState int

const (
	trackIdle trackState = iota
	trackLoading
	trackReady
	trackFailed
)

// Player keeps the audio output in line with a Playlist. Update is called once
// per frame from the UI loop; downloads run in the background.
type Player struct {
	playlist *Playlist
	fetcher  *Fetcher
	decode   Decoder

	states []trackState
	data   [][]byte

	stream      Stream
	streamIndex int
	started     bool

	ctx context.Context
	mu  sync.Mutex
}

func NewPlayer(ctx context.Context, playlist *Playlist, fetcher *Fetcher, decode Decoder) *Player {
	n := len(playlist.Tracks())
	return &Player{
		playlist:    playlist,
		fetcher:     fetcher,
		decode:      decode,
		states:      make([]trackState, n),
		data:        make([][]byte, n),
		streamIndex: -1,
		ctx:         ctx,
	}
}

func (p *Player) Playlist() *Playlist {
	return p.playlist
}

// Prefetch starts downloading all tracks in the background.
func (p *Player) Prefetch() {
	tracks := p.playlist.Tracks()

	p.mu.Lock()
	for i := range p.states {
		if p.states[i] == trackIdle {
			p.states[i] = trackLoading
		}
	}
	p.mu.Unlock()

	go func() {
		results, err := p.fetcher.Prefetch(p.ctx, tracks)
		if err != nil {
			log.Printf("Track prefetch cancelled: %v", err)
		}
		for i, res := range results {
			p.finishLoad(i, res.Data, res.Err)
		}
	}()
}

func (p *Player) loadLocked(index int) {
	p.states[index] = trackLoading

	url := p.playlist.Tracks()[index].URL
	go func() {
		data, err := p.fetcher.Fetch(p.ctx, url)
		p.finishLoad(index, data, err)
	}()
}

func (p *Player) finishLoad(index int, data []byte, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil || data == nil {
		if err != nil {
			log.Printf("Failed to load track %d: %v", index, err)
		}
		p.states[index] = trackFailed
		return
	}
	p.data[index] = data
	p.states[index] = trackReady
}

// Update reconciles the output with the playlist and detects track ends.
func (p *Player) Update() {
	p.mu.Lock()
	defer p.mu.Unlock()

	index := p.playlist.Index()
	wantPlay := p.playlist.IsPlaying()

	if p.stream != nil && p.streamIndex != index {
		p.closeStreamLocked()
	}

	if p.stream != nil {
		p.applyVolumeLocked()

		if !wantPlay {
			if p.stream.IsPlaying() {
				p.stream.Pause()
			}
			p.started = false
			return
		}

		if p.started && !p.stream.IsPlaying() {
			p.closeStreamLocked()
			p.playlist.Ended()
			return
		}

		if !p.started {
			p.stream.Play()
			p.started = true
		}
		return
	}

	if !wantPlay {
		return
	}

	switch p.states[index] {
	case trackIdle:
		p.loadLocked(index)

	case trackFailed:
		p.playlist.Fail()
		// Let the user retry the same track later.
		p.states[index] = trackIdle

	case trackReady:
		stream, err := p.decode(p.data[index])
		if err != nil {
			log.Printf("Failed to decode track %d: %v", index, err)
			p.states[index] = trackIdle
			p.data[index] = nil
			p.playlist.Fail()
			return
		}
		p.stream = stream
		p.streamIndex = index
		p.started = false
		p.applyVolumeLocked()
		p.stream.Play()
		p.started = true
	}
}

func (p *Player) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.playlist.Index()
	return p.states[idx] == trackLoading
}

func (p *Player) applyVolumeLocked() {
	if p.playlist.IsMuted() {
		p.stream.SetVolume(0)
	} else {
		p.stream.SetVolume(1)
	}
}

func (p *Player) closeStreamLocked() {
	if err := p.stream.Close(); err != nil {
		log.Printf("Failed to close track stream: %v", err)
	}
	p.stream = nil
	p.streamIndex = -1
	p.started = false
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stream != nil {
		p.closeStreamLocked()
	}
}
