package audio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeStream struct {
	data    []byte
	playing bool
	volume  float64
	closed  bool
}

func (f *fakeStream) Play()               { f.playing = true }
func (f *fakeStream) Pause()              { f.playing = false }
func (f *fakeStream) IsPlaying() bool     { return f.playing }
func (f *fakeStream) SetVolume(v float64) { f.volume = v }
func (f *fakeStream) Close() error        { f.closed = true; return nil }

type fakeDecoder struct {
	streams []*fakeStream
	fail    bool
}

func (d *fakeDecoder) decode(data []byte) (Stream, error) {
	if d.fail {
		return nil, errors.New("bad mp3")
	}
	s := &fakeStream{data: data}
	d.streams = append(d.streams, s)
	return s, nil
}

func newTrackServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/one.mp3", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("track-one"))
	})
	mux.HandleFunc("/two.mp3", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("track-two"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testTracks(base string) []Track {
	return []Track{
		{Title: "one", URL: base + "/one.mp3"},
		{Title: "two", URL: base + "/two.mp3"},
		{Title: "missing", URL: base + "/missing.mp3"},
	}
}

// pump calls Update until cond holds or the deadline passes.
func pump(t *testing.T, p *Player, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		p.Update()
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not reached before deadline")
}

func TestPlayerPlaysMutesAndAdvances(t *testing.T) {
	srv := newTrackServer(t)
	playlist, _ := NewPlaylist(testTracks(srv.URL))
	dec := &fakeDecoder{}
	player := NewPlayer(context.Background(), playlist, NewFetcher(srv.Client()), dec.decode)

	playlist.TogglePlay()
	pump(t, player, func() bool { return len(dec.streams) == 1 })

	first := dec.streams[0]
	if string(first.data) != "track-one" || !first.playing || first.volume != 1 {
		t.Fatalf("first stream = %+v", first)
	}

	playlist.ToggleMute()
	player.Update()
	if first.volume != 0 {
		t.Errorf("volume = %v after mute, want 0", first.volume)
	}

	// Pause and resume must not be mistaken for the end of the track.
	playlist.TogglePlay()
	player.Update()
	playlist.TogglePlay()
	player.Update()
	if playlist.Index() != 0 || !first.playing {
		t.Fatalf("resume advanced the playlist: index=%d playing=%v", playlist.Index(), first.playing)
	}

	first.playing = false
	player.Update()
	if playlist.Index() != 1 {
		t.Fatalf("index = %d after track end, want 1", playlist.Index())
	}
	if !first.closed {
		t.Errorf("finished stream not closed")
	}

	pump(t, player, func() bool { return len(dec.streams) == 2 })
	if string(dec.streams[1].data) != "track-two" {
		t.Errorf("second stream data = %q", dec.streams[1].data)
	}
}

func TestPlayerStopsOnFetchFailure(t *testing.T) {
	srv := newTrackServer(t)
	playlist, _ := NewPlaylist(testTracks(srv.URL))
	dec := &fakeDecoder{}
	player := NewPlayer(context.Background(), playlist, NewFetcher(srv.Client()), dec.decode)

	playlist.Previous()
	pump(t, player, func() bool { return !playlist.IsPlaying() })

	if len(dec.streams) != 0 {
		t.Errorf("decoded %d streams for a missing track", len(dec.streams))
	}
}

func TestPlayerStopsOnDecodeFailure(t *testing.T) {
	srv := newTrackServer(t)
	playlist, _ := NewPlaylist(testTracks(srv.URL))
	dec := &fakeDecoder{fail: true}
	player := NewPlayer(context.Background(), playlist, NewFetcher(srv.Client()), dec.decode)

	playlist.TogglePlay()
	pump(t, player, func() bool { return !playlist.IsPlaying() })
}

func TestPrefetchReportsPerTrackErrors(t *testing.T) {
	srv := newTrackServer(t)
	fetcher := NewFetcher(srv.Client())

	results, err := fetcher.Prefetch(context.Background(), testTracks(srv.URL))
	if err != nil {
		t.Fatalf("Prefetch: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if string(results[0].Data) != "track-one" || results[0].Err != nil {
		t.Errorf("track one = %q, %v", results[0].Data, results[0].Err)
	}
	if string(results[1].Data) != "track-two" || results[1].Err != nil {
		t.Errorf("track two = %q, %v", results[1].Data, results[1].Err)
	}
	if results[2].Err == nil {
		t.Errorf("missing track fetched without error")
	}
}

func TestPrefetchCancelled(t *testing.T) {
	srv := newTrackServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFetcher(srv.Client()).Prefetch(ctx, testTracks(srv.URL)); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestPlayerPrefetchMarksTracksReady(t *testing.T) {
	srv := newTrackServer(t)
	playlist, _ := NewPlaylist(testTracks(srv.URL))
	dec := &fakeDecoder{}
	player := NewPlayer(context.Background(), playlist, NewFetcher(srv.Client()), dec.decode)

	player.Prefetch()
	deadline := time.Now().Add(3 * time.Second)
	for player.Loading() && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	if player.Loading() {
		t.Fatalf("prefetch did not finish")
	}

	playlist.TogglePlay()
	player.Update()
	if len(dec.streams) != 1 {
		t.Errorf("streams = %d after prefetch, want 1 on first update", len(dec.streams))
	}
}
