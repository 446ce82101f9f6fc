package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	maxTrackBytes     = 32 << 20
	defaultFetchLimit = 2
)

type FetchResult struct {
	Data []byte
	Err  error
}

type Fetcher struct {
	client *http.Client
	limit  int
}

func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Fetcher{
		client: client,
		limit:  defaultFetchLimit,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTrackBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	if len(data) > maxTrackBytes {
		return nil, fmt.Errorf("track %s larger than %d bytes", url, maxTrackBytes)
	}
	return data, nil
}

// Prefetch downloads every track with bounded concurrency. A failed track is
// reported in its slot and does not stop the others; the returned error is
// only set when ctx is cancelled.
func (f *Fetcher) Prefetch(ctx context.Context, tracks []Track) ([]FetchResult, error) {
	results := make([]FetchResult, len(tracks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)

	for i, track := range tracks {
		i, track := i, track
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := f.Fetch(gctx, track.URL)
			results[i] = FetchResult{Data: data, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
