package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/ytget/yt-transcript/internal/model"
	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultPlaylistParseTimeout = 60 * time.Second
)

// PlaylistExpander resolves a playlist URL into its videos using the ytdlp library
type PlaylistExpander struct {
	timeout time.Duration
	fetch   func(ctx context.Context, playlistID string) ([]model.PlaylistVideo, error)
}

// NewPlaylistExpander creates a new playlist expander
func NewPlaylistExpander() *PlaylistExpander {
	return &PlaylistExpander{
		timeout: DefaultPlaylistParseTimeout,
		fetch:   fetchPlaylistItems,
	}
}

// SetTimeout sets the timeout for playlist parsing
func (p *PlaylistExpander) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Expand returns the videos of the playlist referenced by rawURL, in playlist order.
// Entries without a video ID (deleted or private videos) are skipped.
func (p *PlaylistExpander) Expand(ctx context.Context, rawURL string) ([]model.PlaylistVideo, error) {
	playlistID, err := ExtractPlaylistID(rawURL)
	if err != nil {
		return nil, err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	items, err := p.fetch(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	videos := make([]model.PlaylistVideo, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		videos = append(videos, it)
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("playlist %s has no videos", playlistID)
	}
	return videos, nil
}

func fetchPlaylistItems(ctx context.Context, playlistID string) ([]model.PlaylistVideo, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	videos := make([]model.PlaylistVideo, 0, len(items))
	for i, it := range items {
		videos = append(videos, model.PlaylistVideo{
			VideoID: it.VideoID,
			Title:   it.Title,
			Index:   i + 1,
		})
	}
	return videos, nil
}
