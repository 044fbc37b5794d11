package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ytget/yt-transcript/internal/model"
)

type oembedResponse struct {
	Title *string `json:"title"`
}

// ListTranscripts returns the caption tracks available for a video
func (c *Client) ListTranscripts(ctx context.Context, videoID string) ([]model.TranscriptTrack, error) {
	tracks, err := c.fetchTracks(ctx, videoID)
	if err != nil {
		return nil, c.providerError(videoID, err)
	}

	c.logger.Info("listed transcripts", slog.String("video_id", videoID), slog.Int("tracks", len(tracks)))
	return tracks, nil
}

// FetchTranscript downloads the transcript in the client's default language
// preference, manually created tracks winning over generated ones.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) ([]model.TranscriptEntry, error) {
	transcripts, err := c.source(ctx, videoID, c.languages)
	if err != nil {
		return nil, c.providerError(videoID, err)
	}
	if len(transcripts) == 0 {
		return nil, c.providerError(videoID, fmt.Errorf("%w: %s", ErrNoTranscriptFound, strings.Join(c.languages, ", ")))
	}

	entries := toEntries(transcripts[0])
	c.logger.Info("fetched transcript", slog.String("video_id", videoID), slog.Int("entries", len(entries)))
	return entries, nil
}

// FetchTitle looks the video title up through the oEmbed endpoint
func (c *Client) FetchTitle(ctx context.Context, videoID string) (string, error) {
	data, err := c.get(ctx, c.baseURL+fmt.Sprintf(oembedPath, url.QueryEscape(videoID)), nil)
	if err != nil {
		return "", fmt.Errorf("oembed lookup: %w", err)
	}

	var resp oembedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("oembed lookup: %w", err)
	}
	if resp.Title == nil {
		return "", errors.New("oembed lookup: response has no title")
	}
	return *resp.Title, nil
}

func (c *Client) providerError(videoID string, err error) error {
	c.logger.Warn("transcript provider failed", slog.String("video_id", videoID), slog.Any("error", err))
	return newProviderError(videoID, err)
}
