package fetch

import (
	"context"

	"github.com/ytget/yt-transcript/internal/format"
	"github.com/ytget/yt-transcript/internal/model"
)

// Provider is the transcript source used by the service.
type Provider interface {
	ListTranscripts(ctx context.Context, videoID string) ([]model.TranscriptTrack, error)
	FetchTranscript(ctx context.Context, videoID string) ([]model.TranscriptEntry, error)
	FetchTitle(ctx context.Context, videoID string) (string, error)
}

// Fetcher defines the interface for the fetch service.
type Fetcher interface {
	SetUpdateCallback(func(model.TranscriptTask))
	ListTracks(url string) (*model.TranscriptTask, error)
	FetchTranscript(url string, outputFormat format.OutputFormat) (*model.TranscriptTask, error)
	GetTask(id string) (model.TranscriptTask, bool)
	GetAllTasks() []model.TranscriptTask

	// SetOutputDirectory sets where transcript files are written; empty means the working directory
	SetOutputDirectory(dir string)
}

var _ Fetcher = (*Service)(nil)
