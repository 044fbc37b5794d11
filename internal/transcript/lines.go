package transcript

import (
	"context"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"

	"github.com/ytget/yt-transcript/internal/model"
)

// transcriptSource returns the transcripts of a video matching the language
// preference, best match first
type transcriptSource func(ctx context.Context, videoID string, languages []string) ([]yt_transcript_models.Transcript, error)

// transcriptCollector is a yt_transcript formatter that keeps the parsed
// transcripts instead of rendering them
type transcriptCollector struct {
	transcripts []yt_transcript_models.Transcript
}

func (c *transcriptCollector) Format(transcripts []yt_transcript_models.Transcript) (string, error) {
	c.transcripts = transcripts
	return "", nil
}

// libraryTranscripts fetches through yt_transcript. The library picks the
// track: the first preferred language, manually created before generated.
func libraryTranscripts(ctx context.Context, videoID string, languages []string) ([]yt_transcript_models.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collector := &transcriptCollector{}
	client := yt_transcript.NewClient(yt_transcript.WithFormatter(collector))
	// Formatting tags are stripped
	if _, err := client.GetFormattedTranscripts(videoID, languages, false); err != nil {
		return nil, err
	}
	return collector.transcripts, nil
}

func toEntries(t yt_transcript_models.Transcript) []model.TranscriptEntry {
	entries := make([]model.TranscriptEntry, 0, len(t.Lines))
	for _, line := range t.Lines {
		entries = append(entries, model.TranscriptEntry{
			Text:     line.Text,
			Start:    line.Start,
			Duration: line.Duration,
		})
	}
	return entries
}
