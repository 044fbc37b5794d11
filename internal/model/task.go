package model

import (
	"path/filepath"
	"strings"
	"time"
)

// TranscriptTask represents a single list or fetch operation started by the user
type TranscriptTask struct {
	ID         string
	Kind       TaskKind
	URL        string
	VideoID    string
	Status     TaskStatus
	StartedAt  time.Time
	FinishedAt time.Time

	Format     string            // output format display name, fetch tasks only
	Title      string            // video title or the video ID when lookup failed
	OutputPath string            // path of the written transcript file
	Tracks     []TranscriptTrack // available tracks, list tasks only
	LastError  string            // last error message if any

	done chan struct{}
}

// NewTranscriptTask creates a pending task with an open completion channel
func NewTranscriptTask(id string, kind TaskKind, url string) *TranscriptTask {
	return &TranscriptTask{
		ID:        id,
		Kind:      kind,
		URL:       url,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
}

// Done returns a channel closed once the task published its terminal event.
// Copies of the task share the channel.
func (t *TranscriptTask) Done() <-chan struct{} {
	return t.done
}

// MarkDone closes the completion channel. It must be called exactly once.
func (t *TranscriptTask) MarkDone() {
	close(t.done)
}

// Duration returns how long the task ran, or zero while it is active
func (t *TranscriptTask) Duration() time.Duration {
	if t.FinishedAt.IsZero() {
		return 0
	}
	return t.FinishedAt.Sub(t.StartedAt)
}

// GetDisplayTitle returns title, filename, video ID or URL in order of preference
func (t *TranscriptTask) GetDisplayTitle() string {
	if t.Title != "" && !strings.HasPrefix(t.Title, "http") {
		return t.Title
	}

	if t.OutputPath != "" {
		// Support both / and \ separators regardless of the host OS
		name := t.OutputPath
		if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
			name = name[idx+1:]
		}
		if ext := filepath.Ext(name); ext != "" && len(ext) < len(name) {
			name = strings.TrimSuffix(name, ext)
		}
		if name != "" {
			return name
		}
	}

	if t.VideoID != "" {
		return t.VideoID
	}
	return t.URL
}
