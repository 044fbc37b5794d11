package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-transcript/internal/model"
	"github.com/ytget/yt-transcript/internal/transcript"
)

type fakeProvider struct {
	entries map[string][]model.TranscriptEntry
	titles  map[string]string
	tracks  []model.TranscriptTrack
}

func (f *fakeProvider) ListTranscripts(_ context.Context, _ string) ([]model.TranscriptTrack, error) {
	return f.tracks, nil
}

func (f *fakeProvider) FetchTranscript(_ context.Context, videoID string) ([]model.TranscriptEntry, error) {
	entries, ok := f.entries[videoID]
	if !ok {
		return nil, &transcript.ProviderError{VideoID: videoID, Err: transcript.ErrTranscriptsDisabled}
	}
	return entries, nil
}

func (f *fakeProvider) FetchTitle(_ context.Context, videoID string) (string, error) {
	title, ok := f.titles[videoID]
	if !ok {
		return "", errors.New("no title")
	}
	return title, nil
}

type fakePlaylist struct {
	videos []model.PlaylistVideo
	err    error
}

func (f *fakePlaylist) Expand(context.Context, string) ([]model.PlaylistVideo, error) {
	return f.videos, f.err
}

func newTestRunner(provider *fakeProvider, playlist *fakePlaylist) (*runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &runner{
		stdout:   &out,
		stderr:   &bytes.Buffer{},
		provider: provider,
		playlist: playlist,
	}, &out
}

func testProvider() *fakeProvider {
	return &fakeProvider{
		entries: map[string][]model.TranscriptEntry{
			"aaa": {{Text: "Hi", Start: 0.32, Duration: 1.5}},
			"bbb": {{Text: "Bye", Start: 1, Duration: 2}},
		},
		titles: map[string]string{"aaa": "First: Video"},
		tracks: []model.TranscriptTrack{
			{Language: "English", LanguageCode: "en", IsTranslatable: true,
				TranslationLanguages: []model.TranslationLanguage{{Language: "French", LanguageCode: "fr"}}},
			{Language: "English (auto-generated)", LanguageCode: "en", IsGenerated: true},
		},
	}
}

func TestRunFetch(t *testing.T) {
	dir := t.TempDir()
	r, out := newTestRunner(testProvider(), nil)

	err := r.run(context.Background(), []string{"-format", "srt", "-out", dir, "https://www.youtube.com/watch?v=aaa"})
	require.NoError(t, err)

	path := filepath.Join(dir, "First Video.srt")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n00:00:00,320 --> 00:00:01,820\nHi\n", string(data))
	assert.Contains(t, out.String(), "Saved as:")
	assert.Contains(t, out.String(), path)
}

func TestRunFetch_ProviderFailure(t *testing.T) {
	r, out := newTestRunner(testProvider(), nil)

	err := r.run(context.Background(), []string{"-out", t.TempDir(), "https://youtu.be/missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subtitles are disabled")
	assert.Contains(t, out.String(), "error:")
}

func TestRunList(t *testing.T) {
	r, out := newTestRunner(testProvider(), nil)

	require.NoError(t, r.run(context.Background(), []string{"-list", "https://youtu.be/aaa"}))

	text := out.String()
	assert.Contains(t, text, "English (en)")
	assert.Contains(t, text, "English (auto-generated) (en)")
	assert.Contains(t, text, "[generated]")
	assert.Contains(t, text, "French (fr)")
}

func TestRunPlaylist_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	playlist := &fakePlaylist{videos: []model.PlaylistVideo{
		{VideoID: "aaa", Title: "First", Index: 1},
		{VideoID: "zzz", Title: "Broken", Index: 2},
		{VideoID: "bbb", Title: "Third", Index: 3},
	}}
	r, out := newTestRunner(testProvider(), playlist)

	err := r.run(context.Background(), []string{"-playlist", "-format", "text", "-out", dir, "https://www.youtube.com/playlist?list=PL1"})
	require.Error(t, err)
	assert.Equal(t, "1 of 3 videos failed", err.Error())

	assert.FileExists(t, filepath.Join(dir, "First Video.txt"))
	// No title for bbb, so the video ID names the file
	data, err := os.ReadFile(filepath.Join(dir, "bbb.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Bye", string(data))
	assert.Contains(t, out.String(), "[3/3] Third")
}

func TestRunPlaylist_ExpandError(t *testing.T) {
	r, _ := newTestRunner(testProvider(), &fakePlaylist{err: errors.New("playlist not found")})

	err := r.run(context.Background(), []string{"-playlist", "https://www.youtube.com/playlist?list=PL1"})
	assert.EqualError(t, err, "playlist not found")
}

func TestRunPlaylist_DetectedFromURL(t *testing.T) {
	dir := t.TempDir()
	playlist := &fakePlaylist{videos: []model.PlaylistVideo{{VideoID: "bbb", Title: "Only", Index: 1}}}
	r, out := newTestRunner(testProvider(), playlist)

	require.NoError(t, r.run(context.Background(), []string{"-format", "text", "-out", dir, "https://www.youtube.com/playlist?list=PL1"}))
	assert.FileExists(t, filepath.Join(dir, "bbb.txt"))
	assert.Contains(t, out.String(), "[1/1] Only")
}

func TestIsPlaylistOnly(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/playlist?list=PL1", true},
		{"https://www.youtube.com/watch?v=aaa&list=PL1", false},
		{"https://www.youtube.com/watch?v=aaa", false},
		{"https://youtu.be/aaa?list=PL1", false},
	}

	for _, tt := range tests {
		if got := isPlaylistOnly(tt.url); got != tt.want {
			t.Errorf("isPlaylistOnly(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestRunArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no url", nil},
		{"two urls", []string{"a", "b"}},
		{"unknown format", []string{"-format", "docx", "https://youtu.be/aaa"}},
		{"unknown flag", []string{"-bogus", "https://youtu.be/aaa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRunner(testProvider(), nil)
			assert.Error(t, r.run(context.Background(), tt.args))
		})
	}
}

func TestRunHelp(t *testing.T) {
	r, _ := newTestRunner(testProvider(), nil)
	assert.NoError(t, r.run(context.Background(), []string{"-h"}))
}
