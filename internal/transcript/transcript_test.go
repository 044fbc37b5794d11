package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-transcript/internal/model"
)

const testAPIKey = "AIzaTestKey_123"

// fakeYouTube serves the watch page, the innertube player and oEmbed
type fakeYouTube struct {
	t             *testing.T
	server        *httptest.Server
	watchHTML     func(cookie string) string
	player        func(baseURL string) any
	oembedStatus  int
	oembedBody    string
	lastPlayerReq playerRequest
}

func newFakeYouTube(t *testing.T) *fakeYouTube {
	f := &fakeYouTube{
		t: t,
		watchHTML: func(string) string {
			return `<html><script>var ytcfg = {"INNERTUBE_API_KEY": "` + testAPIKey + `"};</script></html>`
		},
		player:       defaultPlayer,
		oembedStatus: http.StatusOK,
		oembedBody:   `{"title": "Rick Astley - Never Gonna Give You Up", "author_name": "Rick"}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en-US", r.Header.Get("Accept-Language"))
		fmt.Fprint(w, f.watchHTML(r.Header.Get("Cookie")))
	})
	mux.HandleFunc("/youtubei/v1/player", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("key"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &f.lastPlayerReq))
		_ = json.NewEncoder(w).Encode(f.player(f.server.URL))
	})
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.True(t, strings.HasPrefix(r.URL.Query().Get("url"), "http://www.youtube.com/watch"))
		w.WriteHeader(f.oembedStatus)
		fmt.Fprint(w, f.oembedBody)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeYouTube) client() *Client {
	return NewClient(
		WithBaseURL(f.server.URL),
		WithHTTPClient(f.server.Client()),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func captionTrackJSON(baseURL, name, code, kind string, translatable bool) map[string]any {
	return map[string]any{
		"baseUrl":        baseURL + "/api/timedtext?v=vid&lang=" + code,
		"name":           map[string]any{"runs": []map[string]string{{"text": name}}},
		"languageCode":   code,
		"kind":           kind,
		"isTranslatable": translatable,
	}
}

func defaultPlayer(baseURL string) any {
	return map[string]any{
		"playabilityStatus": map[string]any{"status": "OK"},
		"captions": map[string]any{
			"playerCaptionsTracklistRenderer": map[string]any{
				"captionTracks": []any{
					captionTrackJSON(baseURL, "English (auto-generated)", "en", "asr", true),
					captionTrackJSON(baseURL, "English", "en", "", true),
					captionTrackJSON(baseURL, "German", "de", "", false),
				},
				"translationLanguages": []any{
					map[string]any{"languageCode": "fr", "languageName": map[string]any{"simpleText": "French"}},
					map[string]any{"languageCode": "es", "languageName": map[string]any{"runs": []map[string]string{{"text": "Spanish"}}}},
				},
			},
		},
	}
}

func TestListTranscripts(t *testing.T) {
	fake := newFakeYouTube(t)

	tracks, err := fake.client().ListTranscripts(context.Background(), "vid")
	require.NoError(t, err)
	require.Len(t, tracks, 3)

	assert.Equal(t, "vid", fake.lastPlayerReq.VideoID)
	assert.Equal(t, innertubeClientName, fake.lastPlayerReq.Context.Client.ClientName)

	// Manually created tracks come first
	assert.Equal(t, "English (en)", tracks[0].Label())
	assert.False(t, tracks[0].IsGenerated)
	assert.Equal(t, "German (de)", tracks[1].Label())
	assert.Empty(t, tracks[1].TranslationLanguages, "non-translatable track exposes no targets")
	assert.Equal(t, "English (auto-generated) (en)", tracks[2].Label())
	assert.True(t, tracks[2].IsGenerated)

	require.Len(t, tracks[0].TranslationLanguages, 2)
	assert.Equal(t, "French (fr)", tracks[0].TranslationLanguages[0].Label())
	assert.Equal(t, "Spanish (es)", tracks[0].TranslationLanguages[1].Label())
}

// stubSource records the language preference and answers with fixed transcripts
type stubSource struct {
	videoID     string
	languages   []string
	transcripts []yt_transcript_models.Transcript
	err         error
}

func (s *stubSource) fetch(_ context.Context, videoID string, languages []string) ([]yt_transcript_models.Transcript, error) {
	s.videoID = videoID
	s.languages = languages
	return s.transcripts, s.err
}

func (s *stubSource) client() *Client {
	return NewClient(
		withTranscriptSource(s.fetch),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestFetchTranscript(t *testing.T) {
	src := &stubSource{transcripts: []yt_transcript_models.Transcript{
		{Lines: []yt_transcript_models.TranscriptLine{
			{Text: "Hi", Start: 0.32, Duration: 1.5},
			{Text: "it's fine & good", Start: 1.82, Duration: 2.1},
			{Text: "no duration", Start: 5.5},
		}},
		{Lines: []yt_transcript_models.TranscriptLine{{Text: "ignored", Start: 9}}},
	}}

	entries, err := src.client().FetchTranscript(context.Background(), "vid")
	require.NoError(t, err)

	assert.Equal(t, "vid", src.videoID)
	assert.Equal(t, []string{"en"}, src.languages)
	assert.Equal(t, []model.TranscriptEntry{
		{Text: "Hi", Start: 0.32, Duration: 1.5},
		{Text: "it's fine & good", Start: 1.82, Duration: 2.1},
		{Text: "no duration", Start: 5.5},
	}, entries)
}

func TestFetchTranscript_NoTranscript(t *testing.T) {
	src := &stubSource{}

	_, err := src.client().FetchTranscript(context.Background(), "vid")
	assert.ErrorIs(t, err, ErrNoTranscriptFound)
	assert.Contains(t, err.Error(), "https://www.youtube.com/watch?v=vid")
}

func TestFetchTranscript_LibraryError(t *testing.T) {
	src := &stubSource{err: errors.New("no transcripts found for languages [en]")}

	_, err := src.client().FetchTranscript(context.Background(), "vid")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "vid", perr.VideoID)
	assert.Contains(t, err.Error(), "no transcripts found for languages [en]")
}

func TestLibraryTranscripts_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := libraryTranscripts(ctx, "vid", DefaultLanguages)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranscriptCollector(t *testing.T) {
	collector := &transcriptCollector{}
	in := []yt_transcript_models.Transcript{{Lines: []yt_transcript_models.TranscriptLine{{Text: "a"}}}}

	out, err := collector.Format(in)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, in, collector.transcripts)
}

func TestProviderFailures(t *testing.T) {
	tests := []struct {
		name      string
		watchHTML string
		player    any
		want      error
	}{
		{
			name:      "captions missing",
			watchHTML: `"INNERTUBE_API_KEY":"` + testAPIKey + `"`,
			player:    map[string]any{"playabilityStatus": map[string]any{"status": "OK"}},
			want:      ErrTranscriptsDisabled,
		},
		{
			name:      "video unavailable",
			watchHTML: `"INNERTUBE_API_KEY":"` + testAPIKey + `"`,
			player:    map[string]any{"playabilityStatus": map[string]any{"status": "ERROR", "reason": "This video is unavailable"}},
			want:      ErrVideoUnavailable,
		},
		{
			name:      "age restricted",
			watchHTML: `"INNERTUBE_API_KEY":"` + testAPIKey + `"`,
			player:    map[string]any{"playabilityStatus": map[string]any{"status": "LOGIN_REQUIRED", "reason": "Sign in to confirm your age"}},
			want:      ErrVideoUnplayable,
		},
		{
			name:      "bot check",
			watchHTML: `"INNERTUBE_API_KEY":"` + testAPIKey + `"`,
			player:    map[string]any{"playabilityStatus": map[string]any{"status": "LOGIN_REQUIRED", "reason": "Sign in to confirm you're not a bot"}},
			want:      ErrTooManyRequests,
		},
		{
			name:      "recaptcha page",
			watchHTML: `<html><body><div class="g-recaptcha" data-sitekey="x"></div></body></html>`,
			want:      ErrTooManyRequests,
		},
		{
			name:      "unparsable page",
			watchHTML: `<html><body>nothing here</body></html>`,
			want:      ErrUnparsable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeYouTube(t)
			fake.watchHTML = func(string) string { return tt.watchHTML }
			fake.player = func(string) any { return tt.player }

			_, err := fake.client().ListTranscripts(context.Background(), "vid")
			var perr *ProviderError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "vid", perr.VideoID)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWatchPage_AcceptsConsent(t *testing.T) {
	fake := newFakeYouTube(t)
	var cookies []string
	fake.watchHTML = func(cookie string) string {
		cookies = append(cookies, cookie)
		if cookie == "" {
			return `<form action="https://consent.youtube.com/s" method="POST"><input type="hidden" name="v" value="cb.20240101"></form>`
		}
		return `"INNERTUBE_API_KEY":"` + testAPIKey + `"`
	}

	_, err := fake.client().ListTranscripts(context.Background(), "vid")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "CONSENT=YES+cb.20240101"}, cookies)
}

func TestWatchPage_ConsentNotAccepted(t *testing.T) {
	fake := newFakeYouTube(t)
	fake.watchHTML = func(string) string {
		return `<form action="https://consent.youtube.com/s"><input name="v" value="x"></form>`
	}

	_, err := fake.client().ListTranscripts(context.Background(), "vid")
	assert.ErrorIs(t, err, ErrConsentCookie)
}

func TestNetworkFailure(t *testing.T) {
	fake := newFakeYouTube(t)
	client := fake.client()
	fake.server.Close()

	_, err := client.ListTranscripts(context.Background(), "vid")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.NotEmpty(t, err.Error())
}

func TestFetchTitle(t *testing.T) {
	fake := newFakeYouTube(t)

	title, err := fake.client().FetchTitle(context.Background(), "vid")
	require.NoError(t, err)
	assert.Equal(t, "Rick Astley - Never Gonna Give You Up", title)
}

func TestFetchTitle_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "oops"},
		{"not found", http.StatusNotFound, "Not Found"},
		{"bad json", http.StatusOK, "<html>"},
		{"no title", http.StatusOK, `{"author_name": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeYouTube(t)
			fake.oembedStatus = tt.status
			fake.oembedBody = tt.body

			_, err := fake.client().FetchTitle(context.Background(), "vid")
			assert.Error(t, err)
		})
	}
}

func TestStatusError(t *testing.T) {
	err := &statusError{URL: "https://www.youtube.com/x", StatusCode: http.StatusTooManyRequests}
	assert.True(t, errors.Is(err, ErrTooManyRequests))

	err = &statusError{URL: "https://www.youtube.com/x", StatusCode: http.StatusBadGateway}
	assert.True(t, errors.Is(err, ErrRequestFailed))
	assert.Contains(t, err.Error(), "502")
}
