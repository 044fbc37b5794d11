package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Endpoints, relative to the base URL
const (
	defaultBaseURL      = "https://www.youtube.com"
	watchPath           = "/watch?v=%s"
	innertubePlayerPath = "/youtubei/v1/player?key=%s"
	oembedPath          = "/oembed?url=http://www.youtube.com/watch?v=%s&format=json"
)

// Request settings
const (
	acceptLanguage = "en-US"
	maxBodyBytes   = 32 << 20
)

// Innertube client identity used for player requests
const (
	innertubeClientName    = "ANDROID"
	innertubeClientVersion = "20.10.38"
)

// DefaultLanguages is the language preference used when fetching without an explicit choice
var DefaultLanguages = []string{"en"}

// Client fetches caption metadata, transcripts and titles from YouTube
type Client struct {
	httpClient *http.Client
	baseURL    string
	languages  []string
	source     transcriptSource
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client; its timeout is the only one applied
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at another host, used by tests
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// withTranscriptSource replaces the transcript library, used by tests
func withTranscriptSource(src transcriptSource) Option {
	return func(c *Client) {
		c.source = src
	}
}

// NewClient creates a client with http.DefaultClient and the default language preference
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
		languages:  DefaultLanguages,
		source:     libraryTranscripts,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func watchURL(baseURL, videoID string) string {
	return baseURL + fmt.Sprintf(watchPath, url.QueryEscape(videoID))
}

// get performs a GET and returns the body; non-200 answers are errors
func (c *Client) get(ctx context.Context, rawURL string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept-Language", acceptLanguage)
	return c.do(req)
}

// postJSON sends payload as JSON and decodes the JSON answer into out
func (c *Client) postJSON(ctx context.Context, rawURL string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", acceptLanguage)

	data, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	return nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &statusError{URL: req.URL.Redacted(), StatusCode: resp.StatusCode}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}
