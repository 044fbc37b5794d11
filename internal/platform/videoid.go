package platform

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Host tokens matched as substrings of the URL host
const (
	ShortLinkHostToken = "youtu.be"
	MainHostToken      = "youtube.com"
	ShortsPathToken    = "shorts"
)

// Query parameters
const (
	VideoQueryParam    = "v"
	PlaylistQueryParam = "list"
)

// ErrInvalidURL is returned when no video ID can be derived from a URL
var ErrInvalidURL = errors.New("could not extract video ID from URL")

// ExtractVideoID derives the video ID from a YouTube URL.
//
// Short links (youtu.be/<id>) yield the path without its leading slash,
// shorts URLs yield the last path segment and every other youtube.com URL
// yields the first "v" query value. An empty ID is returned as-is.
func ExtractVideoID(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	switch {
	case strings.Contains(parsed.Host, ShortLinkHostToken):
		return strings.TrimPrefix(parsed.Path, "/"), nil
	case strings.Contains(parsed.Host, MainHostToken):
		if strings.Contains(parsed.Path, ShortsPathToken) {
			segments := strings.Split(parsed.Path, "/")
			return segments[len(segments)-1], nil
		}
		id, ok := firstQueryValue(parsed, VideoQueryParam)
		if !ok {
			return "", fmt.Errorf("%w: missing %q query parameter", ErrInvalidURL, VideoQueryParam)
		}
		return id, nil
	default:
		return "", fmt.Errorf("%w: unsupported host %q", ErrInvalidURL, parsed.Host)
	}
}

// ExtractPlaylistID returns the "list" query value of a YouTube URL
func ExtractPlaylistID(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid playlist URL: %w", err)
	}
	id, ok := firstQueryValue(parsed, PlaylistQueryParam)
	if !ok {
		return "", fmt.Errorf("URL does not contain playlist parameter")
	}
	return id, nil
}

// IsPlaylistURL reports whether the URL carries a playlist parameter
func IsPlaylistURL(rawURL string) bool {
	_, err := ExtractPlaylistID(rawURL)
	return err == nil
}

// firstQueryValue returns the first non-blank value of key; blank values count as missing
func firstQueryValue(u *url.URL, key string) (string, bool) {
	for _, v := range u.Query()[key] {
		if v != "" {
			return v, true
		}
	}
	return "", false
}
