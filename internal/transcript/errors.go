package transcript

import (
	"errors"
	"fmt"
)

// Causes carried by ProviderError, usable with errors.Is
var (
	ErrVideoUnavailable    = errors.New("the video is no longer available")
	ErrVideoUnplayable     = errors.New("the video is unplayable")
	ErrTranscriptsDisabled = errors.New("subtitles are disabled for this video")
	ErrNoTranscriptFound   = errors.New("no transcripts were found for the requested languages")
	ErrTooManyRequests     = errors.New("YouTube is receiving too many requests from this IP")
	ErrConsentCookie       = errors.New("failed to automatically give consent to saving cookies")
	ErrUnparsable          = errors.New("the data required to fetch the transcript is not parsable")
	ErrRequestFailed       = errors.New("request to YouTube failed")
)

// ProviderError is any failure of the transcript provider for one video
type ProviderError struct {
	VideoID string
	Err     error
}

func newProviderError(videoID string, err error) *ProviderError {
	return &ProviderError{VideoID: videoID, Err: err}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("could not retrieve a transcript for the video %s: %v", watchURL(defaultBaseURL, e.VideoID), e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// statusError reports an unexpected HTTP status
type statusError struct {
	URL        string
	StatusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%v: %s returned HTTP %d", ErrRequestFailed, e.URL, e.StatusCode)
}

func (e *statusError) Unwrap() error {
	if e.StatusCode == 429 {
		return ErrTooManyRequests
	}
	return ErrRequestFailed
}
