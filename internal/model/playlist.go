package model

import "fmt"

// VideoURLTemplate is the canonical watch URL for a video ID
const VideoURLTemplate = "https://www.youtube.com/watch?v=%s"

// PlaylistVideo is a single entry of an expanded playlist
type PlaylistVideo struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	Index   int    `json:"index"` // 1-based position in the playlist
}

// URL returns the watch URL of the entry
func (pv PlaylistVideo) URL() string {
	return fmt.Sprintf(VideoURLTemplate, pv.VideoID)
}
