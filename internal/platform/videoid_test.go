package platform

import (
	"errors"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "short link",
			url:      "https://youtu.be/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "short link keeps nested path",
			url:      "https://youtu.be/dQw4w9WgXcQ/extra",
			expected: "dQw4w9WgXcQ/extra",
		},
		{
			name:     "short link with empty path",
			url:      "https://youtu.be/",
			expected: "",
		},
		{
			name:     "watch URL with extra parameters",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=5",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "watch URL takes first v",
			url:      "https://www.youtube.com/watch?v=first&v=second",
			expected: "first",
		},
		{
			name:     "mobile host",
			url:      "https://m.youtube.com/watch?v=abc",
			expected: "abc",
		},
		{
			name:     "shorts URL",
			url:      "https://www.youtube.com/shorts/abc123XYZ_",
			expected: "abc123XYZ_",
		},
		{
			name:     "shorts URL ignores query",
			url:      "https://youtube.com/shorts/abc123XYZ_?feature=share",
			expected: "abc123XYZ_",
		},
		{
			name:    "watch URL without v",
			url:     "https://www.youtube.com/watch?t=5",
			wantErr: true,
		},
		{
			name:    "watch URL with blank v",
			url:     "https://www.youtube.com/watch?v=",
			wantErr: true,
		},
		{
			name:    "unrecognized host",
			url:     "https://vimeo.com/12345",
			wantErr: true,
		},
		{
			name:    "no scheme leaves host empty",
			url:     "youtu.be/dQw4w9WgXcQ",
			wantErr: true,
		},
		{
			name:    "malformed URL",
			url:     "https://www.youtube.com/watch?v=%zz\x7f",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Fatalf("expected ErrInvalidURL, got id=%q err=%v", id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, id)
			}
		})
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{"watch with list", "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID", "PLAYLIST_ID", false},
		{"playlist page", "https://www.youtube.com/playlist?list=PLAYLIST_ID", "PLAYLIST_ID", false},
		{"additional parameters", "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1", "PLAYLIST_ID", false},
		{"no list", "https://www.youtube.com/watch?v=VIDEO_ID", "", true},
		{"empty list", "https://www.youtube.com/playlist?list=", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractPlaylistID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if id != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, id)
			}
			if IsPlaylistURL(tt.url) == tt.wantErr {
				t.Errorf("IsPlaylistURL(%q) disagrees with ExtractPlaylistID", tt.url)
			}
		})
	}
}
