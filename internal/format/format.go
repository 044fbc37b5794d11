package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/yt-transcript/internal/model"
)

// OutputFormat selects how transcript entries are rendered
type OutputFormat int

const (
	JSON OutputFormat = iota
	PrettyPrint
	PlainText
	WebVTT
	SRT
)

// ErrUnknownFormat is returned for names or values outside the supported set
var ErrUnknownFormat = errors.New("unknown output format")

type formatDef struct {
	name      string
	extension string
	aliases   []string
	render    func([]model.TranscriptEntry) string
}

var formatDefs = [...]formatDef{
	JSON:        {name: "JSON", extension: "json", aliases: []string{"json"}, render: formatJSON},
	PrettyPrint: {name: "Pretty Print", extension: "txt", aliases: []string{"pretty", "prettyprint", "pretty-print"}, render: formatPretty},
	PlainText:   {name: "Text", extension: "txt", aliases: []string{"text", "txt", "plain", "plaintext"}, render: formatText},
	WebVTT:      {name: "WebVTT", extension: "vtt", aliases: []string{"webvtt", "vtt"}, render: formatWebVTT},
	SRT:         {name: "SRT", extension: "srt", aliases: []string{"srt"}, render: formatSRT},
}

// All returns every output format in display order
func All() []OutputFormat {
	return []OutputFormat{JSON, PrettyPrint, PlainText, WebVTT, SRT}
}

// Names returns the display names of all formats in display order
func Names() []string {
	names := make([]string, 0, len(formatDefs))
	for _, f := range All() {
		names = append(names, f.String())
	}
	return names
}

// Parse resolves a display name ("Pretty Print") or a short alias ("vtt"), case-insensitively
func Parse(name string) (OutputFormat, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, f := range All() {
		def := formatDefs[f]
		if strings.ToLower(def.name) == needle {
			return f, nil
		}
		for _, alias := range def.aliases {
			if alias == needle {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Valid reports whether f is one of the supported formats
func (f OutputFormat) Valid() bool {
	return f >= JSON && f <= SRT
}

// String returns the display name
func (f OutputFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
	return formatDefs[f].name
}

// Extension returns the file extension without the leading dot
func (f OutputFormat) Extension() string {
	if !f.Valid() {
		return ""
	}
	return formatDefs[f].extension
}

// Format renders entries, preserving their order
func (f OutputFormat) Format(entries []model.TranscriptEntry) (string, error) {
	if !f.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return formatDefs[f].render(entries), nil
}

func formatText(entries []model.TranscriptEntry) string {
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	return strings.Join(texts, "\n")
}
