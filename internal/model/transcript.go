package model

import "fmt"

// TranslationLanguage is a target language a translatable track can be translated into
type TranslationLanguage struct {
	Language     string `json:"language"`
	LanguageCode string `json:"language_code"`
}

// Label returns "Name (code)" as shown in selection lists
func (tl TranslationLanguage) Label() string {
	return fmt.Sprintf("%s (%s)", tl.Language, tl.LanguageCode)
}

// TranscriptTrack describes one caption track offered for a video
type TranscriptTrack struct {
	Language             string                `json:"language"`
	LanguageCode         string                `json:"language_code"`
	IsGenerated          bool                  `json:"is_generated"`
	IsTranslatable       bool                  `json:"is_translatable"`
	TranslationLanguages []TranslationLanguage `json:"translation_languages,omitempty"`
}

// Label returns "Name (code)" as shown in selection lists
func (tt TranscriptTrack) Label() string {
	return fmt.Sprintf("%s (%s)", tt.Language, tt.LanguageCode)
}

// TranscriptEntry is one caption line. Start and Duration are fractional seconds.
type TranscriptEntry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// End returns the time the entry stops being displayed
func (te TranscriptEntry) End() float64 {
	return te.Start + te.Duration
}

// TrackLabels returns the display labels of all tracks, in provider order
func TrackLabels(tracks []TranscriptTrack) []string {
	labels := make([]string, 0, len(tracks))
	for _, track := range tracks {
		labels = append(labels, track.Label())
	}
	return labels
}

// TranslationLabels returns the translation targets of every translatable track.
// Targets are concatenated per track, so a language offered by two tracks appears twice.
func TranslationLabels(tracks []TranscriptTrack) []string {
	var labels []string
	for _, track := range tracks {
		if !track.IsTranslatable {
			continue
		}
		for _, lang := range track.TranslationLanguages {
			labels = append(labels, lang.Label())
		}
	}
	return labels
}
