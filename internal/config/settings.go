package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-transcript/internal/format"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyOutputFormat       = "output_format"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultOutputDir          = "" // current working directory
	DefaultOutputFormat       = format.JSON
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the directory transcripts are written to.
// Empty means the current working directory.
func (s *Settings) GetOutputDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyOutputDir, DefaultOutputDir)
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetOutputFormat returns the preselected output format; unknown stored values fall back to the default
func (s *Settings) GetOutputFormat() format.OutputFormat {
	name := s.app.Preferences().String(KeyOutputFormat)
	if name == "" {
		return DefaultOutputFormat
	}
	f, err := format.Parse(name)
	if err != nil {
		s.SetOutputFormat(DefaultOutputFormat)
		return DefaultOutputFormat
	}
	return f
}

// SetOutputFormat stores the output format by display name
func (s *Settings) SetOutputFormat(f format.OutputFormat) {
	if !f.Valid() {
		f = DefaultOutputFormat
	}
	s.app.Preferences().SetString(KeyOutputFormat, f.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal saved transcripts in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal saved transcripts in the file manager
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetOutputFormatOptions returns the display names of all output formats
func (s *Settings) GetOutputFormatOptions() []string {
	return format.Names()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
