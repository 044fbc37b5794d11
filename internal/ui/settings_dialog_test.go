package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-transcript/internal/config"
	"github.com/ytget/yt-transcript/internal/format"
)

func TestSettingsDialogSave(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := app.NewWindow("settings")

	settings := config.NewSettings(app)
	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.loadCurrentSettings()

	if sd.formatSelect.Selected != config.DefaultOutputFormat.String() {
		t.Errorf("Expected default format preselected, got %q", sd.formatSelect.Selected)
	}

	sd.outputDirEntry.SetText("/tmp/transcripts")
	sd.formatSelect.SetSelected("WebVTT")
	sd.autoRevealChk.SetChecked(true)
	sd.languageSelect.SetSelected("Русский")

	sd.onSave(true)

	if !saved {
		t.Error("Expected onSaved callback")
	}
	if got := settings.GetOutputDirectory(); got != "/tmp/transcripts" {
		t.Errorf("Expected output directory to be saved, got %q", got)
	}
	if got := settings.GetOutputFormat(); got != format.WebVTT {
		t.Errorf("Expected WebVTT, got %s", got)
	}
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal to be saved")
	}
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
}

func TestSettingsDialogCancel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := app.NewWindow("settings")

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() {
		t.Error("onSaved must not run on cancel")
	})
	sd.loadCurrentSettings()
	sd.outputDirEntry.SetText("/elsewhere")

	sd.onSave(false)

	if got := settings.GetOutputDirectory(); got != "" {
		t.Errorf("Cancel must not save, got %q", got)
	}
}
