package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-transcript/internal/config"
	"github.com/ytget/yt-transcript/internal/fetch"
	"github.com/ytget/yt-transcript/internal/format"
	"github.com/ytget/yt-transcript/internal/model"
	"github.com/ytget/yt-transcript/internal/platform"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	fetchSvc     fetch.Fetcher
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger

	urlLabel          *widget.Label
	urlEntry          *widget.Entry
	checkBtn          *widget.Button
	transcriptsLabel  *widget.Label
	languageSelect    *widget.Select
	translationsLabel *widget.Label
	translationSelect *widget.Select
	formatLabel       *widget.Label
	formatSelect      *widget.Select
	obtainBtn         *widget.Button
	statusLabel       *widget.Label
	recentLabel       *widget.Label
	resultList        *widget.List

	// Finished fetch tasks, newest first; touched on the UI thread only
	results []model.TranscriptTask
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, fetchSvc fetch.Fetcher, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		fetchSvc:     fetchSvc,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.fetchSvc.SetOutputDirectory(settings.GetOutputDirectory())
	ui.fetchSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.createMenu()

	ui.urlLabel = widget.NewLabel(l.GetText(KeyYouTubeURL))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onCheckClick()
	}
	ui.checkBtn = widget.NewButton(l.GetText(KeyCheckTranscripts), ui.onCheckClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	urlRow := container.NewBorder(nil, nil, left, ui.checkBtn, ui.urlEntry)

	ui.transcriptsLabel = widget.NewLabel(l.GetText(KeyAvailableTranscripts))
	ui.languageSelect = widget.NewSelect(nil, nil)

	ui.translationsLabel = widget.NewLabel(l.GetText(KeyAvailableTranslations))
	ui.translationsLabel.Wrapping = fyne.TextWrapWord
	ui.translationSelect = widget.NewSelect(nil, nil)

	ui.formatLabel = widget.NewLabel(l.GetText(KeyOutputFormat))
	ui.formatSelect = widget.NewSelect(format.Names(), nil)
	ui.formatSelect.SetSelected(ui.settings.GetOutputFormat().String())
	helpBtn := widget.NewButtonWithIcon("", theme.HelpIcon(), ui.onShowFormatHelp)
	helpBtn.Importance = widget.LowImportance
	formatRow := container.NewBorder(nil, nil, nil, helpBtn, ui.formatSelect)

	ui.obtainBtn = widget.NewButton(l.GetText(KeyObtainTranscript), ui.onObtainClick)
	ui.obtainBtn.Importance = widget.HighImportance
	ui.obtainBtn.Disable()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		ui.urlLabel,
		urlRow,
		ui.transcriptsLabel,
		ui.languageSelect,
		ui.translationsLabel,
		ui.translationSelect,
		ui.formatLabel,
		formatRow,
		ui.obtainBtn,
		ui.statusLabel,
		widget.NewSeparator(),
	)

	ui.recentLabel = widget.NewLabel(l.GetText(KeyRecentTranscripts))
	ui.recentLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.resultList = widget.NewList(
		func() int { return len(ui.results) },
		func() fyne.CanvasObject { return ui.createResultItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateResultItem(id, obj) },
	)

	content := container.NewBorder(
		container.NewVBox(form, ui.recentLabel), // top
		nil,                                     // bottom
		nil,                                     // left
		nil,                                     // right
		ui.resultList,                           // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.urlLabel.SetText(l.GetText(KeyYouTubeURL))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.checkBtn.SetText(l.GetText(KeyCheckTranscripts))
	ui.transcriptsLabel.SetText(l.GetText(KeyAvailableTranscripts))
	ui.translationsLabel.SetText(l.GetText(KeyAvailableTranslations))
	ui.formatLabel.SetText(l.GetText(KeyOutputFormat))
	ui.obtainBtn.SetText(l.GetText(KeyObtainTranscript))
	ui.recentLabel.SetText(l.GetText(KeyRecentTranscripts))
	ui.resultList.Refresh()
}

// onCheckClick starts listing the caption tracks of the entered URL
func (ui *RootUI) onCheckClick() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.GetText(KeyPleaseEnterURL), ui.window)
		return
	}

	ui.checkBtn.Disable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyChecking))
	ui.setTrackOptions(nil, nil)

	task, err := ui.fetchSvc.ListTracks(url)
	if err != nil {
		ui.showError(err.Error())
		return
	}
	ui.logger.Debug("list task started", slog.String("task_id", task.ID))
}

// onObtainClick starts fetching the transcript in the selected format
func (ui *RootUI) onObtainClick() {
	url := strings.TrimSpace(ui.urlEntry.Text)

	ui.obtainBtn.Disable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyObtaining))

	outputFormat, err := format.Parse(ui.formatSelect.Selected)
	if err != nil {
		ui.showError(err.Error())
		return
	}

	task, err := ui.fetchSvc.FetchTranscript(url, outputFormat)
	if err != nil {
		ui.showError(err.Error())
		return
	}
	ui.logger.Debug("fetch task started", slog.String("task_id", task.ID), slog.String("format", outputFormat.String()))
}

// onTaskUpdate receives task updates on the worker goroutine
func (ui *RootUI) onTaskUpdate(task model.TranscriptTask) {
	if !task.Status.IsFinished() {
		return
	}
	fyne.Do(func() {
		ui.handleTaskFinished(task)
	})
}

// handleTaskFinished applies a terminal task event; must run on the UI thread
func (ui *RootUI) handleTaskFinished(task model.TranscriptTask) {
	if task.Status == model.TaskStatusError {
		if task.Kind == model.TaskKindFetch {
			ui.addResult(task)
		}
		ui.showError(task.LastError)
		return
	}

	switch task.Kind {
	case model.TaskKindList:
		ui.setTrackOptions(model.TrackLabels(task.Tracks), model.TranslationLabels(task.Tracks))
		ui.obtainBtn.Enable()
		ui.checkBtn.Enable()
		ui.statusLabel.SetText(ui.localization.GetText(KeyReadyToConvert))

	case model.TaskKindFetch:
		ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeySavedAs), task.OutputPath))
		ui.obtainBtn.Enable()
		ui.addResult(task)

		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeySuccess),
			Content: task.GetDisplayTitle(),
		})
		dialog.ShowInformation(
			ui.localization.GetText(KeySuccess),
			fmt.Sprintf(ui.localization.GetText(KeyTranscriptSavedAs), task.OutputPath),
			ui.window,
		)

		if ui.settings.GetAutoRevealOnComplete() {
			ui.onRevealFile(task.OutputPath)
		}
	}
}

// showError resets the actions so the user has to check the URL again
func (ui *RootUI) showError(message string) {
	ui.statusLabel.SetText(ui.localization.GetText(KeyErrorOccurred))
	ui.checkBtn.Enable()
	ui.obtainBtn.Disable()
	dialog.ShowError(fmt.Errorf(ui.localization.GetText(KeyErrorMessage), message), ui.window)
}

// setTrackOptions fills the language and translation selects, preselecting the first entry
func (ui *RootUI) setTrackOptions(languages, translations []string) {
	for _, pair := range []struct {
		sel     *widget.Select
		options []string
	}{
		{ui.languageSelect, languages},
		{ui.translationSelect, translations},
	} {
		pair.sel.ClearSelected()
		pair.sel.SetOptions(pair.options)
		if len(pair.options) > 0 {
			pair.sel.SetSelected(pair.options[0])
		}
	}
}

func (ui *RootUI) addResult(task model.TranscriptTask) {
	ui.results = append([]model.TranscriptTask{task}, ui.results...)
	if len(ui.results) > RecentResultsLimit {
		ui.results = ui.results[:RecentResultsLimit]
	}
	ui.resultList.Refresh()
}

func (ui *RootUI) createResultItem() fyne.CanvasObject {
	row := NewResultRow(model.TranscriptTask{}, ui.localization)
	row.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
	return row
}

func (ui *RootUI) updateResultItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.results) {
		return
	}
	if row, ok := item.(*ResultRow); ok {
		row.UpdateTask(ui.results[id])
	}
}

func (ui *RootUI) onShowFormatHelp() {
	dialog.ShowInformation(ui.localization.GetText(KeyOutputFormat), ui.localization.GetText(KeyFormatHelp), ui.window)
}

// onShowSettings shows the settings dialog and applies saved values
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		dir := ui.settings.GetOutputDirectory()
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			ui.logger.Warn("failed to create output directory", slog.String("dir", dir), slog.Any("error", err))
		}
		ui.fetchSvc.SetOutputDirectory(dir)
		ui.formatSelect.SetSelected(ui.settings.GetOutputFormat().String())

		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
	})
}

// onRevealFile reveals a saved transcript in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Warn("reveal failed", slog.String("path", filePath), slog.Any("error", err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onOpenFile opens a saved transcript with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Warn("open failed", slog.String("path", filePath), slog.Any("error", err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onCopyPath copies the transcript path to the clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	fyne.CurrentApp().Clipboard().SetContent(filePath)
	ui.statusLabel.SetText(ui.localization.GetText(KeyPathCopied))
}
