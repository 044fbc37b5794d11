package ui

import (
	"log/slog"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-transcript/internal/model"
)

// ResultRow shows one finished fetch task with actions on the saved file
type ResultRow struct {
	widget.BaseWidget

	task         model.TranscriptTask
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	detailLabel *widget.Label
	statusLabel *widget.Label

	// Action buttons
	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open with default app
	copyBtn   *widget.Button

	// Callbacks
	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewResultRow creates a new result row widget
func NewResultRow(task model.TranscriptTask, localization *Localization) *ResultRow {
	rr := &ResultRow{
		task:         task,
		localization: localization,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromTask()
	return rr
}

// SetCallbacks sets the action callbacks
func (rr *ResultRow) SetCallbacks(onReveal, onOpen, onCopyPath func(filePath string)) {
	rr.onReveal = onReveal
	rr.onOpen = onOpen
	rr.onCopyPath = onCopyPath
}

// UpdateTask updates the row with new task data
func (rr *ResultRow) UpdateTask(task model.TranscriptTask) {
	rr.task = task
	rr.updateFromTask()
	rr.Refresh()
}

func (rr *ResultRow) createUI() {
	rr.titleLabel = widget.NewLabel("")
	rr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	rr.detailLabel = widget.NewLabel("")
	rr.detailLabel.Truncation = fyne.TextTruncateEllipsis

	rr.statusLabel = widget.NewLabel("")
	rr.statusLabel.Alignment = fyne.TextAlignTrailing

	rr.revealBtn = widget.NewButton(IconFolder, func() { rr.invoke(rr.onReveal) })
	rr.openBtn = widget.NewButton(IconFile, func() { rr.invoke(rr.onOpen) })
	rr.copyBtn = widget.NewButton(IconCopy, func() { rr.invoke(rr.onCopyPath) })
	for _, btn := range []*widget.Button{rr.revealBtn, rr.openBtn, rr.copyBtn} {
		btn.Importance = widget.LowImportance
	}
}

// invoke runs an action on the current output path; rows are reused by the list
func (rr *ResultRow) invoke(action func(string)) {
	if action == nil || rr.task.OutputPath == "" {
		slog.Debug("result row action ignored", slog.String("task_id", rr.task.ID))
		return
	}
	action(rr.task.OutputPath)
}

func (rr *ResultRow) updateFromTask() {
	rr.titleLabel.SetText(cleanDisplayText(rr.task.GetDisplayTitle()))

	detail := rr.task.Format
	if rr.task.OutputPath != "" {
		detail += MiddleDotSeparator + filepath.Base(rr.task.OutputPath)
	} else if rr.task.LastError != "" {
		detail += MiddleDotSeparator + cleanDisplayText(rr.task.LastError)
	}
	if detail == "" {
		detail = DashPlaceholder
	}
	rr.detailLabel.SetText(detail)

	switch rr.task.Status {
	case model.TaskStatusError:
		rr.statusLabel.Importance = widget.DangerImportance
		rr.statusLabel.SetText(IconError)
	case model.TaskStatusCompleted:
		rr.statusLabel.Importance = widget.SuccessImportance
		rr.statusLabel.SetText(IconDone)
	default:
		rr.statusLabel.Importance = widget.MediumImportance
		rr.statusLabel.SetText(rr.task.Status.String())
	}

	hasFile := rr.task.OutputPath != ""
	for _, btn := range []*widget.Button{rr.revealBtn, rr.openBtn, rr.copyBtn} {
		if hasFile {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// CreateRenderer creates the widget renderer
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(rr.titleLabel, rr.detailLabel)
	actions := container.NewHBox(rr.statusLabel, rr.revealBtn, rr.openBtn, rr.copyBtn)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, actions, text))
}

// MinSize keeps rows readable in narrow windows
func (rr *ResultRow) MinSize() fyne.Size {
	size := rr.BaseWidget.MinSize()
	return fyne.NewSize(max(size.Width, RowMinWidth), max(size.Height, RowMinHeight))
}

// cleanDisplayText flattens control characters that break single-line labels
func cleanDisplayText(s string) string {
	s = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
	return strings.TrimSpace(s)
}
