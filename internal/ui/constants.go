package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconError    = "❌"
	IconDone     = "✔"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56

	SettingsDialogW float32 = 500
	SettingsDialogH float32 = 360
)

// RecentResultsLimit caps the recent transcripts list
const RecentResultsLimit = 20
