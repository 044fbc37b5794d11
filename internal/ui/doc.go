// Package ui contains the Fyne desktop shell. It collects a YouTube URL, lists
// the caption tracks, starts transcript fetches on the fetch service and shows
// the saved files. All UI strings are localized via Localization.
package ui
