package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-transcript/internal/config"
	"github.com/ytget/yt-transcript/internal/fetch"
	"github.com/ytget/yt-transcript/internal/platform"
	"github.com/ytget/yt-transcript/internal/transcript"
	"github.com/ytget/yt-transcript/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-transcript"
	AppName = "YT Transcript"

	WindowWidth  = 640
	WindowHeight = 560
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("starting", slog.String("app", AppName), slog.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		logger.Warn("failed to ensure output dir", slog.String("dir", outputDir), slog.Any("error", err))
	}

	client := transcript.NewClient(transcript.WithLogger(logger))
	fetchSvc := fetch.NewService(client, outputDir, logger)

	ui.NewRootUI(myWindow, myApp, fetchSvc, logger)

	myWindow.ShowAndRun()
}
