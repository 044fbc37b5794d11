// Package cli implements the headless yt-transcript command.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/yt-transcript/internal/fetch"
	"github.com/ytget/yt-transcript/internal/format"
	"github.com/ytget/yt-transcript/internal/model"
	"github.com/ytget/yt-transcript/internal/platform"
	"github.com/ytget/yt-transcript/internal/transcript"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// playlistExpander resolves a playlist URL into its videos
type playlistExpander interface {
	Expand(ctx context.Context, rawURL string) ([]model.PlaylistVideo, error)
}

type runner struct {
	stdout   io.Writer
	stderr   io.Writer
	provider fetch.Provider
	playlist playlistExpander
}

// Run executes the command with the given arguments, excluding the program name
func Run(args []string) error {
	r := &runner{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		playlist: platform.NewPlaylistExpander(),
	}
	return r.run(context.Background(), args)
}

func (r *runner) run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("yt-transcript", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	formatName := fs.String("format", format.JSON.String(), "output format: json|pretty|text|vtt|srt")
	list := fs.Bool("list", false, "list available transcripts and translations instead of fetching")
	outDir := fs.String("out", "", "output directory (default: current directory)")
	playlist := fs.Bool("playlist", false, "treat the URL as a playlist and fetch every video")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(r.stderr, "usage: yt-transcript [-format srt] [-list] [-out dir] [-playlist] [-v] <url>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("exactly one URL is required")
	}
	url := fs.Arg(0)

	outputFormat, err := format.Parse(*formatName)
	if err != nil {
		return err
	}
	if err := platform.CreateDirectoryIfNotExists(*outDir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(r.stderr, &slog.HandlerOptions{Level: level}))

	provider := r.provider
	if provider == nil {
		provider = transcript.NewClient(transcript.WithLogger(logger))
	}
	svc := fetch.NewService(provider, *outDir, logger)

	switch {
	case *list:
		return r.listTracks(svc, url)
	case *playlist || isPlaylistOnly(url):
		return r.fetchPlaylist(ctx, svc, url, outputFormat)
	default:
		task, err := r.fetchOne(svc, url, outputFormat)
		if err != nil {
			return err
		}
		if task.Status == model.TaskStatusError {
			return errors.New(task.LastError)
		}
		return nil
	}
}

func (r *runner) listTracks(svc *fetch.Service, url string) error {
	started, err := svc.ListTracks(url)
	if err != nil {
		return err
	}
	task := wait(svc, started)
	if task.Status == model.TaskStatusError {
		return errors.New(task.LastError)
	}

	fmt.Fprintln(r.stdout, titleStyle.Render("Available Transcripts:"))
	for _, track := range task.Tracks {
		line := "  " + track.Label()
		if track.IsGenerated {
			line += " " + mutedStyle.Render("[generated]")
		}
		fmt.Fprintln(r.stdout, line)
	}

	translations := model.TranslationLabels(task.Tracks)
	if len(translations) > 0 {
		fmt.Fprintln(r.stdout, titleStyle.Render("Available Translations:"))
		for _, label := range translations {
			fmt.Fprintln(r.stdout, "  "+label)
		}
	}
	return nil
}

// fetchOne runs a single fetch task to completion and prints its outcome
func (r *runner) fetchOne(svc *fetch.Service, url string, outputFormat format.OutputFormat) (model.TranscriptTask, error) {
	started, err := svc.FetchTranscript(url, outputFormat)
	if err != nil {
		return model.TranscriptTask{}, err
	}
	task := wait(svc, started)

	if task.Status == model.TaskStatusError {
		fmt.Fprintln(r.stdout, errorStyle.Render("error:")+" "+task.LastError)
		return task, nil
	}
	fmt.Fprintln(r.stdout, okStyle.Render("Saved as:")+" "+task.OutputPath)
	return task, nil
}

func (r *runner) fetchPlaylist(ctx context.Context, svc *fetch.Service, url string, outputFormat format.OutputFormat) error {
	videos, err := r.playlist.Expand(ctx, url)
	if err != nil {
		return err
	}

	for _, video := range videos {
		fmt.Fprintln(r.stdout, mutedStyle.Render(fmt.Sprintf("[%d/%d] %s", video.Index, len(videos), video.Title)))
		if _, err := r.fetchOne(svc, video.URL(), outputFormat); err != nil {
			return err
		}
	}

	failed := 0
	for _, task := range svc.GetAllTasks() {
		if task.Status == model.TaskStatusError {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d videos failed", failed, len(videos))
	}
	return nil
}

// isPlaylistOnly reports a playlist URL that names no single video
func isPlaylistOnly(url string) bool {
	if !platform.IsPlaylistURL(url) {
		return false
	}
	_, err := platform.ExtractVideoID(url)
	return err != nil
}

// wait blocks until the task published its terminal event and returns the final snapshot
func wait(svc *fetch.Service, task *model.TranscriptTask) model.TranscriptTask {
	<-task.Done()
	snapshot, _ := svc.GetTask(task.ID)
	return snapshot
}
