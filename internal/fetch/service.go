package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-transcript/internal/format"
	"github.com/ytget/yt-transcript/internal/model"
	"github.com/ytget/yt-transcript/internal/platform"
)

// ErrTaskActive is returned when a task of the same kind is still running
var ErrTaskActive = errors.New("a task of this kind is already running")

// Service handles list and fetch operations
type Service struct {
	provider   Provider
	logger     *slog.Logger
	tasks      map[string]*model.TranscriptTask
	tasksMutex sync.RWMutex
	active     map[model.TaskKind]string // kind -> running task ID
	outputDir  string
	onUpdate   func(model.TranscriptTask) // callback for UI updates
}

// NewService creates a fetch service writing into outputDir
func NewService(provider Provider, outputDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider:  provider,
		logger:    logger,
		tasks:     make(map[string]*model.TranscriptTask),
		active:    make(map[model.TaskKind]string),
		outputDir: outputDir,
	}
}

// SetUpdateCallback sets the callback invoked with a snapshot on every task state change.
// It runs on the worker goroutine.
func (s *Service) SetUpdateCallback(callback func(model.TranscriptTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetOutputDirectory sets the directory transcript files are written to
func (s *Service) SetOutputDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.outputDir = dir
}

// ListTracks starts a task listing the caption tracks of the video behind url
func (s *Service) ListTracks(url string) (*model.TranscriptTask, error) {
	task, err := s.addTask(model.TaskKindList, url, "")
	if err != nil {
		return nil, err
	}
	go s.run(task, s.listTracks)
	return task, nil
}

// FetchTranscript starts a task downloading the default-language transcript
// of the video behind url and writing it in outputFormat.
func (s *Service) FetchTranscript(url string, outputFormat format.OutputFormat) (*model.TranscriptTask, error) {
	if !outputFormat.Valid() {
		return nil, fmt.Errorf("%w: %d", format.ErrUnknownFormat, int(outputFormat))
	}
	task, err := s.addTask(model.TaskKindFetch, url, outputFormat.String())
	if err != nil {
		return nil, err
	}
	go s.run(task, func(ctx context.Context, t *model.TranscriptTask) error {
		return s.fetchTranscript(ctx, t, outputFormat)
	})
	return task, nil
}

// GetTask returns a snapshot of a task by ID
func (s *Service) GetTask(id string) (model.TranscriptTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return model.TranscriptTask{}, false
	}
	return *task, true
}

// GetAllTasks returns snapshots of all tasks, oldest first
func (s *Service) GetAllTasks() []model.TranscriptTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]model.TranscriptTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, *task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

func (s *Service) addTask(kind model.TaskKind, url, formatName string) (*model.TranscriptTask, error) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if id, busy := s.active[kind]; busy {
		return nil, fmt.Errorf("%w: %s task %s", ErrTaskActive, kind, id)
	}

	task := model.NewTranscriptTask(generateTaskID(), kind, url)
	task.Format = formatName
	s.tasks[task.ID] = task
	s.active[kind] = task.ID

	s.logger.Info("task added", slog.String("task_id", task.ID), slog.String("kind", string(kind)), slog.String("url", url))
	return task, nil
}

// run drives one task to its terminal state. The kind is released before the
// terminal update is published, and Done is closed last.
func (s *Service) run(task *model.TranscriptTask, work func(context.Context, *model.TranscriptTask) error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusRunning
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	ctx := context.Background()

	var err error
	videoID, extractErr := platform.ExtractVideoID(task.URL)
	if extractErr != nil {
		err = extractErr
	} else {
		s.tasksMutex.Lock()
		task.VideoID = videoID
		s.tasksMutex.Unlock()
		err = work(ctx, task)
	}

	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	if err != nil {
		s.logger.Error("task failed", slog.String("task_id", task.ID), slog.String("kind", string(task.Kind)), slog.Any("error", err))
	} else {
		s.logger.Info("task completed", slog.String("task_id", task.ID), slog.String("kind", string(task.Kind)), slog.Duration("duration", task.Duration()))
	}

	s.tasksMutex.Lock()
	if s.active[task.Kind] == task.ID {
		delete(s.active, task.Kind)
	}
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	task.MarkDone()
}

func (s *Service) listTracks(ctx context.Context, task *model.TranscriptTask) error {
	tracks, err := s.provider.ListTranscripts(ctx, task.VideoID)
	if err != nil {
		return err
	}

	s.tasksMutex.Lock()
	task.Tracks = tracks
	s.tasksMutex.Unlock()
	return nil
}

func (s *Service) fetchTranscript(ctx context.Context, task *model.TranscriptTask, outputFormat format.OutputFormat) error {
	entries, err := s.provider.FetchTranscript(ctx, task.VideoID)
	if err != nil {
		return err
	}

	title, err := s.provider.FetchTitle(ctx, task.VideoID)
	if err != nil {
		s.logger.Debug("title lookup failed, using video ID", slog.String("video_id", task.VideoID), slog.Any("error", err))
		title = task.VideoID
	}

	content, err := outputFormat.Format(entries)
	if err != nil {
		return err
	}

	// An empty stem is kept and yields a file named ".<ext>"
	stem := platform.SanitizeFilename(title)

	s.tasksMutex.RLock()
	dir := s.outputDir
	s.tasksMutex.RUnlock()

	path, err := platform.WriteTranscriptFile(dir, stem, outputFormat.Extension(), content)
	if err != nil {
		return err
	}

	s.tasksMutex.Lock()
	task.Title = title
	task.OutputPath = path
	s.tasksMutex.Unlock()
	return nil
}

// notifyUpdate calls the update callback if set with a snapshot of the task
func (s *Service) notifyUpdate(task *model.TranscriptTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	snapshot := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(snapshot)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
