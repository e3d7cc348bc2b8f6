package player

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/audiodeck/audio-panel/internal/model"
	"github.com/audiodeck/audio-panel/internal/platform"
)

// Player process constants
const (
	FFplayCommand  = "ffplay"
	FFplayLogLevel = "error"
	NoDisplayFlag  = "-nodisp"
	AutoExitFlag   = "-autoexit"
	LogLevelFlag   = "-loglevel"
)

// Task and cache constants
const (
	TaskIDPrefix          = "play-"
	DefaultAudioExtension = ".mp3"
	DefaultFetchTimeout   = 60 * time.Second
)

// Service handles audio playback operations
type Service struct {
	tasks      map[string]*model.PlaybackTask
	cancels    map[string]context.CancelFunc
	currentID  string
	tasksMutex sync.RWMutex
	cacheDir   string
	httpClient *http.Client
	logger     zerolog.Logger
	onUpdate   func(model.PlaybackTask) // callback for UI updates
}

// NewService creates a new playback service caching fetched tracks in cacheDir
func NewService(cacheDir string, logger zerolog.Logger) Player {
	return &Service{
		tasks:      make(map[string]*model.PlaybackTask),
		cancels:    make(map[string]context.CancelFunc),
		cacheDir:   cacheDir,
		httpClient: &http.Client{Timeout: DefaultFetchTimeout},
		logger:     logger.With().Str("component", "player").Logger(),
	}
}

// SetUpdateCallback sets the callback function for task updates. Callbacks
// receive a snapshot of the task taken under the service lock.
func (s *Service) SetUpdateCallback(callback func(model.PlaybackTask)) {
	s.onUpdate = callback
}

// Play starts playback of the audio file at sourceURL. Any track that is
// already playing is stopped first; only one task is active at a time.
func (s *Service) Play(sourceURL, title string) (model.PlaybackTask, error) {
	if sourceURL == "" {
		return model.PlaybackTask{}, fmt.Errorf("audio source URL is empty")
	}

	s.tasksMutex.Lock()

	// Stop the running track before starting a new one
	if current, exists := s.tasks[s.currentID]; exists && current.Status.IsActive() {
		current.Status = model.PlaybackStatusStopping
		if cancel, ok := s.cancels[current.ID]; ok {
			cancel()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	task := &model.PlaybackTask{
		ID:        generateTaskID(),
		SourceURL: sourceURL,
		Title:     title,
		Status:    model.PlaybackStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task
	s.cancels[task.ID] = cancel
	s.currentID = task.ID
	snapshot := *task
	s.tasksMutex.Unlock()

	go s.startPlayback(ctx, task)

	return snapshot, nil
}

// Stop stops a running playback task
func (s *Service) Stop(taskID string) error {
	s.tasksMutex.Lock()

	task, exists := s.tasks[taskID]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("playback task not found: %s", taskID)
	}

	if task.Status.IsFinished() {
		s.tasksMutex.Unlock()
		return fmt.Errorf("playback task is not active: %s", task.Status)
	}

	task.Status = model.PlaybackStatusStopping
	cancel := s.cancels[taskID]
	s.tasksMutex.Unlock()

	if cancel != nil {
		cancel()
	}
	s.notifyUpdate(task)

	return nil
}

// GetTask returns a snapshot of a playback task by ID
func (s *Service) GetTask(taskID string) (model.PlaybackTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	if !exists {
		return model.PlaybackTask{}, false
	}
	return *task, true
}

// Current returns a snapshot of the most recently started playback task
func (s *Service) Current() (model.PlaybackTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[s.currentID]
	if !exists {
		return model.PlaybackTask{}, false
	}
	return *task, true
}

// startPlayback fetches the track into the cache and runs the player
func (s *Service) startPlayback(ctx context.Context, task *model.PlaybackTask) {
	s.setStatus(task, model.PlaybackStatusStarting)

	localPath, err := s.fetchToCache(ctx, task.SourceURL, task.ID)
	if err != nil {
		if ctx.Err() == context.Canceled {
			s.finishTask(task, model.PlaybackStatusStopped, nil)
			return
		}
		s.logger.Error().Err(err).Str("url", task.SourceURL).Msg("failed to fetch audio file")
		s.finishTask(task, model.PlaybackStatusError, err)
		return
	}

	s.tasksMutex.Lock()
	task.LocalPath = localPath
	s.tasksMutex.Unlock()

	s.setStatus(task, model.PlaybackStatusPlaying)

	if _, err := exec.LookPath(FFplayCommand); err != nil {
		// No ffplay on this machine, hand the file to the system player.
		if openErr := platform.OpenFileWithDefaultApp(localPath); openErr != nil {
			s.finishTask(task, model.PlaybackStatusError, openErr)
			return
		}
		s.finishTask(task, model.PlaybackStatusCompleted, nil)
		return
	}

	cmd := exec.CommandContext(ctx, FFplayCommand, buildPlayerArgs(localPath)...)
	err = cmd.Run()

	switch {
	case ctx.Err() == context.Canceled:
		s.finishTask(task, model.PlaybackStatusStopped, nil)
	case err != nil:
		s.logger.Error().Err(err).Str("path", localPath).Msg("player exited with error")
		s.finishTask(task, model.PlaybackStatusError, err)
	default:
		s.finishTask(task, model.PlaybackStatusCompleted, nil)
	}
}

// fetchToCache downloads sourceURL into the cache directory and returns
// the local file path
func (s *Service) fetchToCache(ctx context.Context, sourceURL, taskID string) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(s.cacheDir); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch audio file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status fetching audio file: %s", resp.Status)
	}

	localPath := filepath.Join(s.cacheDir, cacheFileName(sourceURL, taskID))
	file, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to create cache file: %w", err)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(localPath)
		return "", fmt.Errorf("failed to write cache file: %w", err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close cache file: %w", err)
	}

	return localPath, nil
}

// setStatus updates the task status and notifies listeners, unless the
// task was asked to stop in the meantime
func (s *Service) setStatus(task *model.PlaybackTask, status model.PlaybackStatus) {
	s.tasksMutex.Lock()
	if task.Status == model.PlaybackStatusStopping {
		s.tasksMutex.Unlock()
		return
	}
	task.Status = status
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// finishTask records the terminal state of a task
func (s *Service) finishTask(task *model.PlaybackTask, status model.PlaybackStatus, err error) {
	s.tasksMutex.Lock()
	task.Status = status
	if err != nil {
		task.LastError = err.Error()
	}
	task.FinishedAt = time.Now()
	delete(s.cancels, task.ID)
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback, if set, with a snapshot taken
// under the lock so listeners never observe a half-written task
func (s *Service) notifyUpdate(task *model.PlaybackTask) {
	if s.onUpdate == nil {
		return
	}
	s.tasksMutex.RLock()
	snapshot := *task
	s.tasksMutex.RUnlock()
	s.onUpdate(snapshot)
}

// buildPlayerArgs builds the ffplay command arguments
func buildPlayerArgs(localPath string) []string {
	return []string{
		NoDisplayFlag,             // No video window
		AutoExitFlag,              // Exit when the track ends
		LogLevelFlag, FFplayLogLevel,
		localPath,
	}
}

// cacheFileName derives a unique cache file name, preserving the audio
// extension from the source URL so the player can sniff the format
func cacheFileName(sourceURL, taskID string) string {
	ext := DefaultAudioExtension
	if parsed, err := url.Parse(sourceURL); err == nil {
		if e := path.Ext(parsed.Path); e != "" {
			ext = e
		}
	}
	return taskID + ext
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
