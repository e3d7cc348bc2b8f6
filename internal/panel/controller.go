package panel

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/audiodeck/audio-panel/internal/api"
	"github.com/audiodeck/audio-panel/internal/model"
	"github.com/audiodeck/audio-panel/internal/player"
)

// UploadAutoPlayDelay is how long the panel waits after a successful
// upload before auto-playing the new track, giving the refreshed list
// time to settle on screen.
const UploadAutoPlayDelay = 500 * time.Millisecond

// User-facing messages
const (
	MsgNoUsers          = "No users found"
	MsgLoadUsersError   = "Error loading users"
	MsgLoadDetailsError = "Error loading user details"
	MsgUserNotFound     = "User not found"
	MsgEnterUserID      = "Please enter a user ID"
	MsgInvalidUserID    = "Please enter a valid user ID"
	MsgNoUserSelected   = "Please select a user first"
	MsgSelectFile       = "Please select an audio file"
	MsgUploading        = "Uploading..."
	MsgUploadInProgress = "An upload is already in progress"
	MsgUploadSuccess    = "File uploaded successfully!"
	MsgUploadError      = "Error uploading file"
	MsgDeleteSuccess    = "Audio file deleted"
	MsgDeleteError      = "Error deleting audio file"
	MsgPlaybackError    = "Error playing audio file"
)

// Controller coordinates the backend API, the playback service and the
// View. All user intent enters through its methods with every parameter
// passed explicitly; shared state lives only in the Session.
type Controller struct {
	api     api.PanelAPI
	player  player.Player
	session *model.Session
	view    View
	logger  zerolog.Logger

	autoPlayUploads func() bool
	autoPlayDelay   time.Duration
	uploading       atomic.Bool
}

// NewController wires the controller to its collaborators. autoPlayUploads
// reports the current setting; pass nil to always auto-play.
func NewController(apiClient api.PanelAPI, playbackService player.Player, session *model.Session, view View, logger zerolog.Logger, autoPlayUploads func() bool) *Controller {
	if autoPlayUploads == nil {
		autoPlayUploads = func() bool { return true }
	}
	c := &Controller{
		api:             apiClient,
		player:          playbackService,
		session:         session,
		view:            view,
		logger:          logger.With().Str("component", "panel").Logger(),
		autoPlayUploads: autoPlayUploads,
		autoPlayDelay:   UploadAutoPlayDelay,
	}
	playbackService.SetUpdateCallback(c.onPlaybackUpdate)
	return c
}

// SetAutoPlayDelay overrides the upload auto-play delay, mainly for tests.
func (c *Controller) SetAutoPlayDelay(delay time.Duration) {
	c.autoPlayDelay = delay
}

// LoadUsers fetches the user directory and renders it.
func (c *Controller) LoadUsers(ctx context.Context) {
	gen := c.session.NextUsersGen()
	c.view.ShowLoading(TargetUsers)

	users, err := c.api.ListUsers(ctx)
	if !c.session.IsLatestUsersGen(gen) {
		return
	}
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load users")
		c.view.ShowLoadError(TargetUsers, MsgLoadUsersError)
		return
	}

	c.view.RenderUsers(users)
}

// FetchUserDetails validates the free-form ID input and selects the user.
func (c *Controller) FetchUserDetails(ctx context.Context, idText string) {
	idText = strings.TrimSpace(idText)
	if idText == "" {
		c.view.ShowLoadError(TargetUserDetails, MsgEnterUserID)
		return
	}

	userID, err := strconv.ParseInt(idText, 10, 64)
	if err != nil || userID <= 0 {
		c.view.ShowLoadError(TargetUserDetails, MsgInvalidUserID)
		return
	}

	c.SelectUser(ctx, userID)
}

// SelectUser loads the detail card for userID and, on success, the
// user's audio library.
func (c *Controller) SelectUser(ctx context.Context, userID int64) {
	gen := c.session.NextDetailGen()
	c.view.ShowLoading(TargetUserDetails)

	user, err := c.api.UserDetails(ctx, userID)
	if !c.session.IsLatestDetailGen(gen) {
		return
	}
	if err != nil {
		c.session.ClearCurrentUser()
		c.view.SetUserSectionsVisible(false)
		if errors.Is(err, api.ErrUserNotFound) {
			c.view.ShowLoadError(TargetUserDetails, MsgUserNotFound)
			return
		}
		c.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to load user details")
		c.view.ShowLoadError(TargetUserDetails, MsgLoadDetailsError)
		return
	}

	c.session.SetCurrentUser(userID)
	c.view.RenderUserDetails(*user)
	c.view.SetActiveUser(userID)
	c.view.SetUserSectionsVisible(true)

	c.LoadAudioFiles(ctx, userID)
}

// LoadAudioFiles fetches the audio library for userID. A failure here is
// not fatal to the detail view; the library just renders empty.
func (c *Controller) LoadAudioFiles(ctx context.Context, userID int64) {
	gen := c.session.NextAudioGen()
	c.view.ShowLoading(TargetAudioList)

	files, err := c.api.ListAudioFiles(ctx, userID)
	if !c.session.IsLatestAudioGen(gen) {
		return
	}
	if current, ok := c.session.CurrentUserID(); !ok || current != userID {
		return
	}
	if err != nil {
		c.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to load audio files")
		files = nil
	}

	c.session.SetAudioFiles(files)
	c.view.RenderAudioFiles(files)
}

// PlayTrack starts playback of the track at index in the current library.
// An out-of-range index is ignored.
func (c *Controller) PlayTrack(index int) {
	track, ok := c.session.TrackAt(index)
	if !ok {
		return
	}

	if _, err := c.player.Play(track.URL, track.DisplayTitle()); err != nil {
		c.logger.Error().Err(err).Int64("audio_id", track.ID).Msg("failed to start playback")
		c.view.ShowStatus(StatusError, MsgPlaybackError)
		return
	}

	c.view.SetActiveTrack(index)
	c.view.SetNowPlaying(track.DisplayTitle(), true)
}

// StopPlayback stops the current track, if any.
func (c *Controller) StopPlayback() {
	if current, ok := c.player.Current(); ok && !current.Status.IsFinished() {
		if err := c.player.Stop(current.ID); err != nil {
			c.logger.Warn().Err(err).Str("task_id", current.ID).Msg("failed to stop playback")
		}
	}
	c.view.SetNowPlaying("", false)
	c.view.SetActiveTrack(-1)
}

// RequestDeleteTrack asks for confirmation and deletes the track at index.
func (c *Controller) RequestDeleteTrack(ctx context.Context, index int) {
	track, ok := c.session.TrackAt(index)
	if !ok {
		return
	}

	c.view.ConfirmDelete(func(confirmed bool) {
		if !confirmed {
			return
		}
		c.deleteTrack(ctx, track)
	})
}

func (c *Controller) deleteTrack(ctx context.Context, track model.AudioFile) {
	if err := c.api.DeleteAudio(ctx, track.ID); err != nil {
		c.logger.Error().Err(err).Int64("audio_id", track.ID).Msg("failed to delete audio file")
		c.view.ShowStatus(StatusError, serverMessage(err, MsgDeleteError))
		return
	}

	c.view.ShowStatus(StatusSuccess, MsgDeleteSuccess)

	if userID, ok := c.session.CurrentUserID(); ok {
		c.LoadAudioFiles(ctx, userID)
	}
}

// Upload sends the file to the backend for the currently selected user.
// Concurrent calls are rejected while one upload is in flight.
func (c *Controller) Upload(ctx context.Context, upload api.Upload) {
	userID, ok := c.session.CurrentUserID()
	if !ok {
		c.view.ShowStatus(StatusError, MsgNoUserSelected)
		return
	}
	if upload.Filename == "" || upload.Content == nil {
		c.view.ShowStatus(StatusError, MsgSelectFile)
		return
	}

	if !c.uploading.CompareAndSwap(false, true) {
		c.view.ShowStatus(StatusError, MsgUploadInProgress)
		return
	}
	defer c.uploading.Store(false)

	c.view.ShowStatus(StatusInfo, MsgUploading)

	created, err := c.api.UploadAudio(ctx, userID, upload)
	if err != nil {
		c.logger.Error().Err(err).Int64("user_id", userID).Msg("upload failed")
		c.view.ShowStatus(StatusError, serverMessage(err, MsgUploadError))
		return
	}

	c.view.ShowStatus(StatusSuccess, MsgUploadSuccess)
	c.view.ResetUploadForm()
	c.LoadAudioFiles(ctx, userID)

	if c.autoPlayUploads() {
		c.autoPlayTrack(created.ID)
	}
}

// autoPlayTrack plays the freshly uploaded track after the configured
// delay. It looks the track up by ID at fire time so a concurrent
// library refresh cannot shift the index under it.
func (c *Controller) autoPlayTrack(audioID int64) {
	play := func() {
		if index := c.session.TrackIndexByID(audioID); index >= 0 {
			c.PlayTrack(index)
		}
	}
	if c.autoPlayDelay <= 0 {
		play()
		return
	}
	time.AfterFunc(c.autoPlayDelay, play)
}

// onPlaybackUpdate reflects playback task transitions in the view. The
// task arrives as a snapshot, so reads here never race the player goroutine.
func (c *Controller) onPlaybackUpdate(task model.PlaybackTask) {
	current, ok := c.player.Current()
	if !ok || current.ID != task.ID {
		return
	}

	switch task.Status {
	case model.PlaybackStatusError:
		c.view.ShowStatus(StatusError, MsgPlaybackError)
		c.view.SetNowPlaying("", false)
		c.view.SetActiveTrack(-1)
	case model.PlaybackStatusCompleted, model.PlaybackStatusStopped:
		c.view.SetNowPlaying("", false)
		c.view.SetActiveTrack(-1)
	}
}

// serverMessage prefers the backend's error text over the fallback.
func serverMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
