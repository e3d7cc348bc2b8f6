package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/audiodeck/audio-panel/internal/api"
	"github.com/audiodeck/audio-panel/internal/model"
	"github.com/audiodeck/audio-panel/internal/panel"
)

type stubAPI struct{}

func (stubAPI) ListUsers(ctx context.Context) ([]model.User, error) { return nil, nil }
func (stubAPI) UserDetails(ctx context.Context, id int64) (*model.User, error) {
	return &model.User{ID: id, Name: "Alice"}, nil
}
func (stubAPI) ListAudioFiles(ctx context.Context, userID int64) ([]model.AudioFile, error) {
	return nil, nil
}
func (stubAPI) UploadAudio(ctx context.Context, userID int64, upload api.Upload) (*model.AudioFile, error) {
	return nil, nil
}
func (stubAPI) DeleteAudio(ctx context.Context, audioID int64) error { return nil }

type stubPlayer struct{}

func (stubPlayer) SetUpdateCallback(func(model.PlaybackTask)) {}
func (stubPlayer) Play(sourceURL, title string) (model.PlaybackTask, error) {
	return model.PlaybackTask{}, nil
}
func (stubPlayer) Stop(taskID string) error { return nil }
func (stubPlayer) GetTask(taskID string) (model.PlaybackTask, bool) {
	return model.PlaybackTask{}, false
}
func (stubPlayer) Current() (model.PlaybackTask, bool) { return model.PlaybackTask{}, false }

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")

	root := NewRootUI(window, app, zerolog.Nop())
	ctrl := panel.NewController(stubAPI{}, stubPlayer{}, model.NewSession(), root, zerolog.Nop(), nil)
	root.SetController(ctrl)
	return root
}

func TestUserSelectionFillsLookupField(t *testing.T) {
	root := newTestRootUI(t)

	root.onUserSelected(7)

	// The lookup field mirrors the clicked user so it always shows the id
	// the detail card belongs to
	if root.userIDEntry.Text != "7" {
		t.Errorf("userIDEntry.Text = %q, expected %q", root.userIDEntry.Text, "7")
	}
}

func TestUserSelectionOverwritesStaleLookupText(t *testing.T) {
	root := newTestRootUI(t)
	root.userIDEntry.SetText("999")

	root.onUserSelected(3)

	if root.userIDEntry.Text != "3" {
		t.Errorf("userIDEntry.Text = %q, expected %q", root.userIDEntry.Text, "3")
	}
}
