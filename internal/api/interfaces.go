package api

import (
	"context"
	"io"

	"github.com/audiodeck/audio-panel/internal/model"
)

// PanelAPI defines the backend operations the panel consumes.
type PanelAPI interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	UserDetails(ctx context.Context, id int64) (*model.User, error)
	ListAudioFiles(ctx context.Context, userID int64) ([]model.AudioFile, error)
	UploadAudio(ctx context.Context, userID int64, upload Upload) (*model.AudioFile, error)
	DeleteAudio(ctx context.Context, audioID int64) error
}

// Upload describes one audio file submission. Title is optional and omitted
// from the request when empty.
type Upload struct {
	Filename string
	Title    string
	Content  io.Reader
}
