package player

import (
	"github.com/audiodeck/audio-panel/internal/model"
)

// Player defines the interface for the playback service. Tasks are handed
// out as value snapshots; the live task stays owned by the service and is
// only mutated under its lock.
type Player interface {
	SetUpdateCallback(func(model.PlaybackTask))
	Play(sourceURL, title string) (model.PlaybackTask, error)
	Stop(taskID string) error
	GetTask(taskID string) (model.PlaybackTask, bool)
	Current() (model.PlaybackTask, bool)
}
