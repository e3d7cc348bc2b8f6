package model

import (
	"time"
)

// PlaybackTask represents a single playback attempt for one track. Tasks are
// owned by the player service; the UI only observes them through the update
// callback.
type PlaybackTask struct {
	ID         string
	SourceURL  string         // playable URL from the backend
	Title      string         // display title resolved at play time
	LocalPath  string         // cache file the audio is played from
	Status     PlaybackStatus
	LastError  string    // last error message if any
	StartedAt  time.Time // when playback was requested
	FinishedAt time.Time // when playback finished
}
