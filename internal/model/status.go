package model

// PlaybackStatus represents the lifecycle state of a playback task.
type PlaybackStatus string

const (
	// PlaybackStatusPending: task created, fetch not started yet
	PlaybackStatusPending PlaybackStatus = "Pending"

	// PlaybackStatusStarting: the track is being fetched into the cache
	PlaybackStatusStarting PlaybackStatus = "Starting"

	// PlaybackStatusPlaying: audio output is in progress
	PlaybackStatusPlaying PlaybackStatus = "Playing"

	// PlaybackStatusStopping: a stop was requested, the player process is winding down
	PlaybackStatusStopping PlaybackStatus = "Stopping"

	// PlaybackStatusStopped: stopped before the track ended
	PlaybackStatusStopped PlaybackStatus = "Stopped"

	// PlaybackStatusCompleted: the track played to the end
	PlaybackStatusCompleted PlaybackStatus = "Completed"

	// PlaybackStatusError: fetch or playback failed, LastError holds the cause
	PlaybackStatusError PlaybackStatus = "Error"
)

func (ps PlaybackStatus) String() string {
	return string(ps)
}

// IsActive reports whether the task still occupies the player.
func (ps PlaybackStatus) IsActive() bool {
	return ps == PlaybackStatusStarting || ps == PlaybackStatusPlaying || ps == PlaybackStatusStopping
}

// IsFinished reports whether the task reached a terminal state.
func (ps PlaybackStatus) IsFinished() bool {
	return ps == PlaybackStatusCompleted || ps == PlaybackStatusStopped || ps == PlaybackStatusError
}
