package model

import "testing"

func TestPlaybackStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   PlaybackStatus
		expected bool
	}{
		{PlaybackStatusPending, false},
		{PlaybackStatusStarting, true},
		{PlaybackStatusPlaying, true},
		{PlaybackStatusStopping, true},
		{PlaybackStatusStopped, false},
		{PlaybackStatusCompleted, false},
		{PlaybackStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("PlaybackStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestPlaybackStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   PlaybackStatus
		expected bool
	}{
		{PlaybackStatusPending, false},
		{PlaybackStatusStarting, false},
		{PlaybackStatusPlaying, false},
		{PlaybackStatusStopping, false},
		{PlaybackStatusStopped, true},
		{PlaybackStatusCompleted, true},
		{PlaybackStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("PlaybackStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestPlaybackStatus_String(t *testing.T) {
	status := PlaybackStatusPlaying
	if result := status.String(); result != "Playing" {
		t.Errorf("PlaybackStatus.String() = %s, expected Playing", result)
	}
}
