package model

import (
	"testing"
)

func TestSession_CurrentUser(t *testing.T) {
	session := NewSession()

	if _, ok := session.CurrentUserID(); ok {
		t.Error("New session should not have a current user")
	}

	session.SetCurrentUser(7)
	id, ok := session.CurrentUserID()
	if !ok || id != 7 {
		t.Errorf("CurrentUserID() = (%d, %v), expected (7, true)", id, ok)
	}

	// Last write wins.
	session.SetCurrentUser(9)
	id, _ = session.CurrentUserID()
	if id != 9 {
		t.Errorf("CurrentUserID() after reselect = %d, expected 9", id)
	}

	session.ClearCurrentUser()
	if _, ok := session.CurrentUserID(); ok {
		t.Error("ClearCurrentUser should unset the selection")
	}
}

func TestSession_AudioFilesReplacement(t *testing.T) {
	session := NewSession()

	session.SetAudioFiles([]AudioFile{{ID: 1}, {ID: 2}, {ID: 3}})
	if session.TrackCount() != 3 {
		t.Errorf("TrackCount() = %d, expected 3", session.TrackCount())
	}

	// Replacement is wholesale, never a merge.
	session.SetAudioFiles([]AudioFile{{ID: 42}})
	files := session.AudioFiles()
	if len(files) != 1 || files[0].ID != 42 {
		t.Errorf("AudioFiles() after replacement = %v, expected single entry with ID 42", files)
	}

	// The returned slice is a copy; mutating it must not affect the session.
	files[0].ID = 99
	if index := session.TrackIndexByID(42); index != 0 {
		t.Error("Mutating the returned slice should not change session state")
	}
}

func TestSession_TrackAt(t *testing.T) {
	session := NewSession()
	session.SetAudioFiles([]AudioFile{{ID: 10}, {ID: 20}})

	tests := []struct {
		index    int
		expectOK bool
		expectID int64
	}{
		{0, true, 10},
		{1, true, 20},
		{2, false, 0},
		{-1, false, 0},
	}

	for _, test := range tests {
		track, ok := session.TrackAt(test.index)
		if ok != test.expectOK {
			t.Errorf("TrackAt(%d) ok = %v, expected %v", test.index, ok, test.expectOK)
		}
		if ok && track.ID != test.expectID {
			t.Errorf("TrackAt(%d) ID = %d, expected %d", test.index, track.ID, test.expectID)
		}
	}
}

func TestSession_TrackIndexByID(t *testing.T) {
	session := NewSession()
	session.SetAudioFiles([]AudioFile{{ID: 5}, {ID: 42}})

	if index := session.TrackIndexByID(42); index != 1 {
		t.Errorf("TrackIndexByID(42) = %d, expected 1", index)
	}
	if index := session.TrackIndexByID(777); index != -1 {
		t.Errorf("TrackIndexByID(777) = %d, expected -1", index)
	}
}

func TestSession_Generations(t *testing.T) {
	session := NewSession()

	first := session.NextDetailGen()
	if !session.IsLatestDetailGen(first) {
		t.Error("A freshly issued generation should be the latest")
	}

	second := session.NextDetailGen()
	if session.IsLatestDetailGen(first) {
		t.Error("An older generation should no longer be the latest")
	}
	if !session.IsLatestDetailGen(second) {
		t.Error("The newest generation should be the latest")
	}

	// Counters are independent per target.
	usersGen := session.NextUsersGen()
	audioGen := session.NextAudioGen()
	if !session.IsLatestUsersGen(usersGen) || !session.IsLatestAudioGen(audioGen) {
		t.Error("Users and audio generations should be tracked independently")
	}
	if !session.IsLatestDetailGen(second) {
		t.Error("Bumping other targets should not invalidate the detail generation")
	}
}
