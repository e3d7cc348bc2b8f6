package model

import (
	"sync"
)

// Session holds the panel-wide mutable state: the currently selected user and
// the last successfully loaded audio collection. All access goes through
// setters so the views can be exercised against an injected snapshot.
//
// The generation counters guard against overlapping async loads: a load bumps
// the counter for its target before issuing the request, and its completion is
// applied only while it still matches the latest generation.
type Session struct {
	mu sync.RWMutex

	currentUserID int64
	hasUser       bool
	audioFiles    []AudioFile

	usersGen  uint64
	detailGen uint64
	audioGen  uint64
}

// NewSession creates an empty session: no selected user, no audio files.
func NewSession() *Session {
	return &Session{}
}

// CurrentUserID returns the selected user id and whether one is selected.
func (s *Session) CurrentUserID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserID, s.hasUser
}

// SetCurrentUser records the selected user. Selection is single-value,
// last-write-wins.
func (s *Session) SetCurrentUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = id
	s.hasUser = true
}

// ClearCurrentUser unsets the selection, returning the panel to the "no valid
// current user" state.
func (s *Session) ClearCurrentUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = 0
	s.hasUser = false
}

// AudioFiles returns a copy of the current audio collection in server order.
func (s *Session) AudioFiles() []AudioFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	files := make([]AudioFile, len(s.audioFiles))
	copy(files, s.audioFiles)
	return files
}

// SetAudioFiles replaces the audio collection wholesale. The collection is
// never patched incrementally; every mutation reloads it from the server.
func (s *Session) SetAudioFiles(files []AudioFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audioFiles = make([]AudioFile, len(files))
	copy(s.audioFiles, files)
}

// TrackCount returns the number of tracks in the current collection.
func (s *Session) TrackCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.audioFiles)
}

// TrackAt returns the track at index, reporting false when the index is
// outside the collection bounds.
func (s *Session) TrackAt(index int) (AudioFile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.audioFiles) {
		return AudioFile{}, false
	}
	return s.audioFiles[index], true
}

// TrackIndexByID returns the index of the track with the given id, or -1 when
// the collection does not contain it.
func (s *Session) TrackIndexByID(id int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, f := range s.audioFiles {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// NextUsersGen starts a new user-directory load generation.
func (s *Session) NextUsersGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersGen++
	return s.usersGen
}

// IsLatestUsersGen reports whether gen is still the newest directory load.
func (s *Session) IsLatestUsersGen(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersGen == gen
}

// NextDetailGen starts a new user-detail load generation.
func (s *Session) NextDetailGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailGen++
	return s.detailGen
}

// IsLatestDetailGen reports whether gen is still the newest detail load.
func (s *Session) IsLatestDetailGen(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detailGen == gen
}

// NextAudioGen starts a new audio-library load generation.
func (s *Session) NextAudioGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audioGen++
	return s.audioGen
}

// IsLatestAudioGen reports whether gen is still the newest library load.
func (s *Session) IsLatestAudioGen(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.audioGen == gen
}
