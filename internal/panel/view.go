package panel

import (
	"github.com/audiodeck/audio-panel/internal/model"
)

// Target identifies a panel region a load operation renders into.
type Target string

// Panel regions
const (
	TargetUsers       Target = "users"
	TargetUserDetails Target = "user_details"
	TargetAudioList   Target = "audio_list"
)

// StatusKind classifies a transient status message.
type StatusKind string

// Status message kinds
const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
	StatusInfo    StatusKind = "info"
)

// View is the rendering surface the Controller drives. Implementations
// must tolerate being called from any goroutine.
type View interface {
	// RenderUsers replaces the user directory contents.
	RenderUsers(users []model.User)
	// RenderUserDetails fills the detail card for the selected user.
	RenderUserDetails(user model.User)
	// RenderAudioFiles replaces the audio library contents.
	RenderAudioFiles(files []model.AudioFile)

	// SetActiveUser highlights the selected user in the directory.
	SetActiveUser(userID int64)
	// SetActiveTrack highlights the playing track, -1 clears the highlight.
	SetActiveTrack(index int)
	// SetNowPlaying updates the playback banner.
	SetNowPlaying(title string, visible bool)
	// SetUserSectionsVisible toggles the detail and audio sections.
	SetUserSectionsVisible(visible bool)

	// ShowLoading marks a region as loading.
	ShowLoading(target Target)
	// ShowLoadError replaces a region's contents with an error message.
	ShowLoadError(target Target, message string)
	// ShowStatus displays a transient status message.
	ShowStatus(kind StatusKind, message string)

	// ResetUploadForm clears the upload form after a successful upload.
	ResetUploadForm()
	// ConfirmDelete asks the user to confirm a deletion and reports the
	// answer through confirmed.
	ConfirmDelete(confirmed func(bool))
}
