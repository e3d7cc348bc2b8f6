package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconStop     = "⏹"
	IconDelete   = "🗑"
	IconMusic    = "🎵"
	IconUser     = "👤"
	IconRefresh  = "⟳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	NowPlayingFormat   = "Now Playing: %s"
)

// Layout sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 640

	UserRowMinWidth   float32 = 240
	UserRowMinHeight  float32 = 48
	AudioRowMinWidth  float32 = 360
	AudioRowMinHeight float32 = 52

	UsersPaneWidth float32 = 280

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 360
)

// Status message behavior
const (
	StatusAutoHide = 3 * time.Second
)

// Accepted audio file extensions for the upload picker
var AudioExtensions = []string{".mp3", ".wav", ".ogg", ".m4a", ".aac"}
