package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/audiodeck/audio-panel/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL       = "server_url"
	KeyCacheDir        = "cache_directory"
	KeyLanguage        = "app_language"
	KeyAutoPlayUploads = "auto_play_uploads"
)

// Default values
const (
	DefaultServerURL       = "http://localhost:8000"
	DefaultLanguage        = "system"
	DefaultAutoPlayUploads = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the configured backend base URL (scheme and host,
// no trailing slash).
func (s *Settings) GetServerURL() string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the backend base URL
func (s *Settings) SetServerURL(url string) {
	s.app.Preferences().SetString(KeyServerURL, strings.TrimRight(url, "/"))
}

// GetCacheDirectory returns the directory played tracks are cached in
func (s *Settings) GetCacheDirectory() string {
	dir := s.app.Preferences().String(KeyCacheDir)
	if dir == "" {
		defaultDir, err := platform.GetCacheDir()
		if err != nil {
			defaultDir = "/tmp/audio-panel"
		}
		s.SetCacheDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetCacheDirectory sets the playback cache directory
func (s *Settings) SetCacheDirectory(dir string) {
	s.app.Preferences().SetString(KeyCacheDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoPlayUploads returns whether a freshly uploaded track is auto-played
func (s *Settings) GetAutoPlayUploads() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoPlayUploads, DefaultAutoPlayUploads)
}

// SetAutoPlayUploads sets whether a freshly uploaded track is auto-played
func (s *Settings) SetAutoPlayUploads(autoPlay bool) {
	s.app.Preferences().SetBool(KeyAutoPlayUploads, autoPlay)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
