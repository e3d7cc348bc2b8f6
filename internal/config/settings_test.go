package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if url := settings.GetServerURL(); url != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, url)
	}

	// Test setting custom value
	settings.SetServerURL("https://panel.example.com")
	if url := settings.GetServerURL(); url != "https://panel.example.com" {
		t.Errorf("Expected custom server URL, got %s", url)
	}

	// Trailing slashes are stripped so endpoint joining stays predictable
	settings.SetServerURL("https://panel.example.com/")
	if url := settings.GetServerURL(); url != "https://panel.example.com" {
		t.Errorf("Expected trailing slash to be stripped, got %s", url)
	}
}

func TestCacheDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dir := settings.GetCacheDirectory(); dir == "" {
		t.Error("Cache directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/cache"
	settings.SetCacheDirectory(customDir)
	if dir := settings.GetCacheDirectory(); dir != customDir {
		t.Errorf("Expected cache directory %s, got %s", customDir, dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}
}

func TestAutoPlayUploads(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoPlayUploads() {
		t.Error("Auto-play uploads should default to true")
	}

	settings.SetAutoPlayUploads(false)
	if settings.GetAutoPlayUploads() {
		t.Error("Expected auto-play uploads to be disabled")
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvCookies, "")
	t.Setenv(EnvEnvironment, "")

	env := LoadEnv()
	if !env.IsDevelopment() {
		t.Error("Environment should default to development")
	}

	t.Setenv(EnvEnvironment, "production")
	env = LoadEnv()
	if env.IsDevelopment() {
		t.Error("Expected production environment")
	}
}
