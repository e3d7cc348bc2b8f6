package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvServerURL   = "AUDIO_PANEL_SERVER_URL"
	EnvCookies     = "AUDIO_PANEL_COOKIES"
	EnvEnvironment = "AUDIO_PANEL_ENV"
)

// Env carries environment-level overrides loaded once at startup. They take
// precedence over stored preferences so a deployment can pin the backend
// without touching per-user state.
type Env struct {
	// ServerURL overrides the backend base URL when non-empty.
	ServerURL string

	// CookieHeader is a raw `;`-delimited cookie string seeded into the API
	// client, e.g. a session captured from an authenticated browser.
	CookieHeader string

	// Environment is "development" or "production"; controls log output.
	Environment string
}

// LoadEnv reads overrides from the process environment. A local .env file is
// honored when present; a missing file is not an error.
func LoadEnv() *Env {
	_ = godotenv.Load()

	env := &Env{
		ServerURL:    os.Getenv(EnvServerURL),
		CookieHeader: os.Getenv(EnvCookies),
		Environment:  os.Getenv(EnvEnvironment),
	}
	if env.Environment == "" {
		env.Environment = "development"
	}
	return env
}

// IsDevelopment reports whether the app runs with development logging.
func (e *Env) IsDevelopment() bool {
	return e.Environment == "development"
}
