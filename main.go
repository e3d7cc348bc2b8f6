package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/audiodeck/audio-panel/internal/api"
	"github.com/audiodeck/audio-panel/internal/config"
	"github.com/audiodeck/audio-panel/internal/logx"
	"github.com/audiodeck/audio-panel/internal/model"
	"github.com/audiodeck/audio-panel/internal/panel"
	"github.com/audiodeck/audio-panel/internal/platform"
	"github.com/audiodeck/audio-panel/internal/player"
	"github.com/audiodeck/audio-panel/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.audiodeck.audio-panel"
	AppName = "Audio Panel"
)

func main() {
	env := config.LoadEnv()
	logger := logx.New(env.IsDevelopment())
	logger.Info().Str("version", version).Msg("audio panel starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, logger)
	settings := rootUI.Settings()

	cacheDir := settings.GetCacheDirectory()
	if err := platform.CreateDirectoryIfNotExists(cacheDir); err != nil {
		logger.Warn().Err(err).Str("dir", cacheDir).Msg("failed to ensure cache dir")
	}

	// Environment overrides beat stored preferences
	serverURL := settings.GetServerURL()
	if env.ServerURL != "" {
		serverURL = env.ServerURL
	}

	apiClient, err := api.NewClient(serverURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("url", serverURL).Msg("invalid server URL")
	}
	if env.CookieHeader != "" {
		apiClient.ImportCookies(env.CookieHeader)
	}

	playbackSvc := player.NewService(cacheDir, logger)

	session := model.NewSession()
	controller := panel.NewController(apiClient, playbackSvc, session, rootUI, logger, settings.GetAutoPlayUploads)
	rootUI.SetController(controller)

	rootUI.Start()

	// Show and run
	myWindow.ShowAndRun()
}
