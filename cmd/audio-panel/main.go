package main

import (
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

func main() {
	env := config.LoadEnv()
	logger := logx.New(env.IsDevelopment())

	// Create new Fyne app
	myApp := app.NewWithID("com.audiodeck.audio-panel")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Audio Panel")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, logger)
	settings := rootUI.Settings()

	cacheDir := settings.GetCacheDirectory()
	if err := platform.CreateDirectoryIfNotExists(cacheDir); err != nil {
		logger.Warn().Err(err).Str("dir", cacheDir).Msg("failed to ensure cache dir")
	}

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

	controller := panel.NewController(apiClient, playbackSvc, model.NewSession(), rootUI, logger, settings.GetAutoPlayUploads)
	rootUI.SetController(controller)
	rootUI.Start()

	// Show and run
	myWindow.ShowAndRun()
}
