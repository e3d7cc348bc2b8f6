package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It implements panel.View, wiring user interactions to the panel Controller
// and rendering the user directory, detail card, audio library, upload form,
// and playback banner. All UI strings are localized via Localization.
