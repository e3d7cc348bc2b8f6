package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/audiodeck/audio-panel/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverURLEntry *widget.Entry
	cacheDirEntry  *widget.Entry
	languageSelect *widget.Select
	autoPlayCheck  *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after a successful save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Backend server URL
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)

	// Playback cache directory
	sd.cacheDirEntry = widget.NewEntry()
	sd.cacheDirEntry.SetPlaceHolder("Cache directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	cacheDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.cacheDirEntry)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Auto-play uploaded files
	sd.autoPlayCheck = widget.NewCheck(sd.localization.GetText(KeyAutoPlay), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyServerURL) + ":"),
		sd.serverURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyCacheDirectory) + ":"),
		cacheDirRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage) + ":"),
		sd.languageSelect,

		sd.autoPlayCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.cacheDirEntry.SetText(sd.settings.GetCacheDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoPlayCheck.SetChecked(sd.settings.GetAutoPlayUploads())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.cacheDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.serverURLEntry.Text != "" {
		sd.settings.SetServerURL(sd.serverURLEntry.Text)
	}

	if sd.cacheDirEntry.Text != "" {
		sd.settings.SetCacheDirectory(sd.cacheDirEntry.Text)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetAutoPlayUploads(sd.autoPlayCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
