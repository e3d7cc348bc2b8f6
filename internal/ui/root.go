package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/audiodeck/audio-panel/internal/api"
	"github.com/audiodeck/audio-panel/internal/config"
	"github.com/audiodeck/audio-panel/internal/model"
	"github.com/audiodeck/audio-panel/internal/panel"
)

// RootUI represents the main UI structure. It implements panel.View; the
// Controller drives it from worker goroutines, so every mutation goes
// through fyne.Do.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger
	controller   *panel.Controller

	// User directory
	users        []model.User
	activeUserID int64
	usersList    *widget.List
	usersStatus  *widget.Label
	refreshBtn   *widget.Button

	// Detail lookup and card
	userIDEntry  *widget.Entry
	fetchBtn     *widget.Button
	detailStatus *widget.Label
	nameLabel    *widget.Label
	emailLabel   *widget.Label
	phoneLabel   *widget.Label
	bioLabel     *widget.Label
	createdLabel *widget.Label
	countLabel   *widget.Label
	detailCard   *fyne.Container

	// Audio library
	files       []model.AudioFile
	activeTrack int
	audioList   *widget.List
	audioStatus *widget.Label

	// Upload form
	selectedFile fyne.URI
	fileLabel    *widget.Label
	titleEntry   *widget.Entry
	chooseBtn    *widget.Button
	uploadBtn    *widget.Button
	uploadStatus *widget.Label
	statusSeq    int

	// Playback banner
	nowPlayingLabel *widget.Label
	stopBtn         *widget.Button
	nowPlayingBox   *fyne.Container

	// Detail, audio and upload sections, hidden until a user is selected
	userSections *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, logger zerolog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger.With().Str("component", "ui").Logger(),
		activeTrack:  -1,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// SetController attaches the panel controller once it is constructed
func (ui *RootUI) SetController(controller *panel.Controller) {
	ui.controller = controller
}

// Settings returns the settings the UI was built with
func (ui *RootUI) Settings() *config.Settings {
	return ui.settings
}

// Start triggers the initial data load
func (ui *RootUI) Start() {
	go ui.controller.LoadUsers(context.Background())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// User directory pane
	ui.usersStatus = widget.NewLabel("")
	ui.usersStatus.Wrapping = fyne.TextWrapWord
	ui.usersStatus.Hide()

	ui.usersList = widget.NewList(
		func() int { return len(ui.users) },
		func() fyne.CanvasObject { return ui.createUserItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateUserItem(id, obj) },
	)

	ui.refreshBtn = widget.NewButton(IconRefresh+" "+ui.localization.GetText(KeyRefresh), ui.onRefreshUsers)
	ui.refreshBtn.Importance = widget.LowImportance

	usersHeader := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle(ui.localization.GetText(KeyUsers), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.refreshBtn,
	)
	usersPane := container.NewBorder(
		container.NewVBox(usersHeader, ui.usersStatus), nil, nil, nil,
		ui.usersList,
	)

	// Detail lookup row
	ui.userIDEntry = widget.NewEntry()
	ui.userIDEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterUserID))
	ui.userIDEntry.OnSubmitted = func(string) { ui.onFetchClick() }
	ui.fetchBtn = widget.NewButton(ui.localization.GetText(KeyFetchDetails), ui.onFetchClick)
	lookupRow := container.NewBorder(nil, nil, nil, ui.fetchBtn, ui.userIDEntry)

	ui.detailStatus = widget.NewLabel("")
	ui.detailStatus.Wrapping = fyne.TextWrapWord
	ui.detailStatus.Hide()

	// Detail card
	ui.nameLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.emailLabel = widget.NewLabel("")
	ui.phoneLabel = widget.NewLabel("")
	ui.bioLabel = widget.NewLabel("")
	ui.bioLabel.Wrapping = fyne.TextWrapWord
	ui.createdLabel = widget.NewLabel("")
	ui.countLabel = widget.NewLabel("")

	ui.detailCard = container.NewVBox(
		widget.NewLabelWithStyle(ui.localization.GetText(KeyUserDetails), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		ui.nameLabel,
		ui.emailLabel,
		ui.phoneLabel,
		ui.bioLabel,
		ui.createdLabel,
		ui.countLabel,
	)

	// Audio library
	ui.audioStatus = widget.NewLabel("")
	ui.audioStatus.Wrapping = fyne.TextWrapWord
	ui.audioStatus.Hide()

	ui.audioList = widget.NewList(
		func() int { return len(ui.files) },
		func() fyne.CanvasObject { return ui.createAudioItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateAudioItem(id, obj) },
	)

	audioSection := container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle(ui.localization.GetText(KeyAudioFiles), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			ui.audioStatus,
		), nil, nil, nil,
		ui.audioList,
	)

	// Upload form
	ui.fileLabel = widget.NewLabel(ui.localization.GetText(KeyNoFileChosen))
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis
	ui.chooseBtn = widget.NewButton(ui.localization.GetText(KeyChooseFile), ui.onChooseFile)
	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder(ui.localization.GetText(KeyUploadTitle))
	ui.uploadBtn = widget.NewButton(ui.localization.GetText(KeyUpload), ui.onUploadClick)
	ui.uploadBtn.Importance = widget.HighImportance
	ui.uploadStatus = widget.NewLabel("")
	ui.uploadStatus.Wrapping = fyne.TextWrapWord
	ui.uploadStatus.Hide()

	uploadForm := container.NewVBox(
		widget.NewLabelWithStyle(ui.localization.GetText(KeyUploadAudio), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, ui.chooseBtn, nil, ui.fileLabel),
		ui.titleEntry,
		ui.uploadBtn,
		ui.uploadStatus,
	)

	// Playback banner
	ui.nowPlayingLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.stopBtn = widget.NewButton(IconStop+" "+ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.nowPlayingBox = container.NewBorder(nil, nil, nil, ui.stopBtn, ui.nowPlayingLabel)
	ui.nowPlayingBox.Hide()

	ui.userSections = container.NewBorder(
		container.NewVBox(ui.detailCard, widget.NewSeparator()),
		container.NewVBox(widget.NewSeparator(), uploadForm, ui.nowPlayingBox),
		nil, nil,
		audioSection,
	)
	ui.userSections.Hide()

	rightPane := container.NewBorder(
		container.NewVBox(lookupRow, ui.detailStatus), nil, nil, nil,
		ui.userSections,
	)

	split := container.NewHSplit(usersPane, rightPane)
	split.SetOffset(float64(UsersPaneWidth / WindowWidth))

	ui.window.SetContent(split)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.userIDEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterUserID))
	ui.fetchBtn.SetText(ui.localization.GetText(KeyFetchDetails))
	ui.refreshBtn.SetText(IconRefresh + " " + ui.localization.GetText(KeyRefresh))
	ui.chooseBtn.SetText(ui.localization.GetText(KeyChooseFile))
	ui.uploadBtn.SetText(ui.localization.GetText(KeyUpload))
	ui.stopBtn.SetText(IconStop + " " + ui.localization.GetText(KeyStop))
	ui.titleEntry.SetPlaceHolder(ui.localization.GetText(KeyUploadTitle))
	ui.usersList.Refresh()
	ui.audioList.Refresh()
}

// createUserItem creates a new user list item widget
func (ui *RootUI) createUserItem() fyne.CanvasObject {
	row := NewUserRow(model.User{}, ui.localization)
	row.SetOnSelect(ui.onUserSelected)
	return row
}

// updateUserItem updates a user list item with current data
func (ui *RootUI) updateUserItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.users) {
		return
	}
	if row, ok := item.(*UserRow); ok {
		row.SetOnSelect(ui.onUserSelected)
		user := ui.users[id]
		row.UpdateUser(user, user.ID == ui.activeUserID)
	}
}

// createAudioItem creates a new audio list item widget
func (ui *RootUI) createAudioItem() fyne.CanvasObject {
	row := NewAudioRow(model.AudioFile{}, ui.localization)
	row.SetCallbacks(ui.onPlayTrack, ui.onDeleteTrack)
	return row
}

// updateAudioItem updates an audio list item with current data
func (ui *RootUI) updateAudioItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.files) {
		return
	}
	if row, ok := item.(*AudioRow); ok {
		row.SetCallbacks(ui.onPlayTrack, ui.onDeleteTrack)
		row.UpdateFile(ui.files[id], id, id == ui.activeTrack)
	}
}

// Event handlers. Controller calls run off the UI thread so a slow
// backend never freezes the window.

func (ui *RootUI) onRefreshUsers() {
	go ui.controller.LoadUsers(context.Background())
}

func (ui *RootUI) onFetchClick() {
	idText := ui.userIDEntry.Text
	go ui.controller.FetchUserDetails(context.Background(), idText)
}

func (ui *RootUI) onUserSelected(userID int64) {
	// Mirror the selection into the lookup field so it always shows the
	// id the detail card belongs to.
	ui.userIDEntry.SetText(strconv.FormatInt(userID, 10))
	go ui.controller.SelectUser(context.Background(), userID)
}

func (ui *RootUI) onPlayTrack(index int) {
	go ui.controller.PlayTrack(index)
}

func (ui *RootUI) onDeleteTrack(index int) {
	go ui.controller.RequestDeleteTrack(context.Background(), index)
}

func (ui *RootUI) onStopClick() {
	go ui.controller.StopPlayback()
}

// onChooseFile opens the audio file picker
func (ui *RootUI) onChooseFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		// Only the URI is kept; the file is reopened at upload time.
		reader.Close()
		ui.selectedFile = reader.URI()
		ui.fileLabel.SetText(reader.URI().Name())
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(AudioExtensions))
	fileDialog.Show()
}

// onUploadClick submits the upload form
func (ui *RootUI) onUploadClick() {
	uri := ui.selectedFile
	title := strings.TrimSpace(ui.titleEntry.Text)

	if uri == nil {
		// Let the controller produce the validation message
		go ui.controller.Upload(context.Background(), api.Upload{Title: title})
		return
	}

	go func() {
		reader, err := storage.Reader(uri)
		if err != nil {
			ui.logger.Error().Err(err).Str("uri", uri.String()).Msg("failed to open selected file")
			ui.ShowStatus(panel.StatusError, err.Error())
			return
		}
		defer reader.Close()

		ui.controller.Upload(context.Background(), api.Upload{
			Filename: uri.Name(),
			Title:    title,
			Content:  reader,
		})
	}()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// panel.View implementation

// RenderUsers replaces the user directory contents
func (ui *RootUI) RenderUsers(users []model.User) {
	fyne.Do(func() {
		ui.users = users
		if len(users) == 0 {
			ui.usersStatus.Importance = widget.MediumImportance
			ui.usersStatus.SetText(panel.MsgNoUsers)
			ui.usersStatus.Show()
		} else {
			ui.usersStatus.Hide()
		}
		ui.usersList.Refresh()
	})
}

// RenderUserDetails fills the detail card
func (ui *RootUI) RenderUserDetails(user model.User) {
	fyne.Do(func() {
		ui.detailStatus.Hide()
		ui.nameLabel.SetText(user.Name)
		ui.emailLabel.SetText(ui.localization.GetText(KeyEmail) + ": " + user.Email)
		ui.phoneLabel.SetText(ui.localization.GetText(KeyPhone) + ": " + user.DisplayPhone())
		ui.bioLabel.SetText(ui.localization.GetText(KeyBio) + ": " + user.DisplayBio())
		ui.createdLabel.SetText(ui.localization.GetText(KeyMemberSince) + ": " + user.DisplayCreatedAt())
		ui.countLabel.SetText(fmt.Sprintf("%d %s", user.AudioFilesCount, ui.localization.GetText(KeyTrackCount)))
	})
}

// RenderAudioFiles replaces the audio library contents
func (ui *RootUI) RenderAudioFiles(files []model.AudioFile) {
	fyne.Do(func() {
		ui.files = files
		ui.activeTrack = -1
		if len(files) == 0 {
			ui.audioStatus.Importance = widget.MediumImportance
			ui.audioStatus.SetText(ui.localization.GetText(KeyNoAudioFiles))
			ui.audioStatus.Show()
		} else {
			ui.audioStatus.Hide()
		}
		ui.audioList.Refresh()
	})
}

// SetActiveUser highlights the selected user in the directory
func (ui *RootUI) SetActiveUser(userID int64) {
	fyne.Do(func() {
		ui.activeUserID = userID
		ui.usersList.Refresh()
	})
}

// SetActiveTrack highlights the playing track
func (ui *RootUI) SetActiveTrack(index int) {
	fyne.Do(func() {
		ui.activeTrack = index
		ui.audioList.Refresh()
	})
}

// SetNowPlaying updates the playback banner
func (ui *RootUI) SetNowPlaying(title string, visible bool) {
	fyne.Do(func() {
		if visible {
			ui.nowPlayingLabel.SetText(fmt.Sprintf(NowPlayingFormat, title))
			ui.nowPlayingBox.Show()
		} else {
			ui.nowPlayingBox.Hide()
		}
	})
}

// SetUserSectionsVisible toggles the detail and audio sections
func (ui *RootUI) SetUserSectionsVisible(visible bool) {
	fyne.Do(func() {
		if visible {
			ui.userSections.Show()
		} else {
			ui.userSections.Hide()
		}
	})
}

// ShowLoading marks a region as loading
func (ui *RootUI) ShowLoading(target panel.Target) {
	fyne.Do(func() {
		label := ui.statusLabelFor(target)
		if label == nil {
			return
		}
		label.Importance = widget.MediumImportance
		label.SetText(ui.localization.GetText(KeyLoading))
		label.Show()
	})
}

// ShowLoadError replaces a region's contents with an error message
func (ui *RootUI) ShowLoadError(target panel.Target, message string) {
	fyne.Do(func() {
		label := ui.statusLabelFor(target)
		if label == nil {
			return
		}
		label.Importance = widget.DangerImportance
		label.SetText(message)
		label.Show()
	})
}

// ShowStatus displays a transient status message near the upload form.
// Success messages hide themselves after StatusAutoHide.
func (ui *RootUI) ShowStatus(kind panel.StatusKind, message string) {
	fyne.Do(func() {
		switch kind {
		case panel.StatusSuccess:
			ui.uploadStatus.Importance = widget.SuccessImportance
		case panel.StatusError:
			ui.uploadStatus.Importance = widget.DangerImportance
		default:
			ui.uploadStatus.Importance = widget.MediumImportance
		}
		ui.uploadStatus.SetText(message)
		ui.uploadStatus.Show()

		ui.statusSeq++
		if kind == panel.StatusSuccess {
			seq := ui.statusSeq
			time.AfterFunc(StatusAutoHide, func() {
				fyne.Do(func() {
					// A newer message may have replaced this one
					if ui.statusSeq == seq {
						ui.uploadStatus.Hide()
					}
				})
			})
		}
	})
}

// ResetUploadForm clears the upload form
func (ui *RootUI) ResetUploadForm() {
	fyne.Do(func() {
		ui.selectedFile = nil
		ui.fileLabel.SetText(ui.localization.GetText(KeyNoFileChosen))
		ui.titleEntry.SetText("")
	})
}

// ConfirmDelete asks the user to confirm a deletion
func (ui *RootUI) ConfirmDelete(confirmed func(bool)) {
	fyne.Do(func() {
		confirm := dialog.NewConfirm(
			ui.localization.GetText(KeyDeleteConfirm),
			ui.localization.GetText(KeyDeleteQuestion),
			func(ok bool) {
				go confirmed(ok)
			},
			ui.window,
		)
		confirm.SetConfirmText(ui.localization.GetText(KeyDelete))
		confirm.SetDismissText(ui.localization.GetText(KeyCancel))
		confirm.Show()
	})
}

// statusLabelFor maps a panel target to its status label
func (ui *RootUI) statusLabelFor(target panel.Target) *widget.Label {
	switch target {
	case panel.TargetUsers:
		return ui.usersStatus
	case panel.TargetUserDetails:
		return ui.detailStatus
	case panel.TargetAudioList:
		return ui.audioStatus
	}
	return nil
}
