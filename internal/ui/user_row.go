package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/audiodeck/audio-panel/internal/model"
)

// UserRow represents a compact user row widget in the directory list
type UserRow struct {
	widget.BaseWidget

	user         model.User
	active       bool
	localization *Localization

	// UI components
	nameLabel  *widget.Label
	metaLabel  *widget.Label
	background *canvas.Rectangle

	// Callbacks
	onSelect func(userID int64)
}

// NewUserRow creates a new user row widget
func NewUserRow(user model.User, localization *Localization) *UserRow {
	ur := &UserRow{
		user:         user,
		localization: localization,
	}
	ur.ExtendBaseWidget(ur)
	ur.createUI()
	ur.updateFromUser()
	return ur
}

// SetOnSelect sets the selection callback
func (ur *UserRow) SetOnSelect(onSelect func(userID int64)) {
	ur.onSelect = onSelect
}

// UpdateUser updates the row with new user data
func (ur *UserRow) UpdateUser(user model.User, active bool) {
	ur.user = user
	ur.active = active
	ur.updateFromUser()
	ur.Refresh()
}

// Tapped selects the user on click/tap
func (ur *UserRow) Tapped(_ *fyne.PointEvent) {
	if ur.onSelect != nil {
		ur.onSelect(ur.user.ID)
	}
}

// createUI creates the UI components
func (ur *UserRow) createUI() {
	ur.nameLabel = widget.NewLabel("")
	ur.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	ur.nameLabel.Truncation = fyne.TextTruncateEllipsis

	ur.metaLabel = widget.NewLabel("")
	ur.metaLabel.Truncation = fyne.TextTruncateEllipsis

	ur.background = canvas.NewRectangle(color.Transparent)
}

// updateFromUser updates UI components based on user state
func (ur *UserRow) updateFromUser() {
	ur.nameLabel.SetText(IconUser + " " + ur.user.Name)

	meta := ur.user.Email
	if ur.user.AudioFilesCount > 0 {
		meta += MiddleDotSeparator + fmt.Sprintf("%d %s", ur.user.AudioFilesCount, ur.localization.GetText(KeyTrackCount))
	}
	ur.metaLabel.SetText(meta)

	if ur.active {
		ur.background.FillColor = theme.Color(theme.ColorNameSelection)
	} else {
		ur.background.FillColor = color.Transparent
	}
	ur.background.Refresh()
}

// CreateRenderer creates the widget renderer
func (ur *UserRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(ur.nameLabel, ur.metaLabel)
	return widget.NewSimpleRenderer(container.NewStack(ur.background, content))
}

// MinSize returns the minimum row size
func (ur *UserRow) MinSize() fyne.Size {
	min := ur.BaseWidget.MinSize()
	if min.Width < UserRowMinWidth {
		min.Width = UserRowMinWidth
	}
	if min.Height < UserRowMinHeight {
		min.Height = UserRowMinHeight
	}
	return min
}
