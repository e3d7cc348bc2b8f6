package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/audiodeck/audio-panel/internal/model"
)

// AudioRow represents a compact audio file row widget in the library list
type AudioRow struct {
	widget.BaseWidget

	file         model.AudioFile
	index        int
	active       bool
	localization *Localization

	// UI components
	titleLabel *widget.Label
	metaLabel  *widget.Label
	playBtn    *widget.Button
	deleteBtn  *widget.Button
	background *canvas.Rectangle

	// Callbacks
	onPlay   func(index int)
	onDelete func(index int)
}

// NewAudioRow creates a new audio row widget
func NewAudioRow(file model.AudioFile, localization *Localization) *AudioRow {
	ar := &AudioRow{
		file:         file,
		index:        -1,
		localization: localization,
	}
	ar.ExtendBaseWidget(ar)
	ar.createUI()
	ar.updateFromFile()
	return ar
}

// SetCallbacks sets the action callbacks
func (ar *AudioRow) SetCallbacks(onPlay, onDelete func(index int)) {
	ar.onPlay = onPlay
	ar.onDelete = onDelete
}

// UpdateFile updates the row with new file data
func (ar *AudioRow) UpdateFile(file model.AudioFile, index int, active bool) {
	ar.file = file
	ar.index = index
	ar.active = active
	ar.updateFromFile()
	ar.Refresh()
}

// Tapped starts playback on click/tap anywhere in the row
func (ar *AudioRow) Tapped(_ *fyne.PointEvent) {
	if ar.onPlay != nil && ar.index >= 0 {
		ar.onPlay(ar.index)
	}
}

// createUI creates the UI components
func (ar *AudioRow) createUI() {
	ar.titleLabel = widget.NewLabel("")
	ar.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ar.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ar.metaLabel = widget.NewLabel("")
	ar.metaLabel.Truncation = fyne.TextTruncateEllipsis

	ar.playBtn = widget.NewButton(IconPlay, func() {
		if ar.onPlay != nil && ar.index >= 0 {
			ar.onPlay(ar.index)
		}
	})
	ar.playBtn.Importance = widget.MediumImportance

	ar.deleteBtn = widget.NewButton(IconDelete, func() {
		if ar.onDelete != nil && ar.index >= 0 {
			ar.onDelete(ar.index)
		}
	})
	ar.deleteBtn.Importance = widget.DangerImportance

	ar.background = canvas.NewRectangle(color.Transparent)
}

// updateFromFile updates UI components based on file state
func (ar *AudioRow) updateFromFile() {
	title := IconMusic + " " + ar.file.DisplayTitle()
	ar.titleLabel.SetText(title)

	meta := ar.file.DisplaySize()
	if !ar.file.UploadedAt.IsZero() {
		meta += MiddleDotSeparator + model.FormatTimestamp(ar.file.UploadedAt)
	}
	ar.metaLabel.SetText(meta)

	if ar.active {
		ar.background.FillColor = theme.Color(theme.ColorNameSelection)
	} else {
		ar.background.FillColor = color.Transparent
	}
	ar.background.Refresh()
}

// CreateRenderer creates the widget renderer
func (ar *AudioRow) CreateRenderer() fyne.WidgetRenderer {
	labels := container.NewVBox(ar.titleLabel, ar.metaLabel)
	buttons := container.NewHBox(ar.playBtn, ar.deleteBtn)
	row := container.NewBorder(nil, nil, nil, buttons, labels)
	return widget.NewSimpleRenderer(container.NewStack(ar.background, row))
}

// MinSize returns the minimum row size
func (ar *AudioRow) MinSize() fyne.Size {
	min := ar.BaseWidget.MinSize()
	if min.Width < AudioRowMinWidth {
		min.Width = AudioRowMinWidth
	}
	if min.Height < AudioRowMinHeight {
		min.Height = AudioRowMinHeight
	}
	return min
}
