package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// File size formatting constants
const (
	FileSizeUnit = 1024

	UnknownSizePlaceholder = "Unknown size"
)

// FileSizeUnitNames lists the supported unit names in ascending order. Sizes
// beyond the table are clamped to the largest unit.
var FileSizeUnitNames = []string{"Bytes", "KB", "MB", "GB"}

// Timestamp display format
const TimestampDisplayFormat = "Jan 2, 2006 15:04"

// AudioFile is a client-side projection of one uploaded audio asset. The full
// collection for the current user is replaced wholesale on every load; entries
// keep the server response order.
type AudioFile struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title,omitempty"`
	Path       string    `json:"audio_file"`
	URL        string    `json:"audio_url"`
	FileSize   *int64    `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// DisplayTitle returns the title, falling back to the trailing path segment of
// the stored file reference when no title was set.
func (a *AudioFile) DisplayTitle() string {
	if a.Title != "" {
		return a.Title
	}
	if idx := strings.LastIndex(a.Path, "/"); idx >= 0 {
		return a.Path[idx+1:]
	}
	return a.Path
}

// DisplaySize returns the human readable file size, or a placeholder when the
// backend could not determine it.
func (a *AudioFile) DisplaySize() string {
	if a.FileSize == nil {
		return UnknownSizePlaceholder
	}
	return FormatFileSize(*a.FileSize)
}

// DisplayUploadedAt returns the upload timestamp formatted for display.
func (a *AudioFile) DisplayUploadedAt() string {
	return FormatTimestamp(a.UploadedAt)
}

// FormatFileSize formats a byte count to a human readable string. Zero is
// "0 Bytes"; otherwise the byte count is divided by the largest fitting power
// of 1024 (clamped to the unit table) and rounded to two decimal places with
// trailing zeros dropped.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(FileSizeUnit)))
	if exp < 0 {
		exp = 0
	}
	if exp >= len(FileSizeUnitNames) {
		exp = len(FileSizeUnitNames) - 1
	}
	value := math.Round(float64(bytes)/math.Pow(FileSizeUnit, float64(exp))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + FileSizeUnitNames[exp]
}

// FormatTimestamp formats a backend timestamp for display in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampDisplayFormat)
}
