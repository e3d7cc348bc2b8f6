package model

import (
	"strings"
	"testing"
	"time"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{5242880, "5 MB"},
		{1073741824, "1 GB"},
		// Beyond the unit table the largest unit is reused.
		{1099511627776, "1024 GB"},
	}

	for _, test := range tests {
		result := FormatFileSize(test.bytes)
		if result != test.expected {
			t.Errorf("FormatFileSize(%d) = %s, expected %s", test.bytes, result, test.expected)
		}
	}
}

func TestAudioFile_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		path     string
		expected string
	}{
		{"My Track", "audio_files/track.mp3", "My Track"},
		{"", "audio_files/track.mp3", "track.mp3"},
		{"", "audio_files/nested/dir/song.wav", "song.wav"},
		{"", "plain.ogg", "plain.ogg"},
		{"", "", ""},
	}

	for _, test := range tests {
		audio := &AudioFile{Title: test.title, Path: test.path}
		result := audio.DisplayTitle()
		if result != test.expected {
			t.Errorf("DisplayTitle() with title='%s', path='%s' = '%s', expected '%s'",
				test.title, test.path, result, test.expected)
		}
	}
}

func TestAudioFile_DisplaySize(t *testing.T) {
	size := int64(1536)
	audio := &AudioFile{FileSize: &size}
	if result := audio.DisplaySize(); result != "1.5 KB" {
		t.Errorf("DisplaySize() = %s, expected 1.5 KB", result)
	}

	unknown := &AudioFile{}
	if result := unknown.DisplaySize(); result != UnknownSizePlaceholder {
		t.Errorf("DisplaySize() without size = %s, expected %s", result, UnknownSizePlaceholder)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	result := FormatTimestamp(ts)
	if result == "" {
		t.Error("FormatTimestamp should not return an empty string")
	}
	// The exact rendering depends on the local zone; the layout keeps the year.
	if !strings.Contains(result, "2025") {
		t.Errorf("FormatTimestamp(%v) = %s, expected the year to be present", ts, result)
	}
}
