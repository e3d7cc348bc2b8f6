// Package panel holds the presentation logic for the user and audio file
// panel. The Controller talks to the backend API and the playback service
// and drives any View implementation; the Fyne UI is one such View.
package panel
