// Package player streams audio files from the backend into a local cache
// and plays them through an external player process.
package player
