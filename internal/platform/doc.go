// Package platform contains OS integration helpers: filesystem setup for
// the playback cache and opening downloaded tracks with the system player.
package platform
