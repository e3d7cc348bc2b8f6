package model

// Package model defines domain data structures used across the app: backend
// projections (users, audio files), playback tasks with explicit state
// transitions, and the shared panel session state. Structures are designed for
// direct rendering in the UI.
