package api

// Package api implements the REST client for the user/audio-file backend. It
// covers the five panel operations (list users, user detail, list audio,
// upload audio, delete audio), cookie-based anti-forgery token handling, and
// error decoding. The backend itself is external; this package only consumes
// its documented contract.
