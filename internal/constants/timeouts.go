// Package constants defines timeout values used throughout the application.
package constants

import "time"

const (
	// Outbound provider call timeout
	DefaultHTTPTimeout = 10 * time.Second

	// Inbound server timeouts
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerShutdownTimeout = 10 * time.Second

	// Genre directory
	GenreSnapshotMaxAge    = 7 * 24 * time.Hour
	GenreSnapshotRetention = 30 * 24 * time.Hour
	GenreWarmupTimeout     = 15 * time.Second
	GenreRefreshTimeout    = 30 * time.Second
)
