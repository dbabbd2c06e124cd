// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the title line above the strip.
	HeaderHeight = 1

	// StatusHeight is the status and key hint line below the strip.
	StatusHeight = 1

	// ChromeHeight is the vertical space taken by everything but the strip.
	ChromeHeight = HeaderHeight + StatusHeight

	// MaxTileHeight caps tile height outside fullscreen.
	MaxTileHeight = 9

	// MinTileHeight is the smallest height a tile is rendered at.
	MinTileHeight = 5
)
