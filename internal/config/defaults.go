// ABOUTME: Centralized configuration defaults for gamedex
// ABOUTME: Display and server constants shared across commands

package config

// Display settings
const (
	DefaultListLimit = 20
	SeparatorWidth   = 60
	ExcerptLength    = 80
)

// Serve settings
const (
	DefaultServeAddr = ":8080"
)
