// Package config provides centralized configuration constants and paths for todowing.
// All default values should be defined here to ensure a single source of truth.
package config

const (
	// AppName names the data directory and the config file.
	AppName = "todowing"

	// ConfigName is the config file base name looked up by viper (.todowing.yaml).
	ConfigName = ".todowing"

	// EnvPrefix prefixes environment overrides, e.g. TODOWING_STORAGE_BACKEND.
	EnvPrefix = "TODOWING"
)

// Storage defaults
const (
	// DefaultBackend stores each slot as a JSON file.
	DefaultBackend = "file"
)

// UI defaults
const (
	DefaultPalette = "purple-blue"
)

// DefaultLogLevel is used when log.level is unset.
const DefaultLogLevel = "info"
