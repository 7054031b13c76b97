/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// Storage backends understood by store.Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Quiet   bool          `mapstructure:"quiet"`
	JSON    bool          `mapstructure:"json"`
	Config  string        `mapstructure:"config"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig selects where the task and preference slots live.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite"`
	Dir     string `mapstructure:"dir" validate:"required"`
}

// UIConfig holds cosmetic settings for the interactive view.
type UIConfig struct {
	Palette string `mapstructure:"palette" validate:"omitempty,oneof=purple-blue red-yellow purple-pink orange-yellow"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level    string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	CrashDir string `mapstructure:"crashDir"`
}
