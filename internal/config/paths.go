package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// localDataDir is checked relative to the working directory.
const localDataDir = "." + AppName

// GetGlobalConfigDir returns the path to the global directory (~/.todowing).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, localDataDir), nil
}

// GetDataDir returns the directory holding the slots.
// Resolution order (first match wins):
// 1. Explicit config via "storage.dir" (Viper/env/flag)
// 2. Local project directory: .todowing (if exists)
// 3. XDG_DATA_HOME/todowing (if XDG_DATA_HOME is set)
// 4. Global fallback: ~/.todowing
func GetDataDir() string {
	if path := viper.GetString("storage.dir"); path != "" {
		return path
	}

	if info, err := os.Stat(localDataDir); err == nil && info.IsDir() {
		return localDataDir
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, AppName)
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return localDataDir
	}
	return dir
}

// GetConfigFilePath returns the config file viper loaded, or the file a
// write should create: ~/.todowing.yaml.
func GetConfigFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigName+".yaml"), nil
}
