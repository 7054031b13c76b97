package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/todowing/internal/config"
	"github.com/josephgoksu/todowing/types"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	return validate.Struct(cfg)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	if err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		os.Exit(1)
	}
}

func loadConfig() error {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	// Environment variables must be set up before reading the config file.
	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., TODOWING_VERBOSE
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // storage.dir -> TODOWING_STORAGE_DIR
	viper.AutomaticEnv()

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".") // ./.todowing.yaml wins over the home directory
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// Config file not found by search paths, which is fine.
		case cfgFileFlag != "" && errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("specified config file not found: %s", cfgFileFlag)
		default:
			return fmt.Errorf("read config file %s: %w", viper.ConfigFileUsed(), err)
		}
	}

	viper.SetDefault("storage.backend", config.DefaultBackend)
	viper.SetDefault("ui.palette", config.DefaultPalette)
	viper.SetDefault("log.level", config.DefaultLogLevel)

	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = config.GetDataDir()
	}
	if err := validateAppConfig(&cfg); err != nil {
		return err
	}

	GlobalAppConfig = cfg
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
