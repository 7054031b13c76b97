/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"os"

	"github.com/josephgoksu/todowing/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// jsonOutput switches commands to machine-readable output.
	jsonOutput bool
	// quiet suppresses informational output.
	quiet bool
	// version is the application version.
	version = "1.0.0"
)

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todowing",
	Short: "todowing - a small, fast to-do list for your terminal",
	Long: `todowing keeps a to-do list on your machine.

Add tasks with a priority and an optional due date, mark them done,
filter by status and browse them in an interactive view.

Tasks are stored in ~/.todowing by default (see --config and storage.dir).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		level := cfg.Log.Level
		if cfg.Quiet {
			level = "error"
		}
		logger.Setup(os.Stderr, level, cfg.Verbose)

		crashBase := cfg.Log.CrashDir
		if crashBase == "" {
			crashBase = cfg.Storage.Dir
		}
		logger.SetBasePath(crashBase)
		logger.SetVersion(version)
		logger.SetCommand(cmd.CommandPath())
		logger.SetStorage(cfg.Storage.Backend, cfg.Storage.Dir)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.HandlePanic()

	if err := rootCmd.Execute(); err != nil {
		var ue *userError
		if errors.As(err, &ue) {
			PrintError(ue.msg, ue.err)
		} else {
			PrintError("Error: "+err.Error(), err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.todowing.yaml or $HOME/.todowing.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print errors and essential output")

	bindPersistentFlags()
}

// bindPersistentFlags binds the global flags to Viper.
func bindPersistentFlags() {
	for _, name := range []string{"config", "verbose", "json", "quiet"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}
