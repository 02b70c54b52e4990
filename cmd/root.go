package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mame7743/zen-temple/internal/config"
	"github.com/mame7743/zen-temple/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  logging.Logger = logging.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zen-temple",
	Short: "Zero-build, zero-magic frontend components",
	Long: `zen-temple scaffolds and validates html/template components that use
HTMX for server communication and Alpine.js classes for client state.

Quick Start:
  zen-temple new my-app            Create a new project
  zen-temple component user-card   Add a component
  zen-temple validate              Check components against the conventions
  zen-temple render counter        Render a component to stdout
  zen-temple philosophy            Show the design principles`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is "+config.FileName+", can also use ZEN_TEMPLE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))

	AddFlagValidation(rootCmd.PersistentFlags(), "log-format", func(format string) error {
		return ValidateFormat(format, []string{"text", "json"})
	})
}

// initConfig points viper at the project file and enables ZEN_TEMPLE_
// environment overrides. A missing file is not an error.
//
// Priority (highest to lowest):
//  1. --config flag
//  2. ZEN_TEMPLE_CONFIG_FILE environment variable
//  3. zen-temple.yaml in the current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv(config.EnvPrefix + "_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(strings.TrimSuffix(config.FileName, ".yaml"))
	}

	if err := config.BindEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger(cmd *cobra.Command) logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LevelFromString(viper.GetString("log-level"))
	cfg.Format = viper.GetString("log-format")
	cfg.Output = cmd.ErrOrStderr()
	return logging.NewLogger(cfg)
}

// loadConfig loads the project configuration with defaults for anything the
// file does not set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
