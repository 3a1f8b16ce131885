package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/penwyp/autotap/config"
	"github.com/penwyp/autotap/internal/app"
	"github.com/penwyp/autotap/logging"
)

var (
	cfgFile  string
	logLevel string
	logFile  string
	noColor  bool
	debug    bool
	verbose  bool
	// Clicker flags
	clickDelay  float64
	clickCPS    float64
	clickButton string
	// Output flags
	summaryJSON string
)

var rootCmd = &cobra.Command{
	Use:   "autotap",
	Short: "Auto clicker with global hotkeys",
	Long: `autotap simulates repeated mouse-button presses at a configurable rate,
controlled through process-wide hotkeys and a live terminal dashboard.

While it runs, the hotkeys work no matter which window has focus:
  1    start/stop clicking
  2    pause/resume clicking
  3    show statistics
  0    exit
  Esc  emergency stop`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if debug {
			cfg.Debug.Enabled = true
			cfg.App.LogLevel = "debug"
		}

		logging.InitGlobalLogger(cfg.App.LogLevel, cfg.App.LogFile)

		application, err := app.New(cfg, app.Options{
			ConfigPath:  watchedConfigPath(),
			SummaryPath: summaryJSON,
		})
		if err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "Starting autotap: button=%s delay=%s\n",
				cfg.Clicker.MouseButton(), cfg.Clicker.EffectiveDelay())
		}

		return application.Run()
	},
}

// Execute adds all child commands to the root command and runs it
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.autotap.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (logging is off without one)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Clicker flags
	rootCmd.Flags().Float64VarP(&clickDelay, "delay", "d", 0.1, "delay between clicks in seconds")
	rootCmd.Flags().Float64VarP(&clickCPS, "cps", "c", 0, "clicks per second (overrides delay)")
	rootCmd.Flags().StringVarP(&clickButton, "button", "b", "left", "mouse button to click (left, right, middle)")
	rootCmd.Flags().StringVar(&summaryJSON, "summary-json", "", "write the final session summary as JSON to this file")

	// Bind flags to viper
	for key, flag := range map[string]string{
		"app.log_level":  "log-level",
		"app.log_file":   "log-file",
		"ui.no_color":    "no-color",
		"debug.enabled":  "debug",
		"clicker.button": "button",
		"clicker.cps":    "cps",
	} {
		var err error
		if f := rootCmd.PersistentFlags().Lookup(flag); f != nil {
			err = viper.BindPFlag(key, f)
		} else {
			err = viper.BindPFlag(key, rootCmd.Flags().Lookup(flag))
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to bind %s flag: %v\n", flag, err)
		}
	}
}

// initConfig reads in the config file and environment variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".autotap")
	}

	viper.SetEnvPrefix("AUTOTAP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

// loadConfiguration assembles the layered configuration
func loadConfiguration(cmd *cobra.Command) (*config.Config, error) {
	loader := config.NewLoader()

	if cfgFile != "" {
		loader.AddSource(config.NewFileSource(cfgFile))
	} else {
		for _, path := range config.ConfigPaths() {
			loader.AddSource(config.NewFileSource(path))
		}
	}

	loader.AddSource(config.NewEnvSource("AUTOTAP"))
	loader.AddSource(config.NewFlagSource(cmd.Flags()))
	loader.AddValidator(config.NewStandardValidator())

	return loader.LoadWithDefaults()
}

// watchedConfigPath returns the config file monitored for live reload
func watchedConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	for _, path := range config.ConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
