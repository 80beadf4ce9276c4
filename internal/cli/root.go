package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
		logFile string
	)

	root := &cobra.Command{
		Use:   "pagewizard",
		Short: "Step-by-step terminal wizards",
		Long:  "Pagewizard: run multi-page terminal wizards declared in YAML.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initConfig(cfgFile)
			return setupLogging(cmd, verbose, logFile)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is $HOME/.pagewizard.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newRunCmd(), newValidateCmd())
	return root
}

// initConfig loads user settings from the settings file and environment.
func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Debug("no home directory, skipping settings file", "error", err)
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pagewizard")
	}

	viper.SetEnvPrefix("PAGEWIZARD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using settings file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging(cmd *cobra.Command, verbose bool, logFile string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = cmd.ErrOrStderr()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = f
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return nil
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
