package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/interpretive-systems/pagewizard/internal/config"
	"github.com/interpretive-systems/pagewizard/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a wizard in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := mustGetStringFlag(cmd, "file")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if theme := viper.GetString("theme"); theme != "" {
				cfg.Theme = theme
			}

			// The TUI owns the terminal; only log when logs go to a file.
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if cmd.Flags().Changed("log-file") {
				logger = slog.Default()
			}

			res, err := tui.Run(cfg, logger)
			if err != nil {
				return fmt.Errorf("run wizard: %w", err)
			}
			if !res.Submitted {
				slog.Info("wizard closed without submitting", "file", path)
				return nil
			}
			return writeResult(cmd, res)
		},
	}
	cmd.Flags().StringP("file", "f", "wizard.yaml", "wizard definition file")
	return cmd
}

func writeResult(cmd *cobra.Command, res tui.Result) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return enc.Close()
}
