package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/interpretive-systems/pagewizard/internal/config"
	"github.com/interpretive-systems/pagewizard/internal/tui/steps"
	"github.com/interpretive-systems/pagewizard/internal/wizard"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a wizard definition and list its pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := mustGetStringFlag(cmd, "file")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			c, err := mountDefinition(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pageTable(cfg, c))
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "wizard.yaml", "wizard definition file")
	return cmd
}

// mountDefinition registers every page the way the shell does, without a terminal.
func mountDefinition(cfg config.Config) (*wizard.Coordinator, error) {
	all, err := steps.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c := wizard.New()
	c.SetHeading(cfg.Heading)
	for _, s := range all {
		if err := s.Mount(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func pageTable(cfg config.Config, c *wizard.Coordinator) string {
	kinds := make(map[string]string, len(cfg.Pages))
	for _, p := range cfg.Pages {
		kinds[p.Key] = p.Kind
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "LABEL", "KIND", "REQUIRED", "RENDERED")
	for _, p := range c.Pages() {
		t.Row(p.Key, p.Label, kinds[p.Key], strconv.FormatBool(p.State.Required), strconv.FormatBool(p.State.Rendered))
	}
	heading := c.Heading()
	if heading == "" {
		heading = "(no heading)"
	}
	return heading + "\n" + t.String()
}
