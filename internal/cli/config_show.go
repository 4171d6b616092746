package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/vgrid/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the effective
// configuration after file, project overlay and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  # Show configuration as YAML
  vgrid config show

  # Show configuration as JSON
  vgrid config show --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")

	return cmd
}

func runConfigShow(cmd *cobra.Command, format string) error {
	cfg := config.GetGlobalConfig()

	switch format {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshalling config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}
