package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/vgrid/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the config file (--config or
$VGRID_HOME/config.yaml), the project overlay and environment overrides.

This includes:
- Schema version compatibility
- Grid sizing values (item width, gap, estimate height)
- Browse settings (preview lines, concurrency)`,
		Example: `  # Validate current configuration
  vgrid config validate

  # Validate and show detailed information
  vgrid config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", valueOrNone(cfg.ConfigPath()))
	cmd.Printf("  Project directory: %s\n", valueOrNone(config.GetResolvedProjectDir()))
	cmd.Printf("  Schema version: %s\n", cfg.Version)
	cmd.Printf("  Item max width: %d\n", cfg.Grid.ItemMaxWidth)
	cmd.Printf("  Gap: %d\n", cfg.Grid.Gap)
	cmd.Printf("  Estimate height: %d\n", cfg.Grid.EstimateHeight)
	cmd.Printf("  Preview lines: %d\n", cfg.Browse.PreviewLines)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", valueOrNone(cfg.Logging.File))
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
