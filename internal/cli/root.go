package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/vgrid/internal/config"
	"github.com/rshade/vgrid/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationInteractive marks commands that may take over the terminal. Their
// logs never go to the terminal.
const annotationInteractive = "vgrid.interactive"

// NewRootCmd creates the root Cobra command for the vgrid CLI.
// It loads configuration, wires up logging and registers the subcommands
// (browse, demo, layout, config, version).
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "vgrid",
		Short: "Virtualized grid browser for the terminal",
		Long: `vgrid lays out collections of variable-height cards in a responsive,
virtualized grid. Only the rows inside the viewport are rendered; row heights
are measured after each frame and fed back into the layout.`,
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $VGRID_HOME/config.yaml)")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .vgrid/config.yaml")
	cmd.AddCommand(NewBrowseCmd(), NewDemoCmd(), NewLayoutCmd(), newConfigCmd(), NewVersionCmd())

	return cmd
}

const rootCmdExample = `  # Browse the current directory as a grid of cards
  vgrid browse

  # Browse a directory with narrower cards
  vgrid browse ./docs --item-max-width 24

  # Show 10,000 synthetic cards of varying height
  vgrid demo --items 10000

  # Print the layout of 100 items in a 1024x768 container
  vgrid layout --items 100 --width 1024 --height 768 --scroll 250

  # Initialize configuration
  vgrid config init`

// loadConfig installs the global configuration for the command. An explicit
// --config file must load and validate; otherwise the global config file is
// overlaid with the nearest project config.
func loadConfig(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		config.SetGlobalConfig(cfg)
		return nil
	}

	flagDir, _ := cmd.Flags().GetString("project-dir")
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	projectDir := config.ResolveProjectDir(cmd.Context(), flagDir, wd)
	config.SetResolvedProjectDir(projectDir)
	config.InitGlobalConfigWithProject(cmd.Context(), projectDir)
	return nil
}

// newConfigCmd groups the configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vgrid configuration",
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
