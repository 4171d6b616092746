package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/vgrid/internal/config"
	"github.com/rshade/vgrid/internal/source"
	"github.com/rshade/vgrid/internal/tui"
	"github.com/rshade/vgrid/internal/tui/gridview"
)

// NewBrowseCmd creates the browse command, which shows the entries of a
// directory as cards with a preview of their content.
func NewBrowseCmd() *cobra.Command {
	var (
		flags        gridFlags
		previewLines int
		showHidden   bool
		noMarkdown   bool
	)

	cmd := &cobra.Command{
		Use:   "browse [dir]",
		Short: "Browse a directory as a grid of cards",
		Long: `Lists the entries of a directory (the current one by default) as cards.
Text files show the first lines of their content; markdown files are rendered.
Cards have different heights, and the grid measures each row after drawing it.`,
		Example: `  # Browse the current directory
  vgrid browse

  # Browse a directory including hidden files, with longer previews
  vgrid browse ~/notes --hidden --preview-lines 20

  # Print the first screen without starting the TUI
  vgrid browse ./docs --plain`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			browseCfg := config.GetGlobalConfig().Browse
			opts := source.DirOptions{
				PreviewLines: browseCfg.PreviewLines,
				Markdown:     browseCfg.Markdown && !noMarkdown,
				Concurrency:  browseCfg.Concurrency,
				ShowHidden:   browseCfg.ShowHidden || showHidden,
			}
			if cmd.Flags().Changed("preview-lines") {
				opts.PreviewLines = previewLines
			}
			return runBrowse(cmd, dir, opts, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&previewLines, "preview-lines", 0, "lines of file content shown per card (default from config)")
	cmd.Flags().BoolVar(&showHidden, "hidden", false, "include hidden entries")
	cmd.Flags().BoolVar(&noMarkdown, "no-markdown", false, "show markdown files as plain text")

	return cmd
}

func runBrowse(cmd *cobra.Command, dir string, opts source.DirOptions, flags *gridFlags) error {
	ctx := cmd.Context()

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	items, err := source.Dir(ctx, abs, opts)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}
	logger.Debug().Ctx(ctx).Str("dir", abs).Int("items", len(items)).Msg("directory listed")

	gridOpts, err := flags.gridOptions(abs)
	if err != nil {
		return err
	}
	cards := tui.NewCardRenderer(config.GetGlobalConfig().Grid.MinItemHeight, opts.Markdown)
	m := gridview.New(items, cards.Render, gridOpts)
	return runGrid(cmd, m, flags)
}
