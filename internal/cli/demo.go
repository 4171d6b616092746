package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/vgrid/internal/config"
	"github.com/rshade/vgrid/internal/source"
	"github.com/rshade/vgrid/internal/tui"
	"github.com/rshade/vgrid/internal/tui/gridview"
)

const defaultDemoItems = 1000

// NewDemoCmd creates the demo command, which shows generated cards of
// varying height.
func NewDemoCmd() *cobra.Command {
	var (
		flags gridFlags
		items int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show a grid of generated cards",
		Long: `Generates cards with a random number of body lines and shows them in the
virtualized grid. The same seed always produces the same cards.`,
		Example: `  # One thousand cards
  vgrid demo

  # One million cards; only the visible rows are ever rendered
  vgrid demo --items 1000000

  # A different set of cards
  vgrid demo --seed 42`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if items < 0 {
				return fmt.Errorf("--items must be >= 0, got %d", items)
			}
			return runDemo(cmd, items, seed, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&items, "items", defaultDemoItems, "number of cards")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for card contents")

	return cmd
}

func runDemo(cmd *cobra.Command, items int, seed uint64, flags *gridFlags) error {
	gridOpts, err := flags.gridOptions(fmt.Sprintf("demo seed %d", seed))
	if err != nil {
		return err
	}
	cards := tui.NewCardRenderer(config.GetGlobalConfig().Grid.MinItemHeight, false)
	m := gridview.New(source.Synthetic(items, seed), cards.Render, gridOpts)
	logger.Debug().Ctx(cmd.Context()).Int("items", items).Uint64("seed", seed).Msg("demo items generated")
	return runGrid(cmd, m, flags)
}
