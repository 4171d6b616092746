package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/vgrid/internal/config"
	"github.com/rshade/vgrid/internal/logging"
	"github.com/rshade/vgrid/internal/tui"
	"github.com/rshade/vgrid/internal/tui/gridview"
)

// staticFrameHeight is the height of the frame printed when the output is not
// an interactive terminal.
const staticFrameHeight = 40

// maxStaticPasses bounds the render/read cycles of a static frame.
const maxStaticPasses = 64

// gridFlags are the display flags shared by the interactive grid commands.
type gridFlags struct {
	itemMaxWidth int
	gap          int
	plain        bool
	noColor      bool
	interactive  bool
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.itemMaxWidth, "item-max-width", 0, "card width in cells (0 = use config)")
	cmd.Flags().IntVar(&f.gap, "gap", -1, "gap between cards in cells (-1 = use config)")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "print one static frame instead of starting the TUI")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colors")
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "start the TUI even when stdout is not a terminal")
}

// gridOptions merges the configured grid section with the command flags.
func (f *gridFlags) gridOptions(title string) (gridview.Options, error) {
	cfg := config.GetGlobalConfig().Grid
	if f.itemMaxWidth > 0 {
		cfg.ItemMaxWidth = f.itemMaxWidth
	}
	if f.gap >= 0 {
		cfg.Gap = f.gap
	}
	if cfg.ItemMaxWidth < 1 {
		return gridview.Options{}, fmt.Errorf("item width must be positive, got %d", cfg.ItemMaxWidth)
	}

	gridLogger := logging.ComponentLogger(logger, "grid")
	return gridview.Options{
		Title:          title,
		ItemMaxWidth:   cfg.ItemMaxWidth,
		Gap:            cfg.Gap,
		EstimateHeight: cfg.EstimateHeight,
		ScrollStep:     cfg.ScrollStep,
		Logger:         &gridLogger,
	}, nil
}

// runGrid shows m as a full-screen program, or prints a single settled frame
// when the output mode is not interactive.
func runGrid[T any](cmd *cobra.Command, m *gridview.Model[T], flags *gridFlags) error {
	mode := tui.DetectOutputMode(flags.plain, flags.noColor, flags.interactive)
	logger.Debug().Ctx(cmd.Context()).Str("output_mode", mode.String()).Msg("output mode detected")

	if mode != tui.OutputModeInteractive {
		frame := renderStatic(m, tui.TerminalWidth(), staticFrameHeight)
		_, err := fmt.Fprintln(cmd.OutOrStdout(), frame)
		return err
	}
	return runInteractive(cmd.Context(), m, watchedConfigPath(cmd))
}

// runInteractive runs the program until it quits. While it runs, changes to
// the config file at watchPath resize the cards. The grid is closed however the
// program ends.
func runInteractive[T any](
	ctx context.Context,
	m *gridview.Model[T],
	watchPath string,
	extra ...tea.ProgramOption,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer m.Close()

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)}, extra...)
	p := tea.NewProgram(m, opts...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("failed to run interactive TUI: %w", err)
		}
		return nil
	})
	if watchPath != "" {
		g.Go(func() error {
			err := config.Watch(gctx, watchPath, func(cfg *config.Config) {
				p.Send(gridview.ItemWidthMsg{Width: cfg.Grid.ItemMaxWidth})
			})
			if err != nil {
				logger.Warn().Ctx(gctx).Err(err).Msg("config hot reload disabled")
			}
			return nil
		})
	}
	return g.Wait()
}

// watchedConfigPath returns the config file whose changes are applied to a
// running grid. A project overlay is not reloaded, so nothing is watched when
// one is in effect.
func watchedConfigPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	if config.GetResolvedProjectDir() != "" {
		return ""
	}
	path := config.GetGlobalConfig().ConfigPath()
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// renderStatic drives m through render and read phases at the given size until
// nothing is left to measure, and returns the resulting view.
func renderStatic[T any](m *gridview.Model[T], width, height int) string {
	defer m.Close()

	pending := []tea.Cmd{m.Init()}
	_, cmd := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	pending = append(pending, cmd)

	for passes := 0; len(pending) > 0 && passes < maxStaticPasses; passes++ {
		next := pending[0]
		pending = pending[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			pending = append(pending, batch...)
			continue
		}
		if msg == nil {
			continue
		}
		_, cmd = m.Update(msg)
		pending = append(pending, cmd)
	}
	return m.View()
}
