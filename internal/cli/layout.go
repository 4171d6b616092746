package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/vgrid/internal/cli/pagination"
	"github.com/rshade/vgrid/internal/grid"
	"github.com/rshade/vgrid/internal/tui"
)

// Layout output formats.
const (
	layoutOutputTable = "table"
	layoutOutputJSON  = "json"
)

// layoutFlags are the inputs of the layout command.
type layoutFlags struct {
	items        int
	width        int
	height       int
	scroll       int
	itemMaxWidth int
	gap          int
	estimate     int
	measure      []string
	output       string
	visibleOnly  bool
	sort         string
	pages        pagination.Params
}

// Row sort fields.
const (
	sortFieldRow    = "row"
	sortFieldHeight = "height"
)

// LayoutReport is the JSON form of a computed layout.
type LayoutReport struct {
	ItemCount       int         `json:"item_count"`
	Columns         int         `json:"columns"`
	ItemWidth       int         `json:"item_width"`
	Gap             int         `json:"gap"`
	ScrollTop       int         `json:"scroll_top"`
	ContainerHeight int         `json:"container_height"`
	TotalRows       int         `json:"total_rows"`
	TotalHeight     int         `json:"total_height"`
	MaxScroll       int         `json:"max_scroll"`
	AverageHeight   int         `json:"average_height"`
	FirstVisibleRow int         `json:"first_visible_row"`
	LastVisibleRow  int         `json:"last_visible_row"`
	PaddingTop      int         `json:"padding_top"`
	FirstItem       int         `json:"first_item"`
	EndItem         int         `json:"end_item"`
	Rows            []LayoutRow `json:"rows"`

	// Pagination is set when the row listing was paginated.
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// LayoutRow describes one row of a layout.
type LayoutRow struct {
	Row      int  `json:"row"`
	Top      int  `json:"top"`
	Height   int  `json:"height"`
	Measured bool `json:"measured"`
	Visible  bool `json:"visible"`
	Start    int  `json:"start"`
	End      int  `json:"end"`
}

// NewLayoutCmd creates the layout command, which runs the layout calculation
// for a container of the given size and prints the result.
func NewLayoutCmd() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute the grid layout for a container",
		Long: `Computes columns, row offsets and the visible row range for a collection
of items in a container of the given size, as the grid engine does on every
render. Rows without a --measure value use the average of the measured rows, or
--estimate when nothing is measured.`,
		Example: `  # Engine defaults: 200 wide items, gap 10, 100 high estimate
  vgrid layout --items 100 --width 1024 --height 768

  # Scrolled, with two measured rows, as JSON
  vgrid layout --items 100 --scroll 250 --measure 0=80,1=120 --output json

  # Only the rows that would be rendered
  vgrid layout --items 100000 --scroll 500000 --visible-only

  # The ten tallest rows
  vgrid layout --measure 3=140,9=300 --sort height:desc --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLayout(cmd, &flags)
		},
	}

	cmd.Flags().IntVar(&flags.items, "items", 100, "number of items")
	cmd.Flags().IntVar(&flags.width, "width", 1024, "container width")
	cmd.Flags().IntVar(&flags.height, "height", 768, "container height")
	cmd.Flags().IntVar(&flags.scroll, "scroll", 0, "scroll offset")
	cmd.Flags().IntVar(&flags.itemMaxWidth, "item-max-width", grid.DefaultItemMaxWidth, "item width")
	cmd.Flags().IntVar(&flags.gap, "gap", grid.DefaultGap, "gap between columns and rows")
	cmd.Flags().IntVar(&flags.estimate, "estimate", grid.DefaultBootstrapHeight, "row height assumed before any row is measured")
	cmd.Flags().StringSliceVar(&flags.measure, "measure", nil, "measured row heights as row=height (repeatable)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", layoutOutputTable, "output format: table or json")
	cmd.Flags().BoolVar(&flags.visibleOnly, "visible-only", false, "list only the visible rows")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort rows by row or height, optionally with :asc or :desc")
	flags.pages.Register(cmd)

	return cmd
}

func runLayout(cmd *cobra.Command, flags *layoutFlags) error {
	if err := flags.validate(); err != nil {
		return err
	}
	measured, err := parseMeasurements(flags.measure)
	if err != nil {
		return err
	}

	report, err := computeLayout(flags, measured)
	if err != nil {
		return err
	}
	logger.Debug().Ctx(cmd.Context()).
		Int("columns", report.Columns).
		Int("total_height", report.TotalHeight).
		Int("first_row", report.FirstVisibleRow).
		Int("last_row", report.LastVisibleRow).
		Msg("layout computed")

	if flags.visibleOnly {
		report.Rows = visibleRows(report.Rows)
	}
	sortRows(report.Rows, flags.sort)
	if flags.pages.IsEnabled() {
		meta := pagination.NewMeta(flags.pages, len(report.Rows))
		report.Pagination = &meta
		report.Rows = pagination.Apply(flags.pages, report.Rows)
	}

	switch flags.output {
	case layoutOutputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		styled := tui.DetectOutputMode(false, false, false) != tui.OutputModePlain
		return renderLayoutTable(cmd.OutOrStdout(), report, styled)
	}
}

func (f *layoutFlags) validate() error {
	switch {
	case f.items < 0:
		return fmt.Errorf("--items must be >= 0, got %d", f.items)
	case f.width < 0 || f.height < 0:
		return fmt.Errorf("container size must not be negative, got %dx%d", f.width, f.height)
	case f.scroll < 0:
		return fmt.Errorf("--scroll must be >= 0, got %d", f.scroll)
	case f.itemMaxWidth < 1:
		return fmt.Errorf("--item-max-width must be >= 1, got %d", f.itemMaxWidth)
	case f.gap < 0:
		return fmt.Errorf("--gap must be >= 0, got %d", f.gap)
	case f.estimate < 1:
		return fmt.Errorf("--estimate must be >= 1, got %d", f.estimate)
	case f.output != layoutOutputTable && f.output != layoutOutputJSON:
		return fmt.Errorf("unsupported output format %q (want table or json)", f.output)
	}
	if err := f.pages.Validate(); err != nil {
		return fmt.Errorf("invalid pagination: %w", err)
	}
	field, _, err := pagination.ParseSort(f.sort)
	if err != nil {
		return fmt.Errorf("invalid --sort: %w", err)
	}
	if field != "" && field != sortFieldRow && field != sortFieldHeight {
		return fmt.Errorf("invalid --sort field %q (want row or height)", field)
	}
	return nil
}

// parseMeasurements parses row=height pairs. A later value for the same row
// replaces an earlier one.
func parseMeasurements(values []string) (map[int]int, error) {
	measured := make(map[int]int, len(values))
	for _, v := range values {
		rowText, heightText, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --measure value %q: want row=height", v)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rowText))
		if err != nil || row < 0 {
			return nil, fmt.Errorf("invalid row in --measure value %q", v)
		}
		height, err := strconv.Atoi(strings.TrimSpace(heightText))
		if err != nil || height < 1 {
			return nil, fmt.Errorf("invalid height in --measure value %q", v)
		}
		measured[row] = height
	}
	return measured, nil
}

// computeLayout runs the layout pass for flags. Measured rows must exist in
// the collection at the computed column count.
func computeLayout(flags *layoutFlags, measured map[int]int) (LayoutReport, error) {
	sizing := grid.Sizing{ItemMaxWidth: flags.itemMaxWidth, Gap: flags.gap}
	sizing.Resize(flags.width, flags.height)

	totalRows := grid.TotalRows(flags.items, sizing.Columns)
	store := grid.NewHeightStore(grid.WithBootstrap(flags.estimate))
	for row, height := range measured {
		if row >= totalRows {
			return LayoutReport{}, measureRangeError(row, totalRows)
		}
		store.Set(row, height)
	}

	snap := grid.ComputeLayout(grid.LayoutParams{
		ItemCount:       flags.items,
		Columns:         sizing.Columns,
		Gap:             flags.gap,
		ScrollTop:       flags.scroll,
		ContainerHeight: flags.height,
	}, store)
	first, end := snap.ItemRange(sizing.Columns, flags.items)

	report := LayoutReport{
		ItemCount:       flags.items,
		Columns:         sizing.Columns,
		ItemWidth:       sizing.ItemWidth(),
		Gap:             flags.gap,
		ScrollTop:       flags.scroll,
		ContainerHeight: flags.height,
		TotalRows:       snap.TotalRows,
		TotalHeight:     snap.TotalHeight,
		MaxScroll:       max(snap.TotalHeight-flags.height, 0),
		AverageHeight:   store.Average(),
		FirstVisibleRow: snap.FirstVisibleRow,
		LastVisibleRow:  snap.LastVisibleRow,
		PaddingTop:      snap.PaddingTop,
		FirstItem:       first,
		EndItem:         end,
		Rows:            make([]LayoutRow, snap.TotalRows),
	}
	for row := range snap.TotalRows {
		_, ok := store.Get(row)
		start, stop := grid.RowSlice(row, sizing.Columns, flags.items)
		report.Rows[row] = LayoutRow{
			Row:      row,
			Top:      snap.RowTops[row],
			Height:   snap.RowHeights[row],
			Measured: ok,
			Visible:  row >= snap.FirstVisibleRow && row <= snap.LastVisibleRow,
			Start:    start,
			End:      stop,
		}
	}
	return report, nil
}

func measureRangeError(row, totalRows int) error {
	if totalRows == 0 {
		return fmt.Errorf("--measure row %d out of range (collection has no rows)", row)
	}
	return fmt.Errorf("--measure row %d out of range (0-%d)", row, totalRows-1)
}

// sortRows orders rows by a validated --sort value. Rows of equal height keep
// their row order.
func sortRows(rows []LayoutRow, sortFlag string) {
	field, order, err := pagination.ParseSort(sortFlag)
	if err != nil || field == "" {
		return
	}
	desc := order == pagination.SortOrderDesc
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if field == sortFieldHeight && a.Height != b.Height {
			if desc {
				return a.Height > b.Height
			}
			return a.Height < b.Height
		}
		if desc && field == sortFieldRow {
			return a.Row > b.Row
		}
		return a.Row < b.Row
	})
}

func visibleRows(rows []LayoutRow) []LayoutRow {
	out := rows[:0:0]
	for _, r := range rows {
		if r.Visible {
			out = append(out, r)
		}
	}
	return out
}

func renderLayoutTable(w io.Writer, r LayoutReport, styled bool) error {
	title := "Layout"
	if styled {
		title = tui.HeaderStyle.Render(title)
	}

	visible := "none"
	if r.LastVisibleRow >= r.FirstVisibleRow {
		visible = fmt.Sprintf("%d-%d (items %d-%d, padding top %d)",
			r.FirstVisibleRow, r.LastVisibleRow, r.FirstItem, r.EndItem-1, r.PaddingTop)
	}

	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintf(w, "  Items:         %s\n", tui.FormatCount(r.ItemCount))
	_, _ = fmt.Fprintf(w, "  Columns:       %d (item width %d, gap %d)\n", r.Columns, r.ItemWidth, r.Gap)
	_, _ = fmt.Fprintf(w, "  Rows:          %s\n", tui.FormatCount(r.TotalRows))
	_, _ = fmt.Fprintf(w, "  Total height:  %s (max scroll %s)\n", tui.FormatCount(r.TotalHeight), tui.FormatCount(r.MaxScroll))
	_, _ = fmt.Fprintf(w, "  Average row:   %d\n", r.AverageHeight)
	_, _ = fmt.Fprintf(w, "  Visible rows:  %s\n", visible)
	if p := r.Pagination; p != nil {
		_, _ = fmt.Fprintf(w, "  Page:          %d of %d (%s rows)\n", p.CurrentPage, p.TotalPages, tui.FormatCount(p.TotalItems))
	}
	if len(r.Rows) == 0 {
		return nil
	}
	_, _ = fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ROW\tTOP\tHEIGHT\tSOURCE\tITEMS\tVISIBLE")
	for _, row := range r.Rows {
		source := "average"
		if row.Measured {
			source = "measured"
		}
		mark := ""
		if row.Visible {
			mark = "yes"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%d-%d\t%s\n",
			row.Row, row.Top, row.Height, source, row.Start, row.End-1, mark)
	}
	return tw.Flush()
}
