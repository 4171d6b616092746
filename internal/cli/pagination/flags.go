package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Validation limits and sort orders.
const (
	MaxLimit      = 100000
	MaxPageSize   = 10000
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Validation errors.
var (
	ErrNegative             = errors.New("pagination values cannot be negative")
	ErrInvalidLimit         = fmt.Errorf("limit must be at most %d", MaxLimit)
	ErrInvalidPageSize      = fmt.Errorf("page-size must be at most %d", MaxPageSize)
	ErrMixedPaginationModes = errors.New("page and offset parameters are mutually exclusive")
	ErrPageSizeWithoutPage  = errors.New("page must be specified when using page-size")
	ErrPageWithoutPageSize  = errors.New("page-size must be specified when using page")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'height:desc')")
	ErrEmptySortField       = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
)

// Params holds pagination flags. Two modes are supported and are mutually
// exclusive:
//   - Offset-based: --limit and --offset (a zero limit means no limit)
//   - Page-based: --page and --page-size
type Params struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int
}

// Register adds the pagination flags to cmd.
func (p *Params) Register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "maximum number of rows to list (0 = all)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "number of rows to skip")
	cmd.Flags().IntVar(&p.Page, "page", 0, "1-based page number (requires --page-size)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "rows per page")
}

// Validate checks that the parameters are in range and select a single mode.
func (p Params) Validate() error {
	switch {
	case p.Limit < 0 || p.Offset < 0 || p.Page < 0 || p.PageSize < 0:
		return ErrNegative
	case p.Limit > MaxLimit:
		return ErrInvalidLimit
	case p.PageSize > MaxPageSize:
		return ErrInvalidPageSize
	case p.Page > 0 && p.Offset > 0:
		return ErrMixedPaginationModes
	case p.Page == 0 && p.PageSize > 0:
		return ErrPageSizeWithoutPage
	case p.Page > 0 && p.PageSize == 0:
		return ErrPageWithoutPageSize
	}
	return nil
}

// IsPageBased reports whether page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled reports whether any pagination parameter is set.
func (p Params) IsEnabled() bool {
	return p.Limit > 0 || p.Offset > 0 || p.Page > 0
}

// Window returns the half-open range [start, end) of a listing of total
// entries selected by p. A page past the end is capped to the last page; an
// offset past the end selects nothing.
func (p Params) Window(total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}

	if p.IsPageBased() {
		start = (p.Page - 1) * p.PageSize
		if start >= total {
			start = ((total - 1) / p.PageSize) * p.PageSize
		}
		return start, min(start+p.PageSize, total)
	}

	if p.Offset >= total {
		return total, total
	}
	end = total
	if p.Limit > 0 {
		end = min(p.Offset+p.Limit, total)
	}
	return p.Offset, end
}

// Apply returns the part of items selected by p.
func Apply[T any](p Params, items []T) []T {
	start, end := p.Window(len(items))
	return items[start:end]
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// An empty string yields an empty field and ascending order.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return "", SortOrderAsc, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = SortOrderAsc
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}
