// Package pagination provides offset- and page-based windowing for CLI listings.
//
// It contains:
//   - Params: flag values, validation and the window they select
//   - Meta: page metadata reported next to a paginated listing
//   - ParseSort: the "field" / "field:order" sort flag syntax
package pagination
