package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Validation limits and sort defaults.
const (
	MinPageSize      = 1
	MaxPageSize      = 1000
	MinPage          = 1
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPageSize   = errors.New("page-size must be between 1 and 1000")
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the table flags given on the command line.
type Params struct {
	// Page is the 1-based page to show. Zero means the first page.
	Page int

	// PageSize is the number of rows per page. Zero means use the configured default.
	PageSize int

	// Filter is the name substring to filter by.
	Filter string

	// Sort is "field" or "field:order". Empty keeps source order.
	Sort string
}

// Validate checks the parameters for out-of-range values and a malformed sort expression.
func (p Params) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize != 0 && (p.PageSize < MinPageSize || p.PageSize > MaxPageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Sort != "" {
		if _, _, err := ParseSort(p.Sort); err != nil {
			return err
		}
	}
	return nil
}

// PageIndex returns the zero-based page index.
func (p Params) PageIndex() int {
	if p.Page < MinPage {
		return 0
	}
	return p.Page - 1
}

// EffectivePageSize returns PageSize, or fallback when PageSize is unset.
func (p Params) EffectivePageSize(fallback int) int {
	if p.PageSize > 0 {
		return p.PageSize
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultPageSize
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
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
