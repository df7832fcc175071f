package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/endpointview/internal/record"
)

// sortKeys maps sort field names to record accessors.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sortKeys = map[string]func(*record.Record) string{
	"name":     func(r *record.Record) string { return r.FilterName() },
	"service":  func(r *record.Record) string { return r.ServiceName },
	"endpoint": func(r *record.Record) string { return r.Endpoint },
	"queue":    func(r *record.Record) string { return r.RPCQueue },
	"action":   func(r *record.Record) string { return r.RestAction },
	"command":  func(r *record.Record) string { return r.HTTPCommand },
}

// ValidSortFields returns the accepted sort field names in a stable order.
func ValidSortFields() []string {
	fields := make([]string, 0, len(sortKeys))
	for field := range sortKeys {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// SortRecords returns a stably sorted copy of records. Comparison is case-insensitive.
// The input slice is not modified. Nil records sort as if every field were empty.
func SortRecords(records []*record.Record, field, order string) ([]*record.Record, error) {
	key, ok := sortKeys[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field,
			strings.Join(ValidSortFields(), ", "))
	}

	value := func(r *record.Record) string {
		if r == nil {
			return ""
		}
		return strings.ToLower(key(r))
	}

	sorted := make([]*record.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			i, j = j, i
		}
		return value(sorted[i]) < value(sorted[j])
	})

	return sorted, nil
}

// ApplySort parses expr and sorts records by it. An empty expression returns records unchanged.
func ApplySort(records []*record.Record, expr string) ([]*record.Record, error) {
	if strings.TrimSpace(expr) == "" {
		return records, nil
	}
	field, order, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	return SortRecords(records, field, order)
}
