package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rshade/endpointview/internal/config"
	"github.com/rshade/endpointview/internal/pagination"
	"github.com/rshade/endpointview/internal/record"
)

// yamlIndent is the indentation used for YAML output.
const yamlIndent = 2

// StructuredResult is the JSON/YAML form of one rendered page.
type StructuredResult struct {
	Filter     string           `json:"filter"     yaml:"filter"`
	Pagination pagination.Meta  `json:"pagination" yaml:"pagination"`
	Records    []*record.Record `json:"records"    yaml:"records"`
}

// NewStructuredResult captures the current page of tbl.
func NewStructuredResult(tbl *pagination.Table[*record.Record]) StructuredResult {
	return StructuredResult{
		Filter:     tbl.Filter(),
		Pagination: tbl.Meta(),
		Records:    tbl.Visible(),
	}
}

// RenderStructured writes the current page of tbl as JSON or YAML.
func RenderStructured(w io.Writer, format string, tbl *pagination.Table[*record.Record]) error {
	result := NewStructuredResult(tbl)

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
