package record

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/endpointview/internal/logging"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// SupportedSchema is the range of record document schema versions this build reads.
const SupportedSchema = ">= 1.0.0, < 2.0.0"

// Load errors.
var (
	ErrNoInput             = errors.New("no record files given")
	ErrEmptyInput          = errors.New("record input is empty")
	ErrInvalidSchemaVer    = errors.New("invalid schema_version")
	ErrUnsupportedSchema   = errors.New("unsupported schema_version")
	ErrUnexpectedStructure = errors.New("record input must be a list of records or a document with a records key")
)

// document is the wrapped file form: {schema_version, records}.
type document struct {
	SchemaVersion string    `json:"schema_version" yaml:"schema_version"`
	Records       []*Record `json:"records"        yaml:"records"`
}

// Loader reads record files. The zero value reads from the filesystem and os.Stdin.
type Loader struct {
	// Stdin is read when a path is StdinPath. Defaults to os.Stdin.
	Stdin io.Reader
}

// Load reads every path concurrently and returns the records concatenated in argument order.
func (l Loader) Load(ctx context.Context, paths ...string) ([]*Record, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	log := logging.FromContext(ctx).With().Str("component", "record").Logger()

	results := make([][]*Record, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			recs, err := l.loadOne(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			log.Debug().Ctx(gctx).Str("path", path).Int("records", len(recs)).Msg("loaded record file")
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, recs := range results {
		total += len(recs)
	}
	all := make([]*Record, 0, total)
	for _, recs := range results {
		all = append(all, recs...)
	}
	return all, nil
}

func (l Loader) loadOne(path string) ([]*Record, error) {
	if path == StdinPath {
		in := l.Stdin
		if in == nil {
			in = os.Stdin
		}
		return Decode(in)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Decode(bufio.NewReader(f))
}

// Decode reads a JSON or YAML record list or document from r.
// JSON is detected by a leading '[' or '{'; anything else is parsed as YAML.
func Decode(r io.Reader) ([]*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}

	var recs []*Record
	switch trimmed[0] {
	case '[':
		if err = json.Unmarshal(trimmed, &recs); err != nil {
			return nil, fmt.Errorf("parsing JSON records: %w", err)
		}
	case '{':
		var doc document
		if err = json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON document: %w", err)
		}
		if err = checkSchema(doc.SchemaVersion); err != nil {
			return nil, err
		}
		recs = doc.Records
	default:
		recs, err = decodeYAML(trimmed)
		if err != nil {
			return nil, err
		}
	}

	return normalize(recs), nil
}

func decodeYAML(data []byte) ([]*Record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing YAML records: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrUnexpectedStructure
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		var recs []*Record
		if err := node.Decode(&recs); err != nil {
			return nil, fmt.Errorf("parsing YAML records: %w", err)
		}
		return recs, nil
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing YAML document: %w", err)
		}
		if err := checkSchema(doc.SchemaVersion); err != nil {
			return nil, err
		}
		return doc.Records, nil
	default:
		return nil, ErrUnexpectedStructure
	}
}

// checkSchema validates an optional schema version against SupportedSchema.
func checkSchema(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidSchemaVer, version, err)
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w %s (supported: %s)", ErrUnsupportedSchema, v, SupportedSchema)
	}
	return nil
}

// normalize replaces null entries with empty records so every row renders.
func normalize(recs []*Record) []*Record {
	for i, r := range recs {
		if r == nil {
			recs[i] = &Record{}
		}
	}
	return recs
}
