package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/endpointview/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SectionOverride(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, `
output:
  page_size: 10
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 10, target.Output.PageSize)
	assert.Equal(t, config.FormatTable, target.Output.Format, "unset fields keep their defaults")
	assert.Equal(t, "warn", target.Logging.Level, "absent sections are untouched")
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, `
plugins:
  foo: bar
logging:
  level: debug
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "debug", target.Logging.Level)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, "# only a comment\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, config.New(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		assert.Error(t, config.ShallowMergeYAML(nil, "x"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "reading config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		overlay := writeOverlay(t, "output: [unclosed")
		err := config.ShallowMergeYAML(config.New(), overlay)
		assert.ErrorContains(t, err, "parsing config YAML")
	})

	t.Run("wrong section type", func(t *testing.T) {
		overlay := writeOverlay(t, "output:\n  page_size: many\n")
		err := config.ShallowMergeYAML(config.New(), overlay)
		assert.ErrorContains(t, err, `applying config section "output"`)
	})
}
