package record_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/endpointview/internal/record"
)

func TestNewWatcher_StdinOnly(t *testing.T) {
	_, err := record.NewWatcher([]string{record.StdinPath}, nil)
	assert.ErrorIs(t, err, record.ErrNothingToWatch)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "endpoints.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"before"}]`), 0o600))

	reload := func(ctx context.Context) ([]*record.Record, error) {
		return record.Loader{}.Load(ctx, path)
	}
	w, err := record.NewWatcher([]string{path}, reload)
	require.NoError(t, err)
	w.Debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Writes to unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"after"},{"name":"second"}]`), 0o600))

	select {
	case res := <-w.Results():
		require.NoError(t, res.Err)
		require.Len(t, res.Records, 2)
		assert.Equal(t, "after", res.Records[0].Name)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	require.NoError(t, <-done)

	_, open := <-w.Results()
	assert.False(t, open, "results channel is closed after Run returns")
}

func TestWatcher_ReportsReloadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "endpoints.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	w, err := record.NewWatcher([]string{path}, func(ctx context.Context) ([]*record.Record, error) {
		return record.Loader{}.Load(ctx, path)
	})
	require.NoError(t, err)
	w.Debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":"9.0.0","records":[]}`), 0o600))

	select {
	case res := <-w.Results():
		assert.ErrorIs(t, res.Err, record.ErrUnsupportedSchema)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}
