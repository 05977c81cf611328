package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/llmconf/provider"
	"github.com/randalmurphal/llmconf/settings"
)

func newTestSQLiteStore(t *testing.T, path string, opts ...SQLiteOption) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_LoadMissing(t *testing.T) {
	s := newTestSQLiteStore(t, filepath.Join(t.TempDir(), "settings.db"))

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t, filepath.Join(t.TempDir(), "settings.db"))

	src := populated(t)
	require.NoError(t, Persist(ctx, s, src))

	dst := settings.New()
	require.NoError(t, Restore(ctx, s, dst))
	assertSameSettings(t, src, dst)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t, filepath.Join(t.TempDir(), "settings.db"))

	first := settings.DefaultState()
	first.OpenAIKey = "first"
	require.NoError(t, s.Save(ctx, first))

	second := settings.DefaultState()
	second.OpenAIKey = "second"
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.OpenAIKey)
}

func TestSQLiteStore_SeparateIDs(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.db")

	a := newTestSQLiteStore(t, path)
	snap := settings.DefaultState()
	snap.GroqKey = "gsk"
	require.NoError(t, a.Save(ctx, snap))
	require.NoError(t, a.Close())

	b := newTestSQLiteStore(t, path, WithStoreID("other"))
	_, err := b.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, b.Close())

	c := newTestSQLiteStore(t, path)
	got, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gsk", got.GroqKey)
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	svc := settings.New()
	svc.SetModelCost(provider.Mistral, "mistral-large-latest", 2, 6)
	require.NoError(t, Persist(ctx, s, svc))
	require.NoError(t, s.Close())

	reopened := newTestSQLiteStore(t, path)
	restored := settings.New()
	require.NoError(t, Restore(ctx, reopened, restored))
	assert.Equal(t, 6.0, restored.OutputCost(provider.Mistral, "mistral-large-latest"))
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}
