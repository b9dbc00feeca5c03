package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "grana.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestSQLiteKVGetSet(t *testing.T) {
	ctx := context.Background()
	kv := newTestSQLiteKV(t)

	// Missing key is not an error
	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "greeting", "oi"))

	value, found, err := kv.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "oi", value)

	// Overwrite semantics
	require.NoError(t, kv.Set(ctx, "greeting", "olá"))
	value, found, err = kv.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "olá", value)
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "grana.db")

	kv, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", "v"))
	require.NoError(t, kv.Close())

	reopened, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, found, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestSQLiteKVValidation(t *testing.T) {
	ctx := context.Background()
	kv := newTestSQLiteKV(t)

	_, _, err := kv.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyString)

	err = kv.Set(ctx, "", "v")
	assert.ErrorIs(t, err, ErrEmptyString)

	_, err = NewSQLiteKV("")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "k", "v"))
	value, found, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)

	assert.NoError(t, kv.Close())
}

func TestMemoryKVForcedFailures(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	boom := errors.New("boom")

	kv.FailGets = boom
	_, _, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)

	kv.FailSets = boom
	assert.ErrorIs(t, kv.Set(ctx, "k", "v"), boom)
}
