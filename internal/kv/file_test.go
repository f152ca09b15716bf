package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trahman/smartshop/internal/kv"
)

func TestFileStore_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := kv.NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "balance:abc", "1900.02"))
	require.NoError(t, store.Set(ctx, "balance:def", "3000"))

	// Reopen from disk and verify both entries survived.
	reopened, err := kv.NewFileStore(path)
	require.NoError(t, err)

	v, err := reopened.Get(ctx, "balance:abc")
	assert.NoError(t, err)
	assert.Equal(t, "1900.02", v)

	v, err = reopened.Get(ctx, "balance:def")
	assert.NoError(t, err)
	assert.Equal(t, "3000", v)
}

func TestFileStore_GetMissing(t *testing.T) {
	store, err := kv.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestFileStore_DeletePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := kv.NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "balance", "2000"))
	require.NoError(t, store.Delete(ctx, "balance"))
	require.NoError(t, store.Delete(ctx, "balance"))

	reopened, err := kv.NewFileStore(path)
	require.NoError(t, err)

	_, err = reopened.Get(ctx, "balance")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestNewFileStore_EmptyPath(t *testing.T) {
	_, err := kv.NewFileStore("")
	assert.Error(t, err)
}
