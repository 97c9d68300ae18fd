package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalObjectStoreRoundTrip(t *testing.T) {
	store, err := NewLocalObjectStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.CreateBucket(ctx, "uploads"))

	data := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	require.NoError(t, store.PutObject(ctx, "uploads", "abc.png", bytes.NewReader(data)))

	obj, err := store.GetObject(ctx, "uploads", "abc.png")
	require.NoError(t, err)
	defer obj.Close()

	got, err := io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLocalObjectStoreMissingKey(t *testing.T) {
	store, err := NewLocalObjectStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.GetObject(context.Background(), "uploads", "missing.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalObjectStoreRejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalObjectStore(t.TempDir())
	require.NoError(t, err)

	err = store.PutObject(context.Background(), "uploads", "../../etc/escape", bytes.NewReader([]byte("x")))
	assert.Error(t, err)
}
