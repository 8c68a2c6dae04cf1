package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutGet(t *testing.T) {
	store := openTestStore(t)

	_, ok := store.Get("s1", CartKey)
	assert.False(t, ok, "missing record must report ok=false")

	require.NoError(t, store.Put("s1", CartKey, `[{"id":"brig-tradicional"}]`))
	payload, ok := store.Get("s1", CartKey)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"brig-tradicional"}]`, payload)

	// overwrite
	require.NoError(t, store.Put("s1", CartKey, `[]`))
	payload, _ = store.Get("s1", CartKey)
	assert.Equal(t, `[]`, payload)
}

func TestKeysAreIndependent(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("s1", CartKey, "cart"))
	require.NoError(t, store.Put("s1", CheckoutKey, "checkout"))
	require.NoError(t, store.Put("s2", CartKey, "other cart"))

	payload, _ := store.Get("s1", CartKey)
	assert.Equal(t, "cart", payload)
	payload, _ = store.Get("s1", CheckoutKey)
	assert.Equal(t, "checkout", payload)
	payload, _ = store.Get("s2", CartKey)
	assert.Equal(t, "other cart", payload)
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("s1", CartKey, "cart"))
	require.NoError(t, store.Delete("s1", CartKey))

	_, ok := store.Get("s1", CartKey)
	assert.False(t, ok)
}
