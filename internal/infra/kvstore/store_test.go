package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func TestFileStore_ReadWriteRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	want := []sampleRecord{{ID: "a", Count: 1}, {ID: "b", Count: 2}}
	require.NoError(t, store.Write(KeyProducts, want))

	var got []sampleRecord
	store.Read(KeyProducts, &got)
	assert.Equal(t, want, got)
}

func TestFileStore_MissingKeyLeavesFallbackUntouched(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	fallback := sampleRecord{ID: "default", Count: 7}
	store.Read("kc_missing", &fallback)

	assert.Equal(t, "default", fallback.ID)
	assert.Equal(t, 7, fallback.Count)
}

func TestFileStore_CorruptBlobLeavesFallbackUntouched(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyShop+".json"), []byte("{not json"), 0o600))

	fallback := sampleRecord{ID: "default", Count: 7}
	store.Read(KeyShop, &fallback)

	assert.Equal(t, "default", fallback.ID)
	assert.Equal(t, 7, fallback.Count)
}

func TestFileStore_WriteOverwritesWholesale(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write(KeyCart, []sampleRecord{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.Write(KeyCart, []sampleRecord{{ID: "c"}}))

	var got []sampleRecord
	store.Read(KeyCart, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestFileStore_Remove(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write(KeyOrders, sampleRecord{ID: "x"}))
	require.NoError(t, store.Remove(KeyOrders))

	fallback := sampleRecord{ID: "default"}
	store.Read(KeyOrders, &fallback)
	assert.Equal(t, "default", fallback.ID)

	// Removing an absent key is not an error.
	assert.NoError(t, store.Remove(KeyOrders))
}

func TestMemoryStore_MatchesFileStoreSemantics(t *testing.T) {
	store := NewMemoryStore()

	want := sampleRecord{ID: "a", Count: 3}
	require.NoError(t, store.Write(KeyOwnerProfile, want))

	var got sampleRecord
	store.Read(KeyOwnerProfile, &got)
	assert.Equal(t, want, got)

	fallback := sampleRecord{ID: "default"}
	store.Read("kc_missing", &fallback)
	assert.Equal(t, "default", fallback.ID)

	require.NoError(t, store.Remove(KeyOwnerProfile))
	got = sampleRecord{}
	store.Read(KeyOwnerProfile, &got)
	assert.Empty(t, got.ID)
}
