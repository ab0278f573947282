package store_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hus/internal/store"
)

func newMemStore(t *testing.T) store.Store {
	t.Helper()

	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	return s
}

func TestStore_ReadWrite(t *testing.T) {
	s := newMemStore(t)

	_, ok := s.Read(store.CollectionRooms)
	assert.False(t, ok, "fresh store should have no rooms collection")

	require.NoError(t, s.Write(store.CollectionRooms, []byte(`[{"id":1}]`)))

	data, ok := s.Read(store.CollectionRooms)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(data))
}

func TestStore_LoadFailsSoft(t *testing.T) {
	s := newMemStore(t)

	type room struct {
		ID int `json:"id"`
	}

	def := []room{{ID: 99}}

	// Missing collection returns the default.
	got := store.Load(s, store.CollectionRooms, def)
	assert.Equal(t, def, got)

	// Corrupt collection returns the default, never an error.
	require.NoError(t, s.Write(store.CollectionRooms, []byte(`{not json`)))

	got = store.Load(s, store.CollectionRooms, def)
	assert.Equal(t, def, got)

	// Valid data wins over the default.
	require.NoError(t, store.Save(s, store.CollectionRooms, []room{{ID: 1}, {ID: 2}}))

	got = store.Load(s, store.CollectionRooms, def)
	assert.Len(t, got, 2)
}

func TestStore_WipeAll(t *testing.T) {
	s := newMemStore(t)

	for _, collection := range s.Collections() {
		require.NoError(t, s.Write(collection, []byte(`[]`)))
	}

	require.NoError(t, s.WipeAll())

	for _, collection := range s.Collections() {
		_, ok := s.Read(collection)
		assert.False(t, ok, "collection %s should be gone after wipe", collection)
	}

	// Wiping an already-empty store is not an error.
	require.NoError(t, s.WipeAll())
}
