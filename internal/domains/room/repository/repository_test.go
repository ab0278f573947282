package repository_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hus/internal/domains/room/model"
	"hus/internal/domains/room/repository"
	"hus/internal/store"
)

// The seed is substituted on read, never written, so repeated reads from
// a fresh store yield identical inventories.
func TestRoomRepository_SeedIsIdempotent(t *testing.T) {
	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	repo := repository.New(s)

	first := repo.GetAll(context.Background())
	second := repo.GetAll(context.Background())

	assert.Equal(t, first, second)
	assert.Len(t, second, 28)

	_, stored := s.Read(store.CollectionRooms)
	assert.False(t, stored, "reading must not persist the seed")
}

func TestRoomRepository_SavedInventoryWins(t *testing.T) {
	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	repo := repository.New(s)
	ctx := context.Background()

	rooms := repo.GetAll(ctx)
	rooms[4].Status = model.StatusMaintenance
	require.NoError(t, repo.Save(ctx, rooms))

	room, ok := repo.Get(ctx, 5)
	require.True(t, ok)
	assert.Equal(t, model.StatusMaintenance, room.Status)
}
