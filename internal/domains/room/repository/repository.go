package repository

import (
	"context"

	"hus/internal/domains/room/model"
	"hus/internal/store"
)

type Room interface {
	GetAll(ctx context.Context) []model.Room
	Get(ctx context.Context, id int) (model.Room, bool)
	Save(ctx context.Context, rooms []model.Room) error
}

type repositoryImpl struct {
	store store.Store
}

func New(store store.Store) Room {
	return &repositoryImpl{
		store: store,
	}
}

// GetAll returns the stored inventory, or the fixed seed inventory when
// the collection is empty or absent. The seed is not persisted here, so
// reading twice from a fresh store yields the same 28 units both times.
func (r *repositoryImpl) GetAll(_ context.Context) []model.Room {
	rooms := store.Load(r.store, store.CollectionRooms, []model.Room{})
	if len(rooms) == 0 {
		return model.SeedInventory()
	}

	return rooms
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Room, bool) {
	for _, room := range r.GetAll(ctx) {
		if room.ID == id {
			return room, true
		}
	}

	return model.Room{}, false
}

func (r *repositoryImpl) Save(_ context.Context, rooms []model.Room) error {
	return store.Save(r.store, store.CollectionRooms, rooms)
}
