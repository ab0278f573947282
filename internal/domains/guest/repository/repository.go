package repository

import (
	"context"

	"hus/internal/domains/guest/model"
	"hus/internal/store"
)

type Guest interface {
	GetAll(ctx context.Context) []model.Guest
	Get(ctx context.Context, id string) (model.Guest, bool)
	Save(ctx context.Context, guests []model.Guest) error
}

type repositoryImpl struct {
	store store.Store
}

func New(store store.Store) Guest {
	return &repositoryImpl{
		store: store,
	}
}

func (r *repositoryImpl) GetAll(_ context.Context) []model.Guest {
	return store.Load(r.store, store.CollectionGuests, []model.Guest{})
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Guest, bool) {
	for _, guest := range r.GetAll(ctx) {
		if guest.ID == id {
			return guest, true
		}
	}

	return model.Guest{}, false
}

func (r *repositoryImpl) Save(_ context.Context, guests []model.Guest) error {
	return store.Save(r.store, store.CollectionGuests, guests)
}
