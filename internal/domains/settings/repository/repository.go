package repository

import (
	"context"

	"hus/internal/domains/settings/model"
	"hus/internal/store"
)

type Settings interface {
	Get(ctx context.Context) model.HotelSettings
	Save(ctx context.Context, settings model.HotelSettings) error
}

type repositoryImpl struct {
	store store.Store
}

func New(store store.Store) Settings {
	return &repositoryImpl{
		store: store,
	}
}

func (r *repositoryImpl) Get(_ context.Context) model.HotelSettings {
	return store.Load(r.store, store.CollectionSettings, model.Defaults())
}

func (r *repositoryImpl) Save(_ context.Context, settings model.HotelSettings) error {
	return store.Save(r.store, store.CollectionSettings, settings)
}
