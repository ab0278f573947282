package repository

import (
	"context"

	"hus/internal/domains/activity/model"
	"hus/internal/store"
)

type Activity interface {
	GetAll(ctx context.Context) []model.ActivityLog
	Save(ctx context.Context, logs []model.ActivityLog) error
}

type repositoryImpl struct {
	store store.Store
}

func New(store store.Store) Activity {
	return &repositoryImpl{
		store: store,
	}
}

func (r *repositoryImpl) GetAll(_ context.Context) []model.ActivityLog {
	return store.Load(r.store, store.CollectionLogs, []model.ActivityLog{})
}

func (r *repositoryImpl) Save(_ context.Context, logs []model.ActivityLog) error {
	return store.Save(r.store, store.CollectionLogs, logs)
}
