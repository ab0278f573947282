package repository

import (
	"context"

	"hus/internal/domains/payment/model"
	"hus/internal/store"
)

type Payment interface {
	GetAll(ctx context.Context) []model.Payment
	Save(ctx context.Context, payments []model.Payment) error
}

type repositoryImpl struct {
	store store.Store
}

func New(store store.Store) Payment {
	return &repositoryImpl{
		store: store,
	}
}

func (r *repositoryImpl) GetAll(_ context.Context) []model.Payment {
	return store.Load(r.store, store.CollectionPayments, []model.Payment{})
}

func (r *repositoryImpl) Save(_ context.Context, payments []model.Payment) error {
	return store.Save(r.store, store.CollectionPayments, payments)
}
