package repository

import (
	"context"

	"hus/internal/domains/booking/model"
	"hus/internal/store"
)

type Booking interface {
	GetAll(ctx context.Context) []model.Booking
	Get(ctx context.Context, id string) (model.Booking, bool)
	Save(ctx context.Context, bookings []model.Booking) error
}

type repositoryImpl struct {
	store store.Store
}

func New(store store.Store) Booking {
	return &repositoryImpl{
		store: store,
	}
}

func (r *repositoryImpl) GetAll(_ context.Context) []model.Booking {
	return store.Load(r.store, store.CollectionBookings, []model.Booking{})
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Booking, bool) {
	for _, booking := range r.GetAll(ctx) {
		if booking.ID == id {
			return booking, true
		}
	}

	return model.Booking{}, false
}

func (r *repositoryImpl) Save(_ context.Context, bookings []model.Booking) error {
	return store.Save(r.store, store.CollectionBookings, bookings)
}
