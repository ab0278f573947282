package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hus/internal/domains/user/model"
	"hus/internal/store"
	"hus/shared/timezone"
)

type User interface {
	GetAll(ctx context.Context) []model.User
	Get(ctx context.Context, id string) (model.User, bool)
	GetByUsername(ctx context.Context, username string) (model.User, bool)
	Save(ctx context.Context, users []model.User) error
}

type repositoryImpl struct {
	store store.Store
}

func New(store store.Store) User {
	return &repositoryImpl{
		store: store,
	}
}

// GetAll returns the stored staff accounts, auto-provisioning the
// distinguished super-admin whenever it is absent. The provisioned account
// is persisted immediately so a later login can match it.
func (r *repositoryImpl) GetAll(ctx context.Context) []model.User {
	users := store.Load(r.store, store.CollectionUsers, []model.User{})

	for _, user := range users {
		if user.Username == model.SuperAdminUsername {
			return users
		}
	}

	superAdmin := model.User{
		ID:        model.SuperAdminID,
		Name:      model.SuperAdminName,
		Username:  model.SuperAdminUsername,
		Password:  model.DefaultPassword,
		Role:      model.RoleSuperAdmin,
		IsActive:  true,
		CreatedAt: timezone.Now().Format(time.RFC3339),
	}

	users = append([]model.User{superAdmin}, users...)

	if err := r.Save(ctx, users); err != nil {
		log.Error().Err(err).Msg("failed to persist auto-provisioned super-admin")
	}

	return users
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.User, bool) {
	for _, user := range r.GetAll(ctx) {
		if user.ID == id {
			return user, true
		}
	}

	return model.User{}, false
}

func (r *repositoryImpl) GetByUsername(ctx context.Context, username string) (model.User, bool) {
	for _, user := range r.GetAll(ctx) {
		if user.Username == username {
			return user, true
		}
	}

	return model.User{}, false
}

func (r *repositoryImpl) Save(_ context.Context, users []model.User) error {
	return store.Save(r.store, store.CollectionUsers, users)
}
