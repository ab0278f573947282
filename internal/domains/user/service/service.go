package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	activityModel "hus/internal/domains/activity/model"
	"hus/internal/domains/activity/recorder"
	"hus/internal/domains/user/model"
	"hus/internal/domains/user/model/dto"
	"hus/internal/domains/user/repository"
	"hus/shared/failure"
	"hus/shared/timezone"
)

type User interface {
	GetAll(ctx context.Context) dto.GetUsersResponse
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.User
	recorder recorder.Recorder
}

func New(repo repository.User, recorder recorder.Recorder) User {
	return &serviceImpl{
		repo:     repo,
		recorder: recorder,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetUsersResponse) {
	res.FromModels(s.repo.GetAll(ctx))

	return res
}

// Create adds a staff account with the default starter password.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	if _, exists := s.repo.GetByUsername(ctx, req.Username); exists {
		return res, failure.Conflict("username already taken") //nolint:wrapcheck
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user := model.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Username:  req.Username,
		Password:  model.DefaultPassword,
		Role:      req.Role,
		IsActive:  active,
		CreatedAt: timezone.Now().Format(time.RFC3339),
	}

	if err = s.repo.Save(ctx, append(s.repo.GetAll(ctx), user)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	s.recorder.Record(ctx, activityModel.ActionCreate, activityModel.EntityUser, user.ID,
		fmt.Sprintf("New staff entry: %s.", user.Name))

	res.FromModel(user)

	return res, nil
}

// Update merges a partial patch into a personnel file.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateUserRequest) error {
	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	users := s.repo.GetAll(ctx)

	var updated *model.User

	for i := range users {
		if users[i].ID != id {
			continue
		}

		if req.Name != nil {
			users[i].Name = *req.Name
		}

		if req.Username != nil {
			users[i].Username = *req.Username
		}

		if req.Password != nil {
			users[i].Password = *req.Password
		}

		if req.Role != nil {
			users[i].Role = *req.Role
		}

		if req.IsActive != nil {
			users[i].IsActive = *req.IsActive
		}

		updated = &users[i]
	}

	if updated == nil {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err := s.repo.Save(ctx, users); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	s.recorder.Record(ctx, activityModel.ActionEdit, activityModel.EntityUser, id,
		fmt.Sprintf("Personnel file for %s modified.", updated.Name))

	return nil
}

// Delete hard-removes a staff account. There is no tombstone; only the
// audit entry remembers the record existed.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	users := s.repo.GetAll(ctx)

	remaining := make([]model.User, 0, len(users))

	var removed *model.User

	for i := range users {
		if users[i].ID == id {
			removed = &users[i]

			continue
		}

		remaining = append(remaining, users[i])
	}

	if removed == nil {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err := s.repo.Save(ctx, remaining); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.recorder.Record(ctx, activityModel.ActionDelete, activityModel.EntityUser, id,
		fmt.Sprintf("Staff registry %s deleted.", removed.Name))

	return nil
}
