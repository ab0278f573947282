package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	activityModel "hus/internal/domains/activity/model"
	"hus/internal/domains/activity/recorder"
	"hus/internal/domains/room/model"
	"hus/internal/domains/room/model/dto"
	"hus/internal/domains/room/repository"
	"hus/shared/constant"
	"hus/shared/failure"
)

type Room interface {
	GetAll(ctx context.Context) dto.GetRoomsResponse
	Update(ctx context.Context, id int, req dto.UpdateRoomRequest) error
	SetCleaningState(ctx context.Context, id int, clean bool) error
}

type serviceImpl struct {
	repo     repository.Room
	recorder recorder.Recorder
}

func New(repo repository.Room, recorder recorder.Recorder) Room {
	return &serviceImpl{
		repo:     repo,
		recorder: recorder,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse) {
	res.FromModels(s.repo.GetAll(ctx))

	return res
}

// Update merges a partial patch into the room master file. Unit number and
// category changes are re-validated here against the actor's role rather
// than trusted to the calling surface.
func (s *serviceImpl) Update(ctx context.Context, id int, req dto.UpdateRoomRequest) error {
	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if req.RestrictedFields() && role != constant.RoleSuperAdmin {
		return failure.Forbidden("only a super-admin may change unit number or category") //nolint:wrapcheck
	}

	rooms := s.repo.GetAll(ctx)

	var updated *model.Room

	for i := range rooms {
		if rooms[i].ID != id {
			continue
		}

		if req.Number != nil {
			rooms[i].Number = *req.Number
		}

		if req.Type != nil {
			rooms[i].Type = *req.Type
		}

		if req.Status != nil {
			rooms[i].Status = *req.Status
		}

		if req.BaseRate != nil {
			rooms[i].BaseRate = *req.BaseRate
		}

		if req.WeekendRate != nil {
			rooms[i].WeekendRate = *req.WeekendRate
		}

		updated = &rooms[i]
	}

	if updated == nil {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err := s.repo.Save(ctx, rooms); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.recorder.Record(ctx, activityModel.ActionEdit, activityModel.EntityRoom, fmt.Sprintf("%d", id),
		fmt.Sprintf("Unit %s master file updated.", updated.Number))

	return nil
}

// SetCleaningState marks a unit ready (AVAILABLE) or dirty (CLEANING).
// The transition is not guarded against the current status; housekeeping
// can override an occupied unit.
func (s *serviceImpl) SetCleaningState(ctx context.Context, id int, clean bool) error {
	rooms := s.repo.GetAll(ctx)

	status := model.StatusCleaning
	if clean {
		status = model.StatusAvailable
	}

	var updated *model.Room

	for i := range rooms {
		if rooms[i].ID == id {
			rooms[i].Status = status
			updated = &rooms[i]
		}
	}

	if updated == nil {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err := s.repo.Save(ctx, rooms); err != nil {
		log.Error().Err(err).Msg("failed to save housekeeping state")

		return fmt.Errorf("failed to save housekeeping state: %w", err)
	}

	details := fmt.Sprintf("Unit %s flagged for cleaning.", updated.Number)
	if clean {
		details = fmt.Sprintf("Unit %s verified as clean.", updated.Number)
	}

	s.recorder.Record(ctx, activityModel.ActionEdit, activityModel.EntityRoom, fmt.Sprintf("%d", id), details)

	return nil
}
