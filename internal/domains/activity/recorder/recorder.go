package recorder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hus/internal/domains/activity/model"
	"hus/internal/domains/activity/repository"
	"hus/shared/constant"
	"hus/shared/timezone"
)

// Recorder appends state-changing actions to the capped audit trail.
// Recording is fire-and-forget: persistence failures are logged, never
// returned, and calls without an authenticated actor in the context are
// silently dropped.
type Recorder interface {
	Record(ctx context.Context, action model.ActionType, entity model.EntityType, entityID, details string)
	GetAll(ctx context.Context) []model.ActivityLog
}

type recorderImpl struct {
	repo repository.Activity
}

func New(repo repository.Activity) Recorder {
	return &recorderImpl{
		repo: repo,
	}
}

func (r *recorderImpl) Record(ctx context.Context, action model.ActionType, entity model.EntityType, entityID, details string) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return
	}

	userName, _ := ctx.Value(constant.ContextKeyUserName).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	entry := model.ActivityLog{
		ID:         uuid.NewString(),
		UserID:     userID,
		UserName:   userName,
		Role:       role,
		ActionType: action,
		EntityType: entity,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  timezone.Now().Format(time.RFC3339),
	}

	entries := append([]model.ActivityLog{entry}, r.repo.GetAll(ctx)...)
	if len(entries) > model.MaxEntries {
		entries = entries[:model.MaxEntries]
	}

	if err := r.repo.Save(ctx, entries); err != nil {
		log.Error().Err(err).Str("entity_id", entityID).Msg("failed to persist activity log")
	}
}

// GetAll returns the history newest-first, as stored.
func (r *recorderImpl) GetAll(ctx context.Context) []model.ActivityLog {
	return r.repo.GetAll(ctx)
}
