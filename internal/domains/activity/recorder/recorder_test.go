package recorder_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hus/internal/domains/activity/model"
	"hus/internal/domains/activity/recorder"
	"hus/internal/domains/activity/repository"
	"hus/internal/store"
	"hus/shared/constant"
)

func newRecorder(t *testing.T) recorder.Recorder {
	t.Helper()

	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	return recorder.New(repository.New(s))
}

func actorContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "sa")
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, "Ally Acraman")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)

	return ctx
}

func TestRecorder_Record(t *testing.T) {
	rec := newRecorder(t)
	ctx := actorContext()

	rec.Record(ctx, model.ActionCreate, model.EntityBooking, "b-1", "Reservation for Jane Cruz confirmed.")

	entries := rec.GetAll(ctx)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "sa", entry.UserID)
	assert.Equal(t, "Ally Acraman", entry.UserName)
	assert.Equal(t, constant.RoleSuperAdmin, entry.Role)
	assert.Equal(t, model.ActionCreate, entry.ActionType)
	assert.Equal(t, model.EntityBooking, entry.EntityType)
	assert.Equal(t, "b-1", entry.EntityID)
	assert.NotEmpty(t, entry.ID)
	assert.NotEmpty(t, entry.Timestamp)
}

func TestRecorder_NoActorIsNoop(t *testing.T) {
	rec := newRecorder(t)

	rec.Record(context.Background(), model.ActionEdit, model.EntityRoom, "5", "Unit 005 flagged for cleaning.")

	assert.Empty(t, rec.GetAll(context.Background()))
}

func TestRecorder_CappedNewestFirst(t *testing.T) {
	rec := newRecorder(t)
	ctx := actorContext()

	for i := 0; i < model.MaxEntries+20; i++ {
		rec.Record(ctx, model.ActionEdit, model.EntityRoom, fmt.Sprintf("%d", i), "housekeeping pass")
	}

	entries := rec.GetAll(ctx)
	require.Len(t, entries, model.MaxEntries)

	// Most recent entry first; the oldest twenty were silently dropped.
	assert.Equal(t, fmt.Sprintf("%d", model.MaxEntries+19), entries[0].EntityID)
	assert.Equal(t, "20", entries[model.MaxEntries-1].EntityID)
}
