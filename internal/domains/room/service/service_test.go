package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activityRepo "hus/internal/domains/activity/repository"
	"hus/internal/domains/activity/recorder"
	"hus/internal/domains/room/model"
	"hus/internal/domains/room/model/dto"
	"hus/internal/domains/room/repository"
	"hus/internal/domains/room/service"
	"hus/internal/store"
	"hus/shared/constant"
	"hus/shared/failure"
)

type env struct {
	svc      service.Room
	rooms    repository.Room
	recorder recorder.Recorder
}

func newEnv(t *testing.T) *env {
	t.Helper()

	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	rooms := repository.New(s)
	rec := recorder.New(activityRepo.New(s))

	return &env{
		svc:      service.New(rooms, rec),
		rooms:    rooms,
		recorder: rec,
	}
}

func contextWithRole(role string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "u1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, "Test Operator")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)

	return ctx
}

func strPtr(s string) *string                { return &s }
func typePtr(t model.Type) *model.Type       { return &t }
func floatPtr(f float64) *float64            { return &f }
func statusPtr(s model.Status) *model.Status { return &s }

func TestRoomService_GetAllSeedsInventory(t *testing.T) {
	e := newEnv(t)

	res := e.svc.GetAll(contextWithRole(constant.RoleStaff))
	assert.Equal(t, 28, res.TotalData)
	assert.Equal(t, "001", res.Rooms[0].Number)
	assert.Equal(t, "028", res.Rooms[27].Number)
}

func TestRoomService_UpdateRates(t *testing.T) {
	e := newEnv(t)
	ctx := contextWithRole(constant.RoleStaff)

	err := e.svc.Update(ctx, 4, dto.UpdateRoomRequest{BaseRate: floatPtr(1750)})
	require.NoError(t, err)

	room, ok := e.rooms.Get(ctx, 4)
	require.True(t, ok)
	assert.Equal(t, float64(1750), room.BaseRate)

	entries := e.recorder.GetAll(ctx)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Details, "Unit 004 master file updated.")
}

// Unit number and category edits are reserved for the super-admin no
// matter what the transport allowed through.
func TestRoomService_UpdateRestrictedFields(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{name: "StaffDenied", role: constant.RoleStaff, wantCode: http.StatusForbidden},
		{name: "ManagerDenied", role: constant.RoleManager, wantCode: http.StatusForbidden},
		{name: "SuperAdminAllowed", role: constant.RoleSuperAdmin, wantCode: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			ctx := contextWithRole(tt.role)

			err := e.svc.Update(ctx, 1, dto.UpdateRoomRequest{
				Number: strPtr("101"),
				Type:   typePtr(model.TypeSuite),
			})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				room, ok := e.rooms.Get(ctx, 1)
				require.True(t, ok)
				assert.Equal(t, "001", room.Number, "a denied patch must not leak through")

				return
			}

			require.NoError(t, err)

			room, ok := e.rooms.Get(ctx, 1)
			require.True(t, ok)
			assert.Equal(t, "101", room.Number)
			assert.Equal(t, model.TypeSuite, room.Type)
		})
	}
}

func TestRoomService_UpdateEmptyPatch(t *testing.T) {
	e := newEnv(t)

	err := e.svc.Update(contextWithRole(constant.RoleSuperAdmin), 1, dto.UpdateRoomRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestRoomService_UpdateUnknownRoom(t *testing.T) {
	e := newEnv(t)

	err := e.svc.Update(contextWithRole(constant.RoleSuperAdmin), 404, dto.UpdateRoomRequest{BaseRate: floatPtr(1000)})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomService_SetCleaningState(t *testing.T) {
	e := newEnv(t)
	ctx := contextWithRole(constant.RoleStaff)

	require.NoError(t, e.svc.SetCleaningState(ctx, 9, false))

	room, ok := e.rooms.Get(ctx, 9)
	require.True(t, ok)
	assert.Equal(t, model.StatusCleaning, room.Status)

	require.NoError(t, e.svc.SetCleaningState(ctx, 9, true))

	room, ok = e.rooms.Get(ctx, 9)
	require.True(t, ok)
	assert.Equal(t, model.StatusAvailable, room.Status)

	entries := e.recorder.GetAll(ctx)
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Details, "Unit 009 verified as clean.")
	assert.Contains(t, entries[1].Details, "Unit 009 flagged for cleaning.")
}

// Housekeeping transitions are not guarded against the current status; an
// occupied unit can be marked clean and becomes AVAILABLE.
func TestRoomService_SetCleaningStateOverridesOccupied(t *testing.T) {
	e := newEnv(t)
	ctx := contextWithRole(constant.RoleStaff)

	require.NoError(t, e.svc.Update(ctx, 15, dto.UpdateRoomRequest{Status: statusPtr(model.StatusOccupied)}))
	require.NoError(t, e.svc.SetCleaningState(ctx, 15, true))

	room, ok := e.rooms.Get(ctx, 15)
	require.True(t, ok)
	assert.Equal(t, model.StatusAvailable, room.Status)
}

func TestRoomService_SetCleaningStateUnknownRoom(t *testing.T) {
	e := newEnv(t)

	err := e.svc.SetCleaningState(contextWithRole(constant.RoleStaff), 404, true)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
