package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activityModel "hus/internal/domains/activity/model"
	activityRepo "hus/internal/domains/activity/repository"
	"hus/internal/domains/activity/recorder"
	"hus/internal/domains/user/model"
	"hus/internal/domains/user/model/dto"
	"hus/internal/domains/user/repository"
	"hus/internal/domains/user/service"
	"hus/internal/store"
	"hus/shared/constant"
	"hus/shared/failure"
)

type env struct {
	svc      service.User
	users    repository.User
	recorder recorder.Recorder
}

func newEnv(t *testing.T) *env {
	t.Helper()

	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	users := repository.New(s)
	rec := recorder.New(activityRepo.New(s))

	return &env{
		svc:      service.New(users, rec),
		users:    users,
		recorder: rec,
	}
}

func actorContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "sa")
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, model.SuperAdminName)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)

	return ctx
}

func strPtr(s string) *string { return &s }

func TestUserService_GetAllIncludesSuperAdmin(t *testing.T) {
	e := newEnv(t)

	res := e.svc.GetAll(actorContext())
	require.Equal(t, 1, res.TotalData)
	assert.Equal(t, model.SuperAdminUsername, res.Users[0].Username)
	assert.Equal(t, model.RoleSuperAdmin, res.Users[0].Role)
	assert.True(t, res.Users[0].IsActive)
}

func TestUserService_Create(t *testing.T) {
	e := newEnv(t)
	ctx := actorContext()

	res, err := e.svc.Create(ctx, dto.CreateUserRequest{
		Name:     "Marco Reyes",
		Username: "mreyes",
		Role:     model.RoleStaff,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Marco Reyes", res.Name)
	assert.True(t, res.IsActive, "accounts default to active")

	// The starter password is assigned server-side, never taken from the
	// request.
	stored, found := e.users.GetByUsername(ctx, "mreyes")
	require.True(t, found)
	assert.Equal(t, model.DefaultPassword, stored.Password)

	entries := e.recorder.GetAll(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, activityModel.ActionCreate, entries[0].ActionType)
	assert.Equal(t, activityModel.EntityUser, entries[0].EntityType)
	assert.Contains(t, entries[0].Details, "New staff entry: Marco Reyes.")
}

func TestUserService_CreateDuplicateUsername(t *testing.T) {
	e := newEnv(t)
	ctx := actorContext()

	_, err := e.svc.Create(ctx, dto.CreateUserRequest{
		Name:     "Impostor",
		Username: model.SuperAdminUsername,
		Role:     model.RoleManager,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestUserService_Update(t *testing.T) {
	e := newEnv(t)
	ctx := actorContext()

	created, err := e.svc.Create(ctx, dto.CreateUserRequest{
		Name:     "Marco Reyes",
		Username: "mreyes",
		Role:     model.RoleStaff,
	})
	require.NoError(t, err)

	err = e.svc.Update(ctx, created.ID, dto.UpdateUserRequest{
		Name:     strPtr("Marco A. Reyes"),
		Password: strPtr("letmein"),
	})
	require.NoError(t, err)

	stored, found := e.users.Get(ctx, created.ID)
	require.True(t, found)
	assert.Equal(t, "Marco A. Reyes", stored.Name)
	assert.Equal(t, "letmein", stored.Password)

	entries := e.recorder.GetAll(ctx)
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[0].Details, "Personnel file for Marco A. Reyes modified.")
}

func TestUserService_UpdateEmptyPatch(t *testing.T) {
	e := newEnv(t)

	err := e.svc.Update(actorContext(), "sa", dto.UpdateUserRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestUserService_UpdateUnknownUser(t *testing.T) {
	e := newEnv(t)

	err := e.svc.Update(actorContext(), "missing", dto.UpdateUserRequest{Name: strPtr("Nobody")})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestUserService_Delete(t *testing.T) {
	e := newEnv(t)
	ctx := actorContext()

	created, err := e.svc.Create(ctx, dto.CreateUserRequest{
		Name:     "Lea Santos",
		Username: "lsantos",
		Role:     model.RoleStaff,
	})
	require.NoError(t, err)

	require.NoError(t, e.svc.Delete(ctx, created.ID))

	_, found := e.users.Get(ctx, created.ID)
	assert.False(t, found)

	entries := e.recorder.GetAll(ctx)
	require.NotEmpty(t, entries)
	assert.Equal(t, activityModel.ActionDelete, entries[0].ActionType)
	assert.Contains(t, entries[0].Details, "Staff registry Lea Santos deleted.")
}

func TestUserService_DeleteUnknownUser(t *testing.T) {
	e := newEnv(t)

	err := e.svc.Delete(actorContext(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
