package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	activityRepo "hus/internal/domains/activity/repository"
	bookingRepo "hus/internal/domains/booking/repository"
	guestRepo "hus/internal/domains/guest/repository"
	paymentRepo "hus/internal/domains/payment/repository"
	roomRepo "hus/internal/domains/room/repository"
	settingsRepo "hus/internal/domains/settings/repository"
	"hus/internal/domains/snapshot/service"
	userModel "hus/internal/domains/user/model"
	userRepo "hus/internal/domains/user/repository"
	"hus/internal/store"
	"hus/internal/store/mocks"
	"hus/shared/failure"
)

func newService(s store.Store) service.Snapshot {
	return service.New(
		s,
		roomRepo.New(s),
		bookingRepo.New(s),
		guestRepo.New(s),
		paymentRepo.New(s),
		userRepo.New(s),
		activityRepo.New(s),
		settingsRepo.New(s),
	)
}

func TestSnapshotService_Export(t *testing.T) {
	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	res := newService(s).Export(context.Background())

	// A fresh store still exports a complete document: the seeded
	// inventory, the provisioned super-admin and the default settings.
	assert.Len(t, res.Rooms, 28)
	require.Len(t, res.Users, 1)
	assert.Equal(t, userModel.SuperAdminUsername, res.Users[0].Username)
	assert.Equal(t, "Hus Hotel", res.Settings.Name)
	assert.Equal(t, "PHP", res.Settings.Currency)
	assert.Empty(t, res.Bookings)
	assert.Empty(t, res.Logs)

	_, err = time.Parse(time.RFC3339, res.ExportedAt)
	assert.NoError(t, err)
}

func TestSnapshotService_WipeRequiresConfirmation(t *testing.T) {
	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	err = newService(s).Wipe(context.Background(), false)
	require.Error(t, err)
	assert.Equal(t, failure.WipeNotConfirmedError, err)
}

func TestSnapshotService_Wipe(t *testing.T) {
	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	svc := newService(s)

	// Populate the users collection, then destroy everything.
	userRepo.New(s).GetAll(context.Background())

	_, ok := s.Read(store.CollectionUsers)
	require.True(t, ok)

	require.NoError(t, svc.Wipe(context.Background(), true))

	for _, collection := range s.Collections() {
		_, ok := s.Read(collection)
		assert.False(t, ok, collection)
	}
}

func TestSnapshotService_WipePropagatesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockStore(ctrl)

	mockStore.EXPECT().WipeAll().Return(errors.New("device gone"))

	err := newService(mockStore).Wipe(context.Background(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
}
