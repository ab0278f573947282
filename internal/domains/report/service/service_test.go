package service_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentModel "hus/internal/domains/payment/model"
	paymentRepo "hus/internal/domains/payment/repository"
	paymentService "hus/internal/domains/payment/service"
	"hus/internal/domains/report/service"
	roomModel "hus/internal/domains/room/model"
	roomRepo "hus/internal/domains/room/repository"
	"hus/internal/store"
	"hus/shared/timezone"
)

func TestReportService_Dashboard(t *testing.T) {
	s, err := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	ctx := context.Background()
	rooms := roomRepo.New(s)
	payments := paymentRepo.New(s)

	inventory := rooms.GetAll(ctx)
	inventory[0].Status = roomModel.StatusOccupied
	inventory[1].Status = roomModel.StatusOccupied
	inventory[2].Status = roomModel.StatusCleaning
	require.NoError(t, rooms.Save(ctx, inventory))

	require.NoError(t, payments.Save(ctx, []paymentModel.Payment{
		{ID: "p1", BookingID: "b1", Amount: 1500, Method: paymentModel.MethodCash, Date: timezone.Today()},
		{ID: "p2", BookingID: "b1", Amount: 700, Method: paymentModel.MethodGCash, Date: timezone.Today()},
		{ID: "p3", BookingID: "b2", Amount: 9999, Method: paymentModel.MethodCash, Date: "2020-01-01"},
	}))

	res := service.New(rooms, paymentService.New(payments)).Dashboard(ctx)

	assert.Equal(t, timezone.Today(), res.Date)
	assert.Equal(t, 28, res.TotalUnits)
	assert.Equal(t, 2, res.Occupied)
	assert.Equal(t, 1, res.Cleaning)
	assert.Equal(t, 25, res.Ready)

	// Only payments dated today count toward revenue.
	assert.Equal(t, float64(2200), res.RevenueToday)
}
