package service

import (
	"context"

	paymentService "hus/internal/domains/payment/service"
	"hus/internal/domains/report/model/dto"
	roomModel "hus/internal/domains/room/model"
	roomRepo "hus/internal/domains/room/repository"
	"hus/shared/timezone"
)

type Report interface {
	Dashboard(ctx context.Context) dto.DashboardResponse
}

type serviceImpl struct {
	roomRepo roomRepo.Room
	payments paymentService.Payment
}

func New(roomRepo roomRepo.Room, payments paymentService.Payment) Report {
	return &serviceImpl{
		roomRepo: roomRepo,
		payments: payments,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) dto.DashboardResponse {
	today := timezone.Today()
	rooms := s.roomRepo.GetAll(ctx)

	res := dto.DashboardResponse{
		Date:         today,
		TotalUnits:   len(rooms),
		RevenueToday: s.payments.CollectedOn(ctx, today),
	}

	for _, room := range rooms {
		switch room.Status {
		case roomModel.StatusOccupied:
			res.Occupied++
		case roomModel.StatusAvailable:
			res.Ready++
		case roomModel.StatusCleaning:
			res.Cleaning++
		}
	}

	return res
}
