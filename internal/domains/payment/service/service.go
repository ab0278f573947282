package service

import (
	"context"

	"hus/internal/domains/payment/model/dto"
	"hus/internal/domains/payment/repository"
)

type Payment interface {
	GetAll(ctx context.Context) dto.GetPaymentsResponse
	CollectedOn(ctx context.Context, date string) float64
}

type serviceImpl struct {
	repo repository.Payment
}

func New(repo repository.Payment) Payment {
	return &serviceImpl{
		repo: repo,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) dto.GetPaymentsResponse {
	payments := s.repo.GetAll(ctx)

	res := dto.GetPaymentsResponse{
		Payments:  make([]dto.PaymentResponse, len(payments)),
		TotalData: len(payments),
	}

	for i, payment := range payments {
		res.Payments[i].FromModel(payment)
	}

	return res
}

// CollectedOn sums the payments recorded on the given business date.
func (s *serviceImpl) CollectedOn(ctx context.Context, date string) float64 {
	var total float64

	for _, payment := range s.repo.GetAll(ctx) {
		if payment.Date == date {
			total += payment.Amount
		}
	}

	return total
}
