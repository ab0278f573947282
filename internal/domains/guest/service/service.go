package service

import (
	"context"
	"strings"

	"hus/internal/domains/guest/model/dto"
	"hus/internal/domains/guest/repository"
	"hus/shared/constant"
)

type Guest interface {
	GetAll(ctx context.Context, search string) dto.GetGuestsResponse
}

type serviceImpl struct {
	repo repository.Guest
}

func New(repo repository.Guest) Guest {
	return &serviceImpl{
		repo: repo,
	}
}

// GetAll lists the registry, optionally filtered by guest name.
func (s *serviceImpl) GetAll(ctx context.Context, search string) dto.GetGuestsResponse {
	res := dto.GetGuestsResponse{Guests: []dto.GuestResponse{}}
	needle := strings.ToLower(search)

	for _, guest := range s.repo.GetAll(ctx) {
		if search != constant.Empty && !strings.Contains(strings.ToLower(guest.Name), needle) {
			continue
		}

		var entry dto.GuestResponse

		entry.FromModel(guest)
		res.Guests = append(res.Guests, entry)
	}

	res.TotalData = len(res.Guests)

	return res
}
