package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hus/internal/domains/settings/model/dto"
	"hus/internal/domains/settings/repository"
)

type Settings interface {
	Get(ctx context.Context) dto.SettingsResponse
	Save(ctx context.Context, req dto.SaveSettingsRequest) error
}

type serviceImpl struct {
	repo repository.Settings
}

func New(repo repository.Settings) Settings {
	return &serviceImpl{
		repo: repo,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse) {
	res.FromModel(s.repo.Get(ctx))

	return res
}

// Save overwrites the whole settings object.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveSettingsRequest) error {
	if err := s.repo.Save(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to save settings")

		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
