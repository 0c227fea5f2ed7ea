package settings

import (
	"context"
	"errors"
)

type SettingsService interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, settings Settings) (Settings, error)
}

type SettingsServiceImpl struct {
	repo SettingsRepo
}

func NewSettingsService(repo SettingsRepo) *SettingsServiceImpl {
	return &SettingsServiceImpl{repo: repo}
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (Settings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsServiceImpl) Update(ctx context.Context, settings Settings) (Settings, error) {
	if settings.BufferPercent < 0 || settings.BufferPercent > 100 {
		return Settings{}, errors.New("bufferPercent must be between 0 and 100")
	}
	if settings.CanadaWeeklyHours <= 0 || settings.BrazilWeeklyHours <= 0 {
		return Settings{}, errors.New("weekly hours must be greater than zero")
	}
	if err := s.repo.Update(ctx, settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}
