package settings

import (
	"context"
)

type StubSettingsRepo struct {
	settings Settings
}

func NewStubSettingsRepo() *StubSettingsRepo {
	return &StubSettingsRepo{settings: Settings{
		BufferPercent:     20.0,
		CanadaWeeklyHours: 37.5,
		BrazilWeeklyHours: 44.0,
	}}
}

func (s *StubSettingsRepo) Get(ctx context.Context) (Settings, error) {
	return s.settings, nil
}

func (s *StubSettingsRepo) Update(ctx context.Context, settings Settings) error {
	s.settings = settings
	return nil
}
