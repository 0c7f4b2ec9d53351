package service

import (
	"context"
	"fmt"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

type SettingsService interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, input domain.SiteSettingsInput) (*domain.SiteSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, input domain.SiteSettingsInput) (*domain.SiteSettings, error) {
	settings := &domain.SiteSettings{
		Github:   input.Github,
		Linkedin: input.Linkedin,
		Discord:  input.Discord,
		Email:    input.Email,
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return settings, nil
}
