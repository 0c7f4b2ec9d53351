package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

type ExperienceService interface {
	List(ctx context.Context) ([]domain.Experience, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Experience, error)
	Create(ctx context.Context, input domain.ExperienceInput) (*domain.Experience, error)
	Update(ctx context.Context, id uuid.UUID, input domain.ExperienceInput) (*domain.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type experienceService struct {
	experienceRepo repository.ExperienceRepository
}

func NewExperienceService(experienceRepo repository.ExperienceRepository) ExperienceService {
	return &experienceService{experienceRepo: experienceRepo}
}

func (s *experienceService) List(ctx context.Context) ([]domain.Experience, error) {
	return s.experienceRepo.List(ctx)
}

func (s *experienceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Experience, error) {
	exp, err := s.experienceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, fmt.Errorf("%w: experience", ErrNotFound)
	}
	return exp, nil
}

func (s *experienceService) Create(ctx context.Context, input domain.ExperienceInput) (*domain.Experience, error) {
	if err := validateExperienceInput(input); err != nil {
		return nil, err
	}

	exp := &domain.Experience{
		ID:           uuid.New(),
		Company:      input.Company,
		Position:     input.Position,
		Duration:     input.Duration,
		Description:  input.Description,
		Technologies: input.Technologies,
		Logo:         input.Logo,
		Order:        input.Order,
		Featured:     input.Featured,
	}

	if err := s.experienceRepo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return exp, nil
}

func (s *experienceService) Update(ctx context.Context, id uuid.UUID, input domain.ExperienceInput) (*domain.Experience, error) {
	if err := validateExperienceInput(input); err != nil {
		return nil, err
	}

	exp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exp.Company = input.Company
	exp.Position = input.Position
	exp.Duration = input.Duration
	exp.Description = input.Description
	exp.Technologies = input.Technologies
	exp.Logo = input.Logo
	exp.Order = input.Order
	exp.Featured = input.Featured

	if err := s.experienceRepo.Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return exp, nil
}

func (s *experienceService) Delete(ctx context.Context, id uuid.UUID) error {
	exp, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.experienceRepo.Delete(ctx, exp.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func validateExperienceInput(input domain.ExperienceInput) error {
	if strings.TrimSpace(input.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrValidation)
	}
	if strings.TrimSpace(input.Position) == "" {
		return fmt.Errorf("%w: position is required", ErrValidation)
	}
	return nil
}
