package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

type ProjectService interface {
	List(ctx context.Context, featuredOnly bool) ([]domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, input domain.ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, input domain.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) List(ctx context.Context, featuredOnly bool) ([]domain.Project, error) {
	return s.projectRepo.List(ctx, featuredOnly)
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project", ErrNotFound)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, input domain.ProjectInput) (*domain.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	project := &domain.Project{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Summary:     input.Summary,
		TechStack:   input.TechStack,
		Link:        input.Link,
		Github:      input.Github,
		Image:       input.Image,
		Featured:    input.Featured,
		Order:       input.Order,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, input domain.ProjectInput) (*domain.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Title = input.Title
	project.Description = input.Description
	project.Summary = input.Summary
	project.TechStack = input.TechStack
	project.Link = input.Link
	project.Github = input.Github
	project.Image = input.Image
	project.Featured = input.Featured
	project.Order = input.Order

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, project.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func validateProjectInput(input domain.ProjectInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	return nil
}
