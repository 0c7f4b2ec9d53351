package service

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"portfolio-api/internal/config"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

type ResumeService interface {
	List(ctx context.Context) ([]domain.ResumeStatus, error)
	Upload(ctx context.Context, roleID string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, roleID string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, roleID string) error
}

type resumeService struct {
	analyticsRepo repository.AnalyticsRepository
	minioClient   *minio.Client
	cfg           *config.Config
}

func NewResumeService(analyticsRepo repository.AnalyticsRepository, minioClient *minio.Client, cfg *config.Config) ResumeService {
	return &resumeService{
		analyticsRepo: analyticsRepo,
		minioClient:   minioClient,
		cfg:           cfg,
	}
}

func (s *resumeService) List(ctx context.Context) ([]domain.ResumeStatus, error) {
	downloads, err := s.analyticsRepo.Scope(ctx, domain.CounterScopeResumes)
	if err != nil {
		downloads = map[string]int64{}
	}

	statuses := make([]domain.ResumeStatus, 0, len(domain.ResumeRoles))
	for _, role := range domain.ResumeRoles {
		status := domain.ResumeStatus{ResumeRole: role, Downloads: downloads[role.ID]}

		if s.minioClient != nil {
			info, err := s.minioClient.StatObject(ctx, s.cfg.MinIOBucket, objectKey(role.ID), minio.StatObjectOptions{})
			if err == nil {
				status.Exists = true
				status.Size = info.Size
				uploadedAt := info.LastModified
				status.UploadedAt = &uploadedAt
			}
		}

		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (s *resumeService) Upload(ctx context.Context, roleID string, reader io.Reader, size int64, contentType string) error {
	if !domain.ValidResumeRole(roleID) {
		return fmt.Errorf("%w: unknown resume role %q", ErrValidation, roleID)
	}
	if contentType != "application/pdf" {
		return fmt.Errorf("%w: resumes must be PDF files", ErrValidation)
	}
	if s.minioClient == nil {
		return fmt.Errorf("%w: storage unavailable", ErrWrite)
	}

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectKey(roleID), reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func (s *resumeService) Download(ctx context.Context, roleID string) (io.ReadCloser, int64, error) {
	if !domain.ValidResumeRole(roleID) {
		return nil, 0, fmt.Errorf("%w: unknown resume role %q", ErrValidation, roleID)
	}
	if s.minioClient == nil {
		return nil, 0, fmt.Errorf("%w: resume", ErrNotFound)
	}

	obj, err := s.minioClient.GetObject(ctx, s.cfg.MinIOBucket, objectKey(roleID), minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: resume", ErrNotFound)
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, 0, fmt.Errorf("%w: resume", ErrNotFound)
	}

	_ = s.analyticsRepo.Increment(ctx, domain.CounterScopeResumes, roleID)

	return obj, info.Size, nil
}

func (s *resumeService) Delete(ctx context.Context, roleID string) error {
	if !domain.ValidResumeRole(roleID) {
		return fmt.Errorf("%w: unknown resume role %q", ErrValidation, roleID)
	}
	if s.minioClient == nil {
		return fmt.Errorf("%w: storage unavailable", ErrWrite)
	}
	if err := s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, objectKey(roleID), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func objectKey(roleID string) string {
	return fmt.Sprintf("resumes/%s.pdf", roleID)
}
