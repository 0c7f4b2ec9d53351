package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// SessionStore suppresses duplicate counts within one visitor session. It is
// passed in explicitly rather than reached for as a global.
type SessionStore interface {
	// Once reports true the first time a (session, key) pair is seen.
	Once(ctx context.Context, sessionID, key string) (bool, error)
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Once(ctx context.Context, sessionID, key string) (bool, error) {
	return s.client.SetNX(ctx, fmt.Sprintf("session:%s:%s", sessionID, key), 1, s.ttl).Result()
}

type AnalyticsService interface {
	TrackVisit(ctx context.Context, sessionID string) error
	TrackBlogView(ctx context.Context, sessionID, slug string) error
	Summary(ctx context.Context) (*domain.AnalyticsSummary, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	sessions      SessionStore
	log           zerolog.Logger
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, sessions SessionStore, log zerolog.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		sessions:      sessions,
		log:           log.With().Str("component", "analytics").Logger(),
	}
}

func (s *analyticsService) TrackVisit(ctx context.Context, sessionID string) error {
	ok, err := s.firstInSession(ctx, sessionID, "visited")
	if err != nil {
		s.log.Warn().Err(err).Msg("session dedup unavailable, counting visit")
	}
	if !ok && err == nil {
		return nil
	}
	return s.analyticsRepo.Increment(ctx, domain.CounterScopeGeneral, domain.CounterKeyTotalVisits)
}

func (s *analyticsService) TrackBlogView(ctx context.Context, sessionID, slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: slug is required", ErrValidation)
	}
	ok, err := s.firstInSession(ctx, sessionID, "viewed_blog_"+slug)
	if err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("session dedup unavailable, counting view")
	}
	if !ok && err == nil {
		return nil
	}
	return s.analyticsRepo.Increment(ctx, domain.CounterScopeBlogs, slug)
}

func (s *analyticsService) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	visits, err := s.analyticsRepo.Get(ctx, domain.CounterScopeGeneral, domain.CounterKeyTotalVisits)
	if err != nil {
		return nil, err
	}

	blogViews, err := s.analyticsRepo.Scope(ctx, domain.CounterScopeBlogs)
	if err != nil {
		return nil, err
	}

	resumeDownloads, err := s.analyticsRepo.Scope(ctx, domain.CounterScopeResumes)
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsSummary{
		TotalVisits:     visits,
		BlogViews:       blogViews,
		ResumeDownloads: resumeDownloads,
	}, nil
}

// firstInSession treats a missing session id as a fresh session so the event
// still counts.
func (s *analyticsService) firstInSession(ctx context.Context, sessionID, key string) (bool, error) {
	if sessionID == "" || s.sessions == nil {
		return true, nil
	}
	return s.sessions.Once(ctx, sessionID, key)
}
