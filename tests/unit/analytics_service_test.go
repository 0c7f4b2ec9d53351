package unit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
	"portfolio-api/tests/mocks"
)

func TestAnalyticsService_TrackVisit(t *testing.T) {
	ctx := context.Background()

	t.Run("First visit in a session counts", func(t *testing.T) {
		mockRepo := new(mocks.AnalyticsRepository)
		mockSessions := new(mocks.SessionStore)
		svc := service.NewAnalyticsService(mockRepo, mockSessions, zerolog.Nop())

		mockSessions.On("Once", ctx, "sess-1", "visited").Return(true, nil).Once()
		mockRepo.On("Increment", ctx, domain.CounterScopeGeneral, domain.CounterKeyTotalVisits).Return(nil).Once()

		assert.NoError(t, svc.TrackVisit(ctx, "sess-1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repeat visit in the same session is suppressed", func(t *testing.T) {
		mockRepo := new(mocks.AnalyticsRepository)
		mockSessions := new(mocks.SessionStore)
		svc := service.NewAnalyticsService(mockRepo, mockSessions, zerolog.Nop())

		mockSessions.On("Once", ctx, "sess-1", "visited").Return(false, nil).Once()

		assert.NoError(t, svc.TrackVisit(ctx, "sess-1"))
		mockRepo.AssertNotCalled(t, "Increment")
	})

	t.Run("Missing session id still counts", func(t *testing.T) {
		mockRepo := new(mocks.AnalyticsRepository)
		mockSessions := new(mocks.SessionStore)
		svc := service.NewAnalyticsService(mockRepo, mockSessions, zerolog.Nop())

		mockRepo.On("Increment", ctx, domain.CounterScopeGeneral, domain.CounterKeyTotalVisits).Return(nil).Once()

		assert.NoError(t, svc.TrackVisit(ctx, ""))
		mockSessions.AssertNotCalled(t, "Once")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Dedup store failure does not drop the count", func(t *testing.T) {
		mockRepo := new(mocks.AnalyticsRepository)
		mockSessions := new(mocks.SessionStore)
		svc := service.NewAnalyticsService(mockRepo, mockSessions, zerolog.Nop())

		mockSessions.On("Once", ctx, "sess-1", "visited").Return(false, errors.New("redis down")).Once()
		mockRepo.On("Increment", ctx, domain.CounterScopeGeneral, domain.CounterKeyTotalVisits).Return(nil).Once()

		assert.NoError(t, svc.TrackVisit(ctx, "sess-1"))
		mockRepo.AssertExpectations(t)
	})
}

func TestAnalyticsService_TrackBlogView(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts per slug", func(t *testing.T) {
		mockRepo := new(mocks.AnalyticsRepository)
		mockSessions := new(mocks.SessionStore)
		svc := service.NewAnalyticsService(mockRepo, mockSessions, zerolog.Nop())

		mockSessions.On("Once", ctx, "sess-1", "viewed_blog_hello-world").Return(true, nil).Once()
		mockRepo.On("Increment", ctx, domain.CounterScopeBlogs, "hello-world").Return(nil).Once()

		assert.NoError(t, svc.TrackBlogView(ctx, "sess-1", "hello-world"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty slug", func(t *testing.T) {
		mockRepo := new(mocks.AnalyticsRepository)
		svc := service.NewAnalyticsService(mockRepo, nil, zerolog.Nop())

		assert.ErrorIs(t, svc.TrackBlogView(ctx, "sess-1", ""), service.ErrValidation)
		mockRepo.AssertNotCalled(t, "Increment")
	})
}

func TestAnalyticsService_Summary(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.AnalyticsRepository)
	svc := service.NewAnalyticsService(mockRepo, nil, zerolog.Nop())

	mockRepo.On("Get", ctx, domain.CounterScopeGeneral, domain.CounterKeyTotalVisits).Return(int64(100), nil).Once()
	mockRepo.On("Scope", ctx, domain.CounterScopeBlogs).Return(map[string]int64{"hello-world": 42}, nil).Once()
	mockRepo.On("Scope", ctx, domain.CounterScopeResumes).Return(map[string]int64{"backend": 7}, nil).Once()

	summary, err := svc.Summary(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), summary.TotalVisits)
	assert.Equal(t, int64(42), summary.BlogViews["hello-world"])
	assert.Equal(t, int64(7), summary.ResumeDownloads["backend"])
	mockRepo.AssertExpectations(t)
}
