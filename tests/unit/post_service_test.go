package unit_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
	"portfolio-api/tests/mocks"
)

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()

	input := domain.PostInput{
		Title:   "Hello World",
		Slug:    "hello-world",
		Excerpt: "First post",
		Content: "# Heading\n\nBody text.",
	}

	t.Run("Success", func(t *testing.T) {
		mockPostRepo := new(mocks.PostRepository)
		svc := service.NewPostService(mockPostRepo, nil, nil)

		mockPostRepo.On("SlugExists", ctx, input.Slug, uuid.Nil).Return(false, nil).Once()
		mockPostRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Post) bool {
			return p.Slug == input.Slug && p.Title == input.Title
		})).Return(nil).Once()

		post, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, post)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Duplicate slug", func(t *testing.T) {
		mockPostRepo := new(mocks.PostRepository)
		svc := service.NewPostService(mockPostRepo, nil, nil)

		mockPostRepo.On("SlugExists", ctx, input.Slug, uuid.Nil).Return(true, nil).Once()

		post, err := svc.Create(ctx, input)

		assert.Nil(t, post)
		assert.ErrorIs(t, err, service.ErrSlugTaken)
		mockPostRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Missing title", func(t *testing.T) {
		mockPostRepo := new(mocks.PostRepository)
		svc := service.NewPostService(mockPostRepo, nil, nil)

		post, err := svc.Create(ctx, domain.PostInput{Slug: "s", Content: "c"})

		assert.Nil(t, post)
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestPostService_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Renders markdown and attaches views", func(t *testing.T) {
		mockPostRepo := new(mocks.PostRepository)
		mockAnalyticsRepo := new(mocks.AnalyticsRepository)
		svc := service.NewPostService(mockPostRepo, mockAnalyticsRepo, nil)

		stored := &domain.Post{
			ID:      uuid.New(),
			Title:   "Hello World",
			Slug:    "hello-world",
			Content: "**bold**",
		}
		mockPostRepo.On("GetBySlug", ctx, "hello-world").Return(stored, nil).Once()
		mockAnalyticsRepo.On("Get", ctx, domain.CounterScopeBlogs, "hello-world").Return(int64(42), nil).Once()

		rendered, err := svc.GetBySlug(ctx, "hello-world")

		assert.NoError(t, err)
		assert.Contains(t, rendered.ContentHTML, "<strong>bold</strong>")
		assert.Equal(t, int64(42), rendered.Views)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Unknown slug", func(t *testing.T) {
		mockPostRepo := new(mocks.PostRepository)
		svc := service.NewPostService(mockPostRepo, nil, nil)

		mockPostRepo.On("GetBySlug", ctx, "missing").Return(nil, nil).Once()

		rendered, err := svc.GetBySlug(ctx, "missing")

		assert.Nil(t, rendered)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()

	existing := &domain.Post{
		ID:      postID,
		Title:   "Old",
		Slug:    "old",
		Content: "old body",
	}

	input := domain.PostInput{Title: "New", Slug: "new", Content: "new body"}

	t.Run("Success", func(t *testing.T) {
		mockPostRepo := new(mocks.PostRepository)
		svc := service.NewPostService(mockPostRepo, nil, nil)

		mockPostRepo.On("GetByID", ctx, postID).Return(existing, nil).Once()
		mockPostRepo.On("SlugExists", ctx, "new", postID).Return(false, nil).Once()
		mockPostRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Post) bool {
			return p.ID == postID && p.Slug == "new" && p.Title == "New"
		})).Return(nil).Once()

		post, err := svc.Update(ctx, postID, input)

		assert.NoError(t, err)
		assert.Equal(t, "New", post.Title)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Missing post", func(t *testing.T) {
		mockPostRepo := new(mocks.PostRepository)
		svc := service.NewPostService(mockPostRepo, nil, nil)

		mockPostRepo.On("GetByID", ctx, postID).Return(nil, nil).Once()

		post, err := svc.Update(ctx, postID, input)

		assert.Nil(t, post)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}
