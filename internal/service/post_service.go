package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/pkg/markdown"
	"portfolio-api/internal/repository"
)

const postListCacheKey = "posts:list"

type PostService interface {
	List(ctx context.Context) ([]domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.RenderedPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Create(ctx context.Context, input domain.PostInput) (*domain.Post, error)
	Update(ctx context.Context, id uuid.UUID, input domain.PostInput) (*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type postService struct {
	postRepo      repository.PostRepository
	analyticsRepo repository.AnalyticsRepository
	redis         *redis.Client
}

func NewPostService(postRepo repository.PostRepository, analyticsRepo repository.AnalyticsRepository, redisClient *redis.Client) PostService {
	return &postService{
		postRepo:      postRepo,
		analyticsRepo: analyticsRepo,
		redis:         redisClient,
	}
}

func (s *postService) List(ctx context.Context) ([]domain.Post, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, postListCacheKey).Result(); err == nil {
			var posts []domain.Post
			if json.Unmarshal([]byte(cached), &posts) == nil {
				return posts, nil
			}
		}
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(posts); err == nil {
			_ = s.redis.Set(ctx, postListCacheKey, data, 5*time.Minute).Err()
		}
	}

	return posts, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*domain.RenderedPost, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("%w: post", ErrNotFound)
	}

	views, err := s.analyticsRepo.Get(ctx, domain.CounterScopeBlogs, post.Slug)
	if err != nil {
		views = 0
	}

	return &domain.RenderedPost{
		Post:        *post,
		ContentHTML: markdown.Render(post.Content),
		Views:       views,
	}, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("%w: post", ErrNotFound)
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, input domain.PostInput) (*domain.Post, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	taken, err := s.postRepo.SlugExists(ctx, input.Slug, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	post := &domain.Post{
		ID:      uuid.New(),
		Title:   input.Title,
		Slug:    input.Slug,
		Excerpt: input.Excerpt,
		Content: input.Content,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	s.invalidate(ctx)
	return post, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, input domain.PostInput) (*domain.Post, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.postRepo.SlugExists(ctx, input.Slug, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	post.Title = input.Title
	post.Slug = input.Slug
	post.Excerpt = input.Excerpt
	post.Content = input.Content

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	s.invalidate(ctx)
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *postService) invalidate(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, postListCacheKey).Err()
	}
}

func validatePostInput(input domain.PostInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(input.Slug) == "" {
		return fmt.Errorf("%w: slug is required", ErrValidation)
	}
	if strings.TrimSpace(input.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	return nil
}
