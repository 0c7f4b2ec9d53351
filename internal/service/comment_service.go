package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"portfolio-api/internal/config"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// CommentService is the comment-section controller and moderation engine:
// it validates submissions, derives authorial identity from the caller's
// verified token, gates reply depth, and drives the soft-delete/restore
// state machine. Moderation actions require the single configured
// administrator identity.
type CommentService interface {
	Submit(ctx context.Context, postID uuid.UUID, input domain.CreateCommentInput, callerAdminEmail string) (*domain.Comment, error)
	Thread(ctx context.Context, postID uuid.UUID) (domain.ThreadView, error)
	Subscribe(postID uuid.UUID) (<-chan []domain.Comment, func())
	SoftDelete(ctx context.Context, callerAdminEmail string, id uuid.UUID) error
	Restore(ctx context.Context, callerAdminEmail string, id uuid.UUID) error
	HardDelete(ctx context.Context, callerAdminEmail string, id uuid.UUID) error
	ListAll(ctx context.Context, filter domain.CommentStatusFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Comment], error)
	Stats(ctx context.Context) (domain.CommentStats, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	stream      *CommentStream
	redis       *redis.Client
	cfg         *config.Config
	log         zerolog.Logger
}

func NewCommentService(commentRepo repository.CommentRepository, stream *CommentStream, redisClient *redis.Client, cfg *config.Config, log zerolog.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		stream:      stream,
		redis:       redisClient,
		cfg:         cfg,
		log:         log.With().Str("component", "comment_service").Logger(),
	}
}

func (s *commentService) Submit(ctx context.Context, postID uuid.UUID, input domain.CreateCommentInput, callerAdminEmail string) (*domain.Comment, error) {
	isAdmin := s.isAdmin(callerAdminEmail)

	if err := validateCommentForm(input.CommentFormData, isAdmin); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		comments, err := s.postComments(ctx, postID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWrite, err)
		}
		thread := domain.BuildThread(comments)
		if !contains(comments, *input.ParentID) {
			return nil, fmt.Errorf("%w: parent comment", ErrNotFound)
		}
		if !thread.CanReplyTo(*input.ParentID) {
			return nil, ErrReplyDepth
		}
	}

	author := domain.CommentAuthor{
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
	}
	if isAdmin {
		// Identity is derived from the verified token, never from the form.
		author = domain.CommentAuthor{
			Name:    domain.AdminDisplayName,
			Email:   s.cfg.AdminEmail,
			IsAdmin: true,
		}
	}

	comment := &domain.Comment{
		ID:       uuid.New(),
		PostID:   postID,
		ParentID: input.ParentID,
		Author:   author,
		Content:  input.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	s.afterWrite(ctx, postID)
	return comment, nil
}

func (s *commentService) Thread(ctx context.Context, postID uuid.UUID) (domain.ThreadView, error) {
	comments, err := s.postComments(ctx, postID)
	if err != nil {
		return domain.ThreadView{}, err
	}
	return domain.NewThreadView(comments), nil
}

func (s *commentService) Subscribe(postID uuid.UUID) (<-chan []domain.Comment, func()) {
	return s.stream.Subscribe(postID)
}

func (s *commentService) SoftDelete(ctx context.Context, callerAdminEmail string, id uuid.UUID) error {
	if !s.isAdmin(callerAdminEmail) {
		return ErrUnauthorized
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if comment == nil {
		return fmt.Errorf("%w: comment", ErrNotFound)
	}

	// Re-deleting a deleted comment is a no-op at the store level.
	if err := s.commentRepo.SoftDelete(ctx, id, callerAdminEmail); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	s.afterWrite(ctx, comment.PostID)
	return nil
}

func (s *commentService) Restore(ctx context.Context, callerAdminEmail string, id uuid.UUID) error {
	if !s.isAdmin(callerAdminEmail) {
		return ErrUnauthorized
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if comment == nil {
		return fmt.Errorf("%w: comment", ErrNotFound)
	}

	if err := s.commentRepo.Restore(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	s.afterWrite(ctx, comment.PostID)
	return nil
}

// HardDelete permanently removes a comment. It exists for the moderation
// dashboard only; replies that referenced the removed comment surface as
// top-level in subsequently built threads.
func (s *commentService) HardDelete(ctx context.Context, callerAdminEmail string, id uuid.UUID) error {
	if !s.isAdmin(callerAdminEmail) {
		return ErrUnauthorized
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if comment == nil {
		return fmt.Errorf("%w: comment", ErrNotFound)
	}

	if err := s.commentRepo.HardDelete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	s.afterWrite(ctx, comment.PostID)
	return nil
}

func (s *commentService) ListAll(ctx context.Context, filter domain.CommentStatusFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Comment], error) {
	comments, total, err := s.commentRepo.ListAll(ctx, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Comment]{}, err
	}
	return domain.NewPaginatedResponse(comments, params.Page, params.PageSize, total), nil
}

func (s *commentService) Stats(ctx context.Context) (domain.CommentStats, error) {
	return s.commentRepo.Stats(ctx)
}

func (s *commentService) isAdmin(callerAdminEmail string) bool {
	return callerAdminEmail != "" && strings.EqualFold(callerAdminEmail, s.cfg.AdminEmail)
}

// postComments returns the full comment set for a post, via the Redis cache
// when warm.
func (s *commentService) postComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	cacheKey := s.cacheKey(postID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var comments []domain.Comment
			if json.Unmarshal([]byte(cached), &comments) == nil {
				return comments, nil
			}
		}
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(comments); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, 5*time.Minute).Err()
		}
	}

	return comments, nil
}

// afterWrite invalidates the post's cached set and pushes the refreshed set
// to live subscribers.
func (s *commentService) afterWrite(ctx context.Context, postID uuid.UUID) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, s.cacheKey(postID)).Err()
	}

	if s.stream == nil {
		return
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		s.log.Error().Err(err).Str("post_id", postID.String()).Msg("failed to refresh comment set for subscribers")
		return
	}
	s.stream.Publish(postID, comments)
}

func (s *commentService) cacheKey(postID uuid.UUID) string {
	return fmt.Sprintf("comments:%s", postID)
}

func validateCommentForm(form domain.CommentFormData, isAdmin bool) error {
	if !isAdmin {
		if strings.TrimSpace(form.Name) == "" {
			return fmt.Errorf("%w: name is required", ErrValidation)
		}
		if strings.TrimSpace(form.Email) == "" {
			return fmt.Errorf("%w: email is required", ErrValidation)
		}
	}
	if strings.TrimSpace(form.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if utf8.RuneCountInString(form.Content) > domain.MaxCommentLength {
		return fmt.Errorf("%w: content exceeds %d characters", ErrValidation, domain.MaxCommentLength)
	}
	return nil
}

func contains(comments []domain.Comment, id uuid.UUID) bool {
	for _, c := range comments {
		if c.ID == id {
			return true
		}
	}
	return false
}
