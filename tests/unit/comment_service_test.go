package unit_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-api/internal/config"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
	"portfolio-api/tests/mocks"
)

const adminEmail = "owner@example.com"

func newCommentService(repo *mocks.CommentRepository) service.CommentService {
	cfg := &config.Config{AdminEmail: adminEmail}
	return service.NewCommentService(repo, nil, nil, cfg, zerolog.Nop())
}

func TestCommentService_Submit(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()

	t.Run("Visitor comment", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		input := domain.CreateCommentInput{
			CommentFormData: domain.CommentFormData{
				Name:    "Alice",
				Email:   "alice@example.com",
				Content: "Nice post!",
			},
		}

		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.PostID == postID &&
				c.Author.Name == "Alice" &&
				c.Author.Email == "alice@example.com" &&
				!c.Author.IsAdmin
		})).Return(nil).Once()

		c, err := svc.Submit(ctx, postID, input, "")

		assert.NoError(t, err)
		assert.NotNil(t, c)
		assert.False(t, c.Author.IsAdmin)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Admin identity comes from the token, not the form", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		input := domain.CreateCommentInput{
			CommentFormData: domain.CommentFormData{
				Name:    "Spoofed Name",
				Email:   "spoof@example.com",
				Content: "Replying as site owner",
			},
		}

		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.Author.Name == domain.AdminDisplayName &&
				c.Author.Email == adminEmail &&
				c.Author.IsAdmin
		})).Return(nil).Once()

		c, err := svc.Submit(ctx, postID, input, adminEmail)

		assert.NoError(t, err)
		assert.True(t, c.Author.IsAdmin)
		assert.Equal(t, domain.AdminDisplayName, c.Author.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Admin may omit name and email", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		input := domain.CreateCommentInput{
			CommentFormData: domain.CommentFormData{Content: "Short reply"},
		}

		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		_, err := svc.Submit(ctx, postID, input, adminEmail)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Visitor must provide name and email", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		input := domain.CreateCommentInput{
			CommentFormData: domain.CommentFormData{Content: "Anonymous"},
		}

		c, err := svc.Submit(ctx, postID, input, "")

		assert.Nil(t, c)
		assert.ErrorIs(t, err, service.ErrValidation)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Content over the limit is rejected", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		input := domain.CreateCommentInput{
			CommentFormData: domain.CommentFormData{
				Name:    "Alice",
				Email:   "alice@example.com",
				Content: strings.Repeat("x", domain.MaxCommentLength+1),
			},
		}

		c, err := svc.Submit(ctx, postID, input, "")

		assert.Nil(t, c)
		assert.ErrorIs(t, err, service.ErrValidation)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Length limit counts characters, not bytes", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		// 1000 three-byte characters: well over the limit in bytes, exactly
		// at it in characters.
		input := domain.CreateCommentInput{
			CommentFormData: domain.CommentFormData{
				Name:    "Alice",
				Email:   "alice@example.com",
				Content: strings.Repeat("字", domain.MaxCommentLength),
			},
		}

		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		c, err := svc.Submit(ctx, postID, input, "")

		assert.NoError(t, err)
		assert.NotNil(t, c)

		input.Content = strings.Repeat("字", domain.MaxCommentLength+1)
		c, err = svc.Submit(ctx, postID, input, "")

		assert.Nil(t, c)
		assert.ErrorIs(t, err, service.ErrValidation)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Reply to unknown parent", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		parentID := uuid.New()
		input := domain.CreateCommentInput{
			ParentID:        &parentID,
			CommentFormData: domain.CommentFormData{Name: "Alice", Email: "alice@example.com", Content: "hi"},
		}

		mockRepo.On("ListByPost", ctx, postID).Return([]domain.Comment{}, nil).Once()

		c, err := svc.Submit(ctx, postID, input, "")

		assert.Nil(t, c)
		assert.ErrorIs(t, err, service.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Reply beyond max depth is rejected", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		rootID := uuid.New()
		depth1ID := uuid.New()
		depth2ID := uuid.New()
		depth3ID := uuid.New()
		existing := []domain.Comment{
			makeComment(rootID, nil, base),
			makeComment(depth1ID, &rootID, base.Add(time.Minute)),
			makeComment(depth2ID, &depth1ID, base.Add(2*time.Minute)),
			makeComment(depth3ID, &depth2ID, base.Add(3*time.Minute)),
		}

		mockRepo.On("ListByPost", ctx, postID).Return(existing, nil)

		input := domain.CreateCommentInput{
			ParentID:        &depth3ID,
			CommentFormData: domain.CommentFormData{Name: "Alice", Email: "alice@example.com", Content: "too deep"},
		}

		c, err := svc.Submit(ctx, postID, input, "")

		assert.Nil(t, c)
		assert.ErrorIs(t, err, service.ErrReplyDepth)
		mockRepo.AssertNotCalled(t, "Create")

		// One level up is still fine.
		input.ParentID = &depth2ID
		mockRepo.On("Create", ctx, mock.MatchedBy(func(cm *domain.Comment) bool {
			return cm.ParentID != nil && *cm.ParentID == depth2ID
		})).Return(nil).Once()

		c, err = svc.Submit(ctx, postID, input, "")

		assert.NoError(t, err)
		assert.NotNil(t, c)
		mockRepo.AssertExpectations(t)
	})
}

func TestCommentService_Moderation(t *testing.T) {
	ctx := context.Background()
	commentID := uuid.New()
	postID := uuid.New()
	existing := &domain.Comment{ID: commentID, PostID: postID}

	t.Run("Soft delete requires the admin identity", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		err := svc.SoftDelete(ctx, "someone@example.com", commentID)

		assert.ErrorIs(t, err, service.ErrUnauthorized)
		mockRepo.AssertNotCalled(t, "SoftDelete")
	})

	t.Run("Anonymous callers cannot moderate", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		assert.ErrorIs(t, svc.SoftDelete(ctx, "", commentID), service.ErrUnauthorized)
		assert.ErrorIs(t, svc.Restore(ctx, "", commentID), service.ErrUnauthorized)
		assert.ErrorIs(t, svc.HardDelete(ctx, "", commentID), service.ErrUnauthorized)
	})

	t.Run("Soft delete records the moderator", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		mockRepo.On("GetByID", ctx, commentID).Return(existing, nil).Once()
		mockRepo.On("SoftDelete", ctx, commentID, adminEmail).Return(nil).Once()

		err := svc.SoftDelete(ctx, adminEmail, commentID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Restore an existing comment", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		mockRepo.On("GetByID", ctx, commentID).Return(existing, nil).Once()
		mockRepo.On("Restore", ctx, commentID).Return(nil).Once()

		err := svc.Restore(ctx, adminEmail, commentID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Moderating a missing comment", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		mockRepo.On("GetByID", ctx, commentID).Return(nil, nil)

		assert.ErrorIs(t, svc.SoftDelete(ctx, adminEmail, commentID), service.ErrNotFound)
		assert.ErrorIs(t, svc.Restore(ctx, adminEmail, commentID), service.ErrNotFound)
		assert.ErrorIs(t, svc.HardDelete(ctx, adminEmail, commentID), service.ErrNotFound)
	})

	t.Run("Hard delete removes the row", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := newCommentService(mockRepo)

		mockRepo.On("GetByID", ctx, commentID).Return(existing, nil).Once()
		mockRepo.On("HardDelete", ctx, commentID).Return(nil).Once()

		err := svc.HardDelete(ctx, adminEmail, commentID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCommentService_Stats(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.CommentRepository)
	svc := newCommentService(mockRepo)

	expected := domain.CommentStats{Total: 10, Active: 7, Deleted: 3}
	mockRepo.On("Stats", ctx).Return(expected, nil).Once()

	stats, err := svc.Stats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, stats)
	mockRepo.AssertExpectations(t)
}
