package unit_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
)

func TestCommentStream(t *testing.T) {
	postID := uuid.New()
	otherPostID := uuid.New()

	t.Run("Delivers updates to subscribers of the same post", func(t *testing.T) {
		stream := service.NewCommentStream(zerolog.Nop())
		updates, release := stream.Subscribe(postID)
		defer release()

		published := []domain.Comment{{ID: uuid.New(), PostID: postID, Content: "hi"}}
		stream.Publish(postID, published)

		select {
		case got := <-updates:
			assert.Equal(t, published, got)
		case <-time.After(time.Second):
			t.Fatal("expected an update")
		}
	})

	t.Run("Does not leak updates across posts", func(t *testing.T) {
		stream := service.NewCommentStream(zerolog.Nop())
		updates, release := stream.Subscribe(otherPostID)
		defer release()

		stream.Publish(postID, []domain.Comment{{ID: uuid.New(), PostID: postID}})

		select {
		case <-updates:
			t.Fatal("subscriber for another post received an update")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("A slow subscriber only ever sees the latest set", func(t *testing.T) {
		stream := service.NewCommentStream(zerolog.Nop())
		updates, release := stream.Subscribe(postID)
		defer release()

		first := []domain.Comment{{ID: uuid.New(), PostID: postID, Content: "first"}}
		second := []domain.Comment{{ID: uuid.New(), PostID: postID, Content: "second"}}
		stream.Publish(postID, first)
		stream.Publish(postID, second)

		select {
		case got := <-updates:
			assert.Equal(t, second, got)
		case <-time.After(time.Second):
			t.Fatal("expected an update")
		}
	})

	t.Run("Release closes the channel and is idempotent", func(t *testing.T) {
		stream := service.NewCommentStream(zerolog.Nop())
		updates, release := stream.Subscribe(postID)

		assert.Equal(t, 1, stream.SubscriberCount(postID))

		release()
		release()

		_, open := <-updates
		assert.False(t, open)
		assert.Equal(t, 0, stream.SubscriberCount(postID))

		// Publishing after release must not panic.
		stream.Publish(postID, nil)
	})
}
