package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portfolio-api/internal/domain"
)

// CommentStream fans out the full comment set of a post to its live
// subscribers. Every successful write republishes the store's current set,
// so subscribers always replace their working copy wholesale.
type CommentStream struct {
	mu sync.RWMutex
	// map[postID] map[subscriberID] channel
	subs map[uuid.UUID]map[string]chan []domain.Comment
	log  zerolog.Logger
}

func NewCommentStream(log zerolog.Logger) *CommentStream {
	return &CommentStream{
		subs: make(map[uuid.UUID]map[string]chan []domain.Comment),
		log:  log.With().Str("component", "comment_stream").Logger(),
	}
}

// Subscribe registers a listener for one post. The returned release func is
// safe to call more than once; the channel is closed on release.
func (s *CommentStream) Subscribe(postID uuid.UUID) (<-chan []domain.Comment, func()) {
	ch := make(chan []domain.Comment, 1)
	subID := uuid.NewString()

	s.mu.Lock()
	if s.subs[postID] == nil {
		s.subs[postID] = make(map[string]chan []domain.Comment)
	}
	s.subs[postID][subID] = ch
	s.mu.Unlock()

	s.log.Debug().Str("post_id", postID.String()).Msg("subscriber attached")

	var once sync.Once
	release := func() {
		once.Do(func() {
			s.mu.Lock()
			if postSubs, ok := s.subs[postID]; ok {
				delete(postSubs, subID)
				if len(postSubs) == 0 {
					delete(s.subs, postID)
				}
			}
			s.mu.Unlock()
			close(ch)
			s.log.Debug().Str("post_id", postID.String()).Msg("subscriber released")
		})
	}

	return ch, release
}

// Publish replaces each subscriber's pending update with the latest set.
// A slow subscriber never blocks the writer.
func (s *CommentStream) Publish(postID uuid.UUID, comments []domain.Comment) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subs[postID] {
		select {
		case ch <- comments:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- comments:
			default:
			}
		}
	}
}

// SubscriberCount reports active listeners for a post.
func (s *CommentStream) SubscriberCount(postID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs[postID])
}
