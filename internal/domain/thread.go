package domain

import (
	"sort"

	"github.com/google/uuid"
)

// MaxReplyDepth is the deepest nesting level a reply may be attached at.
// A top-level comment has depth 0; replying to a comment at depth
// MaxReplyDepth is rejected.
const MaxReplyDepth = 3

// Thread is the render-ready grouping of one post's comments: top-level
// comments in order, plus each comment's direct replies.
type Thread struct {
	TopLevel        []Comment               `json:"top_level"`
	RepliesByParent map[uuid.UUID][]Comment `json:"replies_by_parent"`

	parentOf map[uuid.UUID]*uuid.UUID
}

// BuildThread partitions a flat set of comments belonging to one post into
// top-level comments and a parent-id -> replies mapping. It is a pure
// function of its input: no I/O, deterministic given identical timestamps
// (ties are broken by id ascending).
//
// A reply whose parent id does not resolve to a comment in the input (the
// parent was hard-deleted) is surfaced as top-level rather than dropped.
func BuildThread(comments []Comment) Thread {
	byID := make(map[uuid.UUID]struct{}, len(comments))
	for _, c := range comments {
		byID[c.ID] = struct{}{}
	}

	t := Thread{
		TopLevel:        []Comment{},
		RepliesByParent: make(map[uuid.UUID][]Comment),
		parentOf:        make(map[uuid.UUID]*uuid.UUID, len(comments)),
	}

	for _, c := range comments {
		if c.ParentID == nil {
			t.TopLevel = append(t.TopLevel, c)
			t.parentOf[c.ID] = nil
			continue
		}
		if _, ok := byID[*c.ParentID]; !ok {
			// Orphaned reply: keep it visible at the top level.
			t.TopLevel = append(t.TopLevel, c)
			t.parentOf[c.ID] = nil
			continue
		}
		t.RepliesByParent[*c.ParentID] = append(t.RepliesByParent[*c.ParentID], c)
		t.parentOf[c.ID] = c.ParentID
	}

	sortComments(t.TopLevel)
	for id := range t.RepliesByParent {
		sortComments(t.RepliesByParent[id])
	}

	return t
}

func sortComments(cs []Comment) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].CreatedAt.Equal(cs[j].CreatedAt) {
			return cs[i].ID.String() < cs[j].ID.String()
		}
		return cs[i].CreatedAt.Before(cs[j].CreatedAt)
	})
}

// Depth returns the number of hops from the comment to its nearest top-level
// ancestor. Unknown ids report depth 0.
func (t Thread) Depth(id uuid.UUID) int {
	depth := 0
	cur, ok := t.parentOf[id]
	if !ok {
		return 0
	}
	for cur != nil && depth <= len(t.parentOf) {
		depth++
		cur = t.parentOf[*cur]
	}
	return depth
}

// CanReplyTo reports whether a new reply may be attached beneath the given
// comment. Computed from the reconstructed thread, not from the store.
func (t Thread) CanReplyTo(id uuid.UUID) bool {
	if _, ok := t.parentOf[id]; !ok {
		return false
	}
	return t.Depth(id) < MaxReplyDepth
}

// DeletedPlaceholder stands in for a deleted comment's content in public
// views. The stored content survives for the moderation dashboard only.
const DeletedPlaceholder = "[deleted]"

// ThreadView is the payload pushed to comment-section subscribers: the
// reconstructed thread plus the visible comment count.
type ThreadView struct {
	Thread
	CommentCount int `json:"comment_count"`
}

// NewThreadView builds the render-ready view of one post's comment set.
// Deleted comments keep their place in the thread so replies stay attached,
// but their content and author identity are redacted before they leave the
// server.
func NewThreadView(comments []Comment) ThreadView {
	redacted := make([]Comment, len(comments))
	for i, c := range comments {
		if c.Deleted {
			c.Content = DeletedPlaceholder
			c.Author = CommentAuthor{}
			c.DeletedBy = nil
		}
		redacted[i] = c
	}

	return ThreadView{
		Thread:       BuildThread(redacted),
		CommentCount: CommentCount(comments),
	}
}

// CommentCount is the number of non-deleted comments across the whole set,
// replies included.
func CommentCount(comments []Comment) int {
	n := 0
	for _, c := range comments {
		if !c.Deleted {
			n++
		}
	}
	return n
}
