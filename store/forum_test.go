package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/techfolks/techfolks/models"
)

func newPost(id, groupID int, pinned bool, createdAt time.Time) models.Post {
	return models.Post{
		ID:         id,
		GroupID:    groupID,
		Title:      "post",
		Content:    "content",
		AuthorID:   1,
		AuthorName: "alice",
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
		IsPinned:   pinned,
		Tags:       []string{"go"},
	}
}

func newReply(id int) models.Reply {
	now := time.Now()
	return models.Reply{
		ID:         id,
		Content:    "reply",
		AuthorID:   2,
		AuthorName: "bob",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestAddPost(t *testing.T) {
	s := NewForumStore()

	ok := s.AddPost(newPost(1, 5, false, time.Now()))
	assert.True(t, ok)

	got, found := s.Post(1)
	assert.True(t, found)
	assert.Equal(t, 5, got.GroupID)
}

func TestAddPost_DuplicateIDRejected(t *testing.T) {
	s := NewForumStore()

	assert.True(t, s.AddPost(newPost(1, 5, false, time.Now())))
	assert.False(t, s.AddPost(newPost(1, 9, true, time.Now())))

	got, found := s.Post(1)
	assert.True(t, found)
	assert.Equal(t, 5, got.GroupID)
}

func TestGetPost_NotFound(t *testing.T) {
	s := NewForumStore()

	_, found := s.Post(42)
	assert.False(t, found)
}

func TestUpdatePost_ChangesOnlyGivenFields(t *testing.T) {
	s := NewForumStore()
	created := time.Now().Add(-time.Hour)
	s.AddPost(newPost(1, 5, false, created))
	s.AddPost(newPost(2, 5, false, created))

	title := "X"
	s.UpdatePost(1, PostUpdate{Title: &title})

	got, _ := s.Post(1)
	assert.Equal(t, "X", got.Title)
	assert.Equal(t, "content", got.Content)
	assert.Equal(t, 5, got.GroupID)
	assert.False(t, got.IsPinned)
	assert.True(t, got.UpdatedAt.After(created))

	other, _ := s.Post(2)
	assert.Equal(t, "post", other.Title)
	assert.True(t, other.UpdatedAt.Equal(created))
}

func TestUpdatePost_AbsentIDIsNoop(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))

	title := "X"
	s.UpdatePost(99, PostUpdate{Title: &title})

	got, _ := s.Post(1)
	assert.Equal(t, "post", got.Title)
}

func TestDeletePost_RemovesReplies(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))
	s.AddReply(1, newReply(10))
	s.AddReply(1, newReply(11))

	s.DeletePost(1)

	_, found := s.Post(1)
	assert.False(t, found)
	assert.Empty(t, s.Replies(1))

	// Idempotent
	s.DeletePost(1)
	assert.Empty(t, s.Replies(1))
}

func TestAddReply_MaintainsCounter(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))

	assert.True(t, s.AddReply(1, newReply(10)))
	assert.True(t, s.AddReply(1, newReply(11)))

	got, _ := s.Post(1)
	assert.Equal(t, 2, got.RepliesCount)
	assert.Len(t, s.Replies(1), 2)
}

func TestAddReply_AbsentPostRejected(t *testing.T) {
	s := NewForumStore()

	ok := s.AddReply(7, newReply(10))

	assert.False(t, ok)
	assert.Empty(t, s.Replies(7))
}

func TestAddReply_SetsBackReference(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))

	reply := newReply(10)
	reply.PostID = 999
	s.AddReply(1, reply)

	seq := s.Replies(1)
	assert.Len(t, seq, 1)
	assert.Equal(t, 1, seq[0].PostID)
}

func TestDeleteReply(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))
	s.AddReply(1, newReply(10))
	s.AddReply(1, newReply(11))

	s.DeleteReply(1, 10)

	seq := s.Replies(1)
	assert.Len(t, seq, 1)
	assert.Equal(t, 11, seq[0].ID)

	got, _ := s.Post(1)
	assert.Equal(t, 1, got.RepliesCount)
}

func TestDeleteReply_AbsentPairLeavesCounter(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))
	s.AddReply(1, newReply(10))

	s.DeleteReply(1, 999)
	s.DeleteReply(42, 10)

	got, _ := s.Post(1)
	assert.Equal(t, 1, got.RepliesCount)
	assert.Len(t, s.Replies(1), 1)
}

func TestDeleteReply_CounterNeverNegative(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))
	s.AddReply(1, newReply(10))

	s.DeleteReply(1, 10)
	s.DeleteReply(1, 10)
	s.DeleteReply(1, 11)

	got, _ := s.Post(1)
	assert.Equal(t, 0, got.RepliesCount)
}

func TestPostsByGroup_PinnedFirstThenRecency(t *testing.T) {
	s := NewForumStore()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)

	s.AddPost(newPost(1, 5, false, t1))
	s.AddPost(newPost(2, 5, true, t0))
	s.AddPost(newPost(3, 5, false, t2))
	s.AddPost(newPost(4, 9, true, t2))

	got := s.PostsByGroup(5)

	ids := make([]int, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	// Pinned post 2 first despite the earliest timestamp, then the
	// non-pinned tier newest first. Post 4 belongs to another group.
	assert.Equal(t, []int{2, 3, 1}, ids)
}

func TestPostsByGroup_StableOnEqualTimestamps(t *testing.T) {
	s := NewForumStore()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.AddPost(newPost(1, 5, false, ts))
	s.AddPost(newPost(2, 5, false, ts))
	s.AddPost(newPost(3, 5, false, ts))

	got := s.PostsByGroup(5)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
	assert.Equal(t, 3, got[2].ID)
}

func TestPostsByGroup_EmptyGroup(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))

	assert.Empty(t, s.PostsByGroup(8))
}

func TestQueryResultsAreSnapshots(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))
	s.AddReply(1, newReply(10))

	posts := s.PostsByGroup(5)
	posts[0].Title = "mutated"
	posts[0].Tags[0] = "mutated"

	replies := s.Replies(1)
	replies[0].Content = "mutated"

	got, _ := s.Post(1)
	assert.Equal(t, "post", got.Title)
	assert.Equal(t, []string{"go"}, got.Tags)
	assert.Equal(t, "reply", s.Replies(1)[0].Content)
}

func TestIncrementViews(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))

	s.IncrementViews(1)
	s.IncrementViews(1)
	s.IncrementViews(99) // absent: no-op

	got, _ := s.Post(1)
	assert.Equal(t, 2, got.Views)
}

func TestCounts(t *testing.T) {
	s := NewForumStore()
	s.AddPost(newPost(1, 5, false, time.Now()))
	s.AddPost(newPost(2, 5, false, time.Now()))
	s.AddReply(1, newReply(10))
	s.AddReply(2, newReply(11))
	s.AddReply(2, newReply(12))

	posts, replies := s.Counts()
	assert.Equal(t, 2, posts)
	assert.Equal(t, 3, replies)
}
