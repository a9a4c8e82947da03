package mockdata

import (
	"time"

	"github.com/techfolks/techfolks/models"
	"github.com/techfolks/techfolks/store"
)

// SeedForum loads the demo discussion content into s and returns the
// highest post and reply ids used, so the HTTP layer can continue the id
// sequences from there.
func SeedForum(s *store.ForumStore) (maxPostID, maxReplyID int) {
	t0 := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	accepted := true

	posts := []models.Post{
		{
			ID:         1,
			GroupID:    1,
			Title:      "Welcome to the Algorithms group",
			Content:    "Read the group rules before posting.",
			AuthorID:   2,
			AuthorName: "admin",
			CreatedAt:  t0,
			UpdatedAt:  t0,
			IsPinned:   true,
			IsLocked:   true,
			Tags:       []string{"announcement"},
		},
		{
			ID:         2,
			GroupID:    1,
			Title:      "How to approach DP problems?",
			Content:    "I keep getting stuck on state design. Any advice?",
			AuthorID:   1,
			AuthorName: "testuser",
			CreatedAt:  t0.Add(26 * time.Hour),
			UpdatedAt:  t0.Add(26 * time.Hour),
			Tags:       []string{"dp", "question"},
		},
		{
			ID:         3,
			GroupID:    2,
			Title:      "Round #43 editorial discussion",
			Content:    "Post your alternative solutions here.",
			AuthorID:   2,
			AuthorName: "admin",
			CreatedAt:  t0.Add(48 * time.Hour),
			UpdatedAt:  t0.Add(48 * time.Hour),
			Tags:       []string{"contest", "editorial"},
		},
	}
	for _, p := range posts {
		s.AddPost(p)
		if p.ID > maxPostID {
			maxPostID = p.ID
		}
	}

	replies := []models.Reply{
		{
			ID:         1,
			PostID:     2,
			Content:    "Start from the recurrence, then worry about memory.",
			AuthorID:   2,
			AuthorName: "admin",
			CreatedAt:  t0.Add(27 * time.Hour),
			UpdatedAt:  t0.Add(27 * time.Hour),
			IsAccepted: &accepted,
		},
		{
			ID:         2,
			PostID:     2,
			Content:    "Practicing classic problems helped me a lot.",
			AuthorID:   1,
			AuthorName: "testuser",
			CreatedAt:  t0.Add(30 * time.Hour),
			UpdatedAt:  t0.Add(30 * time.Hour),
		},
	}
	for _, r := range replies {
		s.AddReply(r.PostID, r)
		if r.ID > maxReplyID {
			maxReplyID = r.ID
		}
	}

	return maxPostID, maxReplyID
}
