package store

import (
	"sort"
	"sync"
	"time"

	"github.com/techfolks/techfolks/models"
)

// ForumStore is the in-memory registry of discussion posts and their
// replies. State is process-local and lives for the lifetime of the
// process; there is no persistence. Every operation holds the single
// store lock, so the reply index and the replies_count counters always
// change as one unit.
//
// The store never reports errors: mutations on absent ids are no-ops and
// queries on absent ids return empty results. Callers that need to tell
// "not found" from "updated" follow up with a query.
type ForumStore struct {
	mu      sync.RWMutex
	posts   []models.Post
	replies map[int][]models.Reply
}

// NewForumStore creates an empty forum store. One instance is constructed
// at boot and handed to every consumer; there is no package-level state.
func NewForumStore() *ForumStore {
	return &ForumStore{
		replies: make(map[int][]models.Reply),
	}
}

// PostUpdate carries a partial set of post fields for UpdatePost.
// Nil fields are left untouched on the stored post.
type PostUpdate struct {
	Title    *string
	Content  *string
	IsPinned *bool
	IsLocked *bool
	Tags     *[]string
}

// AddPost appends post to the registry. Post ids are assigned by the
// caller; a post whose id is already present is rejected so later lookups
// stay unambiguous.
func (s *ForumStore) AddPost(post models.Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			return false
		}
	}

	post.Tags = cloneTags(post.Tags)
	s.posts = append(s.posts, post)
	return true
}

// UpdatePost merges updates into the post matching id and refreshes its
// UpdatedAt timestamp. Silent no-op when no post matches.
func (s *ForumStore) UpdatePost(id int, updates PostUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := &s.posts[i]
		if updates.Title != nil {
			p.Title = *updates.Title
		}
		if updates.Content != nil {
			p.Content = *updates.Content
		}
		if updates.IsPinned != nil {
			p.IsPinned = *updates.IsPinned
		}
		if updates.IsLocked != nil {
			p.IsLocked = *updates.IsLocked
		}
		if updates.Tags != nil {
			p.Tags = cloneTags(*updates.Tags)
		}
		p.UpdatedAt = time.Now()
		return
	}
}

// DeletePost removes the post matching id together with its entire reply
// sequence, so no orphaned replies stay reachable. Idempotent.
func (s *ForumStore) DeletePost(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			break
		}
	}
	delete(s.replies, id)
}

// AddReply appends reply to the sequence for postID and increments the
// post's RepliesCount. Replies targeting an absent post are rejected and
// not stored; accepting them would leave orphans and desynchronize the
// counter.
func (s *ForumStore) AddReply(postID int, reply models.Reply) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return false
	}

	reply.PostID = postID
	s.replies[postID] = append(s.replies[postID], reply)
	post.RepliesCount = len(s.replies[postID])
	return true
}

// DeleteReply removes the reply matching replyID from the sequence for
// postID and decrements the post's RepliesCount, clamped at zero. No-op
// when the pair does not exist.
func (s *ForumStore) DeleteReply(postID, replyID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.replies[postID]
	removed := false
	for i := range seq {
		if seq[i].ID == replyID {
			s.replies[postID] = append(seq[:i], seq[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return
	}

	if post := s.findPost(postID); post != nil {
		post.RepliesCount--
		if post.RepliesCount < 0 {
			post.RepliesCount = 0
		}
	}
}

// PostsByGroup returns copies of all posts whose GroupID equals groupID,
// pinned posts first, then most recent first within each tier. Ties on
// CreatedAt keep their original relative order (stable sort).
func (s *ForumStore) PostsByGroup(groupID int) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Post, 0)
	for i := range s.posts {
		if s.posts[i].GroupID == groupID {
			result = append(result, clonePost(s.posts[i]))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsPinned != result[j].IsPinned {
			return result[i].IsPinned
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// Post returns a copy of the post matching id and whether it was found.
func (s *ForumStore) Post(id int) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			return clonePost(s.posts[i]), true
		}
	}
	return models.Post{}, false
}

// Replies returns a copy of the ordered reply sequence for postID,
// empty when there are none.
func (s *ForumStore) Replies(postID int) []models.Reply {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq := s.replies[postID]
	result := make([]models.Reply, len(seq))
	copy(result, seq)
	return result
}

// IncrementViews adds one view to the post matching postID; no-op when
// absent. Views never decrease.
func (s *ForumStore) IncrementViews(postID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post := s.findPost(postID); post != nil {
		post.Views++
	}
}

// Counts reports the number of posts and replies currently stored.
func (s *ForumStore) Counts() (posts, replies int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts = len(s.posts)
	for _, seq := range s.replies {
		replies += len(seq)
	}
	return posts, replies
}

// findPost returns a pointer into the posts slice; callers must hold the
// write lock and must not retain the pointer past the critical section.
func (s *ForumStore) findPost(id int) *models.Post {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i]
		}
	}
	return nil
}

// clonePost copies the post including its tags so callers can treat query
// results as private snapshots.
func clonePost(p models.Post) models.Post {
	p.Tags = cloneTags(p.Tags)
	return p
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
