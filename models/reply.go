package models

import "time"

// Reply represents a response attached to exactly one post.
// IsAccepted is only meaningful for Q&A style posts; nil means the flag
// does not apply rather than "not accepted".
type Reply struct {
	ID         int       `json:"id"`
	PostID     int       `json:"post_id"`
	Content    string    `json:"content"`
	AuthorID   int       `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	IsAccepted *bool     `json:"is_accepted,omitempty"`
}
