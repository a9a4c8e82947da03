package models

import "time"

// Post represents a top-level discussion entry within a group.
type Post struct {
	ID           int       `json:"id"`
	GroupID      int       `json:"group_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	AuthorID     int       `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	RepliesCount int       `json:"replies_count"`
	Views        int       `json:"views"`
	IsPinned     bool      `json:"is_pinned"`
	IsLocked     bool      `json:"is_locked"`
	Tags         []string  `json:"tags"`
}
