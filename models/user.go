package models

import "time"

// User represents a platform account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	AvatarURL    string    `json:"avatar_url"`
	Country      string    `json:"country"`
	Rating       int       `json:"rating"`
	MaxRating    int       `json:"max_rating"`
	Rank         string    `json:"rank"`
	SolvedCount  int       `json:"solved_count"`
	CreatedAt    time.Time `json:"created_at"`
}
