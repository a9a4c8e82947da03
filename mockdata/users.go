// Package mockdata holds the canned fixtures served by the mock API.
// Everything here is static demo content; nothing is fetched or persisted.
package mockdata

import (
	"time"

	"github.com/techfolks/techfolks/models"
	"github.com/techfolks/techfolks/utils"
)

// DemoPassword is the plaintext password shared by all seeded accounts.
const DemoPassword = "password123"

// Users returns the seeded demo accounts. Hashes are computed once at
// boot so login still goes through the real bcrypt comparison.
func Users() []models.User {
	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		panic(err)
	}

	joined := time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC)
	return []models.User{
		{
			ID:           1,
			Username:     "testuser",
			Email:        "testuser@techfolks.dev",
			PasswordHash: hash,
			FullName:     "Test User",
			Country:      "IN",
			Rating:       1742,
			MaxRating:    1801,
			Rank:         "Expert",
			SolvedCount:  284,
			CreatedAt:    joined,
		},
		{
			ID:           2,
			Username:     "admin",
			Email:        "admin@techfolks.dev",
			PasswordHash: hash,
			FullName:     "Site Admin",
			Country:      "US",
			Rating:       2105,
			MaxRating:    2190,
			Rank:         "Master",
			SolvedCount:  612,
			CreatedAt:    joined.AddDate(0, -8, 0),
		},
	}
}
