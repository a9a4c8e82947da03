package mockdata

import (
	"time"

	"github.com/techfolks/techfolks/models"
)

// Contests returns the static contest schedule.
func Contests() []models.Contest {
	base := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	return []models.Contest{
		{
			ID:           1,
			Title:        "TechFolks Round #42",
			Status:       "finished",
			StartTime:    base,
			EndTime:      base.Add(2 * time.Hour),
			Participants: 1834,
			ProblemCount: 6,
		},
		{
			ID:           2,
			Title:        "TechFolks Round #43",
			Status:       "running",
			StartTime:    base.AddDate(0, 1, 0),
			EndTime:      base.AddDate(0, 1, 0).Add(2 * time.Hour),
			Participants: 2011,
			ProblemCount: 6,
		},
		{
			ID:           3,
			Title:        "Summer Marathon",
			Status:       "upcoming",
			StartTime:    base.AddDate(0, 2, 0),
			EndTime:      base.AddDate(0, 2, 7),
			Participants: 0,
			ProblemCount: 12,
		},
	}
}
