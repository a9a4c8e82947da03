package mockdata

import "github.com/techfolks/techfolks/models"

// Problems returns the static problem catalogue.
func Problems() []models.Problem {
	return []models.Problem{
		{
			ID:             1,
			Code:           "TWOSUM",
			Title:          "Two Sum",
			Difficulty:     "easy",
			Tags:           []string{"arrays", "hashing"},
			TimeLimitMS:    1000,
			MemoryLimitMB:  256,
			SolvedCount:    12842,
			AcceptanceRate: 0.61,
		},
		{
			ID:             2,
			Code:           "LIS",
			Title:          "Longest Increasing Subsequence",
			Difficulty:     "medium",
			Tags:           []string{"dp", "binary-search"},
			TimeLimitMS:    2000,
			MemoryLimitMB:  256,
			SolvedCount:    5321,
			AcceptanceRate: 0.43,
		},
		{
			ID:             3,
			Code:           "MAXFLOW",
			Title:          "Maximum Flow",
			Difficulty:     "hard",
			Tags:           []string{"graphs", "flows"},
			TimeLimitMS:    3000,
			MemoryLimitMB:  512,
			SolvedCount:    987,
			AcceptanceRate: 0.27,
		},
	}
}
