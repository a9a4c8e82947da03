package models

// Problem represents an entry in the judge's problem catalogue.
type Problem struct {
	ID             int      `json:"id"`
	Code           string   `json:"code"`
	Title          string   `json:"title"`
	Difficulty     string   `json:"difficulty"`
	Tags           []string `json:"tags"`
	TimeLimitMS    int      `json:"time_limit_ms"`
	MemoryLimitMB  int      `json:"memory_limit_mb"`
	SolvedCount    int      `json:"solved_count"`
	AcceptanceRate float64  `json:"acceptance_rate"`
}
