package models

import "time"

// Contest represents a scheduled or finished competition round.
type Contest struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"` // upcoming, running, finished
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Participants int       `json:"participants"`
	ProblemCount int       `json:"problem_count"`
}
