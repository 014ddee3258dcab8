package domain

import "time"

// RoundType is the scoring phase a score belongs to.
type RoundType string

const (
	RoundQualification RoundType = "qualification"
	RoundFinals        RoundType = "finals"
)

func (r RoundType) Valid() bool {
	return r == RoundQualification || r == RoundFinals
}

// Round is a display round shown on the public schedule,
// distinct from the scoring phase carried by RoundType.
type Round struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Theme        string    `json:"theme"`
	TimeLimit    string    `json:"timeLimit"`
	Status       string    `json:"status"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}
