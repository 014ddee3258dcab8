package domain

import "time"

// CompetitionInfo is the singleton record describing the competition itself,
// maintained by admins and shown on the public landing page.
type CompetitionInfo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	MaxPlayers  int       `json:"maxPlayers"`
	Status      string    `json:"status"`
	Theme       string    `json:"theme"`
	PrizePool   string    `json:"prizePool"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CompetitionSummary is the public payload: the info record enriched with
// live player/round counts and the position of the round in progress.
type CompetitionSummary struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Theme        string `json:"theme"`
	PrizePool    string `json:"prizePool"`
	TotalPlayers int64  `json:"totalPlayers"`
	TotalRounds  int    `json:"totalRounds"`
	CurrentRound int    `json:"currentRound"`
}
