package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CompetitionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	MaxPlayers  int    `json:"maxPlayers"`
	Status      string `json:"status"`
	Theme       string `json:"theme"`
	PrizePool   string `json:"prizePool"`
}

func (req *CompetitionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.MaxPlayers, validation.Min(0)),
		validation.Field(&req.Status, validation.In("", "upcoming", "active", "completed")),
	)
}
