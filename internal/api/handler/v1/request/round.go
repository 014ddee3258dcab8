package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RoundRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Theme        string `json:"theme"`
	TimeLimit    string `json:"timeLimit"`
	Status       string `json:"status"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	DisplayOrder int    `json:"displayOrder"`
}

func (req *RoundRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Status, validation.In("", "upcoming", "active", "completed")),
	)
}
