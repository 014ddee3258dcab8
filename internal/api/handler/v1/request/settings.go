package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// UpdateSettingsRequest uses pointers so a PUT can change one flag without
// resetting the others.
type UpdateSettingsRequest struct {
	ResultsPublished    *bool   `json:"resultsPublished"`
	FinalsEnabled       *bool   `json:"finalsEnabled"`
	QualificationLocked *bool   `json:"qualificationLocked"`
	CurrentRound        *string `json:"currentRound"`
}

func (req *UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CurrentRound, validation.In("qualification", "finals")),
	)
}
