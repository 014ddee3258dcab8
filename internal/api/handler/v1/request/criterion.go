package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CriterionRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MaxPoints   int      `json:"maxPoints"`
	Rounds      []string `json:"rounds"`
}

func (req *CriterionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.MaxPoints, validation.Required, validation.Min(1)),
		validation.Field(&req.Rounds, validation.Each(validation.In("qualification", "finals"))),
	)
}

type ReorderCriteriaRequest struct {
	OrderedIDs []string `json:"orderedIds"`
}

func (req *ReorderCriteriaRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.OrderedIDs, validation.Required, validation.Length(1, 0)),
	)
}
