package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type JudgeRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio"`
	State     string `json:"state"`
}

func (req *JudgeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.State, validation.In("", "inactive", "active", "deleted")),
	)
}
