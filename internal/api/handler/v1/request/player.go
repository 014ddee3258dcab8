package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PlayerRequest struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	IGN             string `json:"minecraftUsername"`
	DiscordUsername string `json:"discordUsername"`
	Team            string `json:"team"`
	Status          string `json:"status"`
}

func (req *PlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.IGN, validation.Length(0, 100)),
		validation.Field(&req.Status, validation.In("", "active", "inactive")),
	)
}
