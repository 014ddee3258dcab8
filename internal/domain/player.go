package domain

import "time"

const (
	PlayerStatusActive   = "active"
	PlayerStatusInactive = "inactive"
)

type Player struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	IGN             string    `json:"ign"`
	DiscordUsername string    `json:"discordUsername"`
	Team            string    `json:"team"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}
