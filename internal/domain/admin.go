package domain

import "time"

const (
	AdminRoleMain   = "main"
	AdminRoleNormal = "normal"
)

type Admin struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Username              string     `json:"username"`
	Password              string     `json:"-"`
	Email                 string     `json:"email"`
	Role                  string     `json:"role"`
	Status                string     `json:"status"`
	RequirePasswordChange bool       `json:"requirePasswordChange"`
	LastLogin             *time.Time `json:"lastLogin"`
	CreatedAt             time.Time  `json:"createdAt"`
}
