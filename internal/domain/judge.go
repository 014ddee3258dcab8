package domain

import "time"

type Judge struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Specialty string      `json:"specialty"`
	Avatar    string      `json:"avatar"`
	Bio       string      `json:"bio"`
	State     ActiveState `json:"state"`
	CreatedAt time.Time   `json:"createdAt"`
}
