package response

import (
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
)

type LoginResponse struct {
	Token                 string       `json:"token"`
	Admin                 domain.Admin `json:"admin"`
	RequirePasswordChange bool         `json:"requirePasswordChange"`
}

type PlayerListResponse struct {
	Players []domain.Player `json:"players"`
	Total   int64           `json:"total"`
}

type RosterUploadResponse struct {
	Added   int   `json:"added"`
	Updated int   `json:"updated"`
	Total   int64 `json:"total"`
}

type ScoreSheetResponse struct {
	Round  domain.RoundType  `json:"round"`
	Scores domain.ScoreSheet `json:"scores"`
}

type ResultsResponse struct {
	Published bool                  `json:"published"`
	Results   []domain.PlayerResult `json:"results"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
