package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ScoreEntryRequest struct {
	PlayerID    string `json:"playerId"`
	JudgeID     string `json:"judgeId"`
	CriterionID string `json:"criterionId"`
	Points      int    `json:"points"`
}

func (req *ScoreEntryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PlayerID, validation.Required),
		validation.Field(&req.JudgeID, validation.Required),
		validation.Field(&req.CriterionID, validation.Required),
		validation.Field(&req.Points, validation.Min(0)),
	)
}

type SubmitScoresRequest struct {
	Round   string              `json:"round"`
	Entries []ScoreEntryRequest `json:"scores"`
}

func (req *SubmitScoresRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Round, validation.Required, validation.In("qualification", "finals")),
		validation.Field(&req.Entries, validation.Required, validation.Length(1, 0)),
	)
	if err != nil {
		return err
	}

	for _, entry := range req.Entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// SavePlayerSheetRequest carries one player's full grid keyed by judge then
// criterion. Nil cells mean "not scored yet" and are skipped on save.
type SavePlayerSheetRequest struct {
	Round    string                     `json:"round"`
	PlayerID string                     `json:"playerId"`
	Scores   map[string]map[string]*int `json:"allJudgesScores"`
}

func (req *SavePlayerSheetRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Round, validation.Required, validation.In("qualification", "finals")),
		validation.Field(&req.PlayerID, validation.Required),
		validation.Field(&req.Scores, validation.Required),
	)
}
