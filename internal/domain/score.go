package domain

import "time"

// Score is one judge's point entry for one player on one criterion in one
// round. At most one row exists per (player, judge, criterion, round) tuple;
// re-entering points overwrites the previous value.
type Score struct {
	ID          uint      `json:"id"`
	PlayerID    string    `json:"playerId"`
	JudgeID     string    `json:"judgeId"`
	CriterionID string    `json:"criterionId"`
	Round       RoundType `json:"round"`
	Points      int       `json:"points"`
	EnteredBy   string    `json:"enteredBy"`
	EnteredAt   time.Time `json:"enteredAt"`
}
