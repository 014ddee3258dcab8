package domain

import "sort"

// PlayerResult is derived from score rows on every read and never persisted.
type PlayerResult struct {
	PlayerID   string        `json:"playerId"`
	Username   string        `json:"username"`
	TotalScore int           `json:"totalScore"`
	Rank       int           `json:"rank"`
	Rounds     []RoundResult `json:"rounds"`
}

type RoundResult struct {
	Round      RoundType      `json:"round"`
	TotalScore int            `json:"totalScore"`
	Scores     map[string]int `json:"scores"`
}

// ScoreSheet groups raw score rows as playerID -> judgeID -> criterionID -> points.
// This is the shape the score-entry screen reads and writes; it carries no ranking.
type ScoreSheet map[string]map[string]map[string]int

// BuildScoreSheet groups rows for a single round. Rows from other rounds are
// ignored so callers can pass an unfiltered slice.
func BuildScoreSheet(scores []Score, round RoundType) ScoreSheet {
	sheet := make(ScoreSheet)
	for _, s := range scores {
		if s.Round != round {
			continue
		}

		byJudge, ok := sheet[s.PlayerID]
		if !ok {
			byJudge = make(map[string]map[string]int)
			sheet[s.PlayerID] = byJudge
		}

		byCriterion, ok := byJudge[s.JudgeID]
		if !ok {
			byCriterion = make(map[string]int)
			byJudge[s.JudgeID] = byCriterion
		}

		byCriterion[s.CriterionID] = s.Points
	}

	return sheet
}

// JudgeTotal sums one judge's points for a player in a round.
// Criteria the judge has not scored yet contribute 0.
func JudgeTotal(scores []Score, playerID, judgeID string, round RoundType) int {
	total := 0
	for _, s := range scores {
		if s.PlayerID == playerID && s.JudgeID == judgeID && s.Round == round {
			total += s.Points
		}
	}

	return total
}

// GrandTotal sums a player's points across all judges and criteria in a round.
// A player with no rows totals 0; callers that need to distinguish "scored
// zero" from "not yet scored" must check row existence separately.
func GrandTotal(scores []Score, playerID string, round RoundType) int {
	total := 0
	for _, s := range scores {
		if s.PlayerID == playerID && s.Round == round {
			total += s.Points
		}
	}

	return total
}

// Rank orders results by total descending, breaking ties by player ID
// ascending, and assigns dense 1-based ranks. Tied players therefore hold
// distinct adjacent ranks deterministically. A positive topN truncates the
// ranked list.
func Rank(results []PlayerResult, topN int) []PlayerResult {
	ranked := make([]PlayerResult, len(results))
	copy(ranked, results)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}

		return ranked[i].PlayerID < ranked[j].PlayerID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}
