package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildScoreSheet(t *testing.T) {
	scores := []Score{
		{PlayerID: "p1", JudgeID: "j1", CriterionID: "c1", Round: RoundQualification, Points: 15},
		{PlayerID: "p1", JudgeID: "j1", CriterionID: "c2", Round: RoundQualification, Points: 18},
		{PlayerID: "p1", JudgeID: "j2", CriterionID: "c1", Round: RoundQualification, Points: 12},
		{PlayerID: "p2", JudgeID: "j1", CriterionID: "c1", Round: RoundQualification, Points: 20},
		{PlayerID: "p1", JudgeID: "j1", CriterionID: "c1", Round: RoundFinals, Points: 99},
	}

	sheet := BuildScoreSheet(scores, RoundQualification)

	assert.Equal(t, 15, sheet["p1"]["j1"]["c1"])
	assert.Equal(t, 18, sheet["p1"]["j1"]["c2"])
	assert.Equal(t, 12, sheet["p1"]["j2"]["c1"])
	assert.Equal(t, 20, sheet["p2"]["j1"]["c1"])

	// Finals rows must not leak into the qualification sheet.
	assert.Len(t, sheet["p1"]["j1"], 2)
}

func TestJudgeAndGrandTotals(t *testing.T) {
	scores := []Score{
		{PlayerID: "p1", JudgeID: "j1", CriterionID: "c1", Round: RoundFinals, Points: 10},
		{PlayerID: "p1", JudgeID: "j1", CriterionID: "c2", Round: RoundFinals, Points: 7},
		{PlayerID: "p1", JudgeID: "j2", CriterionID: "c1", Round: RoundFinals, Points: 9},
		{PlayerID: "p1", JudgeID: "j1", CriterionID: "c1", Round: RoundQualification, Points: 100},
		{PlayerID: "p2", JudgeID: "j1", CriterionID: "c1", Round: RoundFinals, Points: 3},
	}

	assert.Equal(t, 17, JudgeTotal(scores, "p1", "j1", RoundFinals))
	assert.Equal(t, 9, JudgeTotal(scores, "p1", "j2", RoundFinals))
	assert.Equal(t, 0, JudgeTotal(scores, "p1", "j3", RoundFinals))

	// Grand total is the sum of the per-judge totals.
	assert.Equal(t, 26, GrandTotal(scores, "p1", RoundFinals))
	assert.Equal(t, 0, GrandTotal(scores, "unknown", RoundFinals))
}

func TestRank(t *testing.T) {
	tests := []struct {
		name    string
		results []PlayerResult
		topN    int
		wantIDs []string
		wantRks []int
	}{
		{
			name: "orders by total descending",
			results: []PlayerResult{
				{PlayerID: "a", TotalScore: 10},
				{PlayerID: "b", TotalScore: 30},
				{PlayerID: "c", TotalScore: 20},
			},
			wantIDs: []string{"b", "c", "a"},
			wantRks: []int{1, 2, 3},
		},
		{
			name: "ties break by player id ascending with distinct ranks",
			results: []PlayerResult{
				{PlayerID: "zed", TotalScore: 25},
				{PlayerID: "amy", TotalScore: 25},
				{PlayerID: "mia", TotalScore: 25},
			},
			wantIDs: []string{"amy", "mia", "zed"},
			wantRks: []int{1, 2, 3},
		},
		{
			name: "positive topN truncates after ranking",
			results: []PlayerResult{
				{PlayerID: "a", TotalScore: 1},
				{PlayerID: "b", TotalScore: 2},
				{PlayerID: "c", TotalScore: 3},
			},
			topN:    2,
			wantIDs: []string{"c", "b"},
			wantRks: []int{1, 2},
		},
		{
			name:    "empty input stays empty",
			results: nil,
			wantIDs: []string{},
			wantRks: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(tt.results, tt.topN)

			gotIDs := make([]string, 0, len(ranked))
			gotRks := make([]int, 0, len(ranked))
			for _, r := range ranked {
				gotIDs = append(gotIDs, r.PlayerID)
				gotRks = append(gotRks, r.Rank)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
			assert.Equal(t, tt.wantRks, gotRks)
		})
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	original := []PlayerResult{
		{PlayerID: "a", TotalScore: 1},
		{PlayerID: "b", TotalScore: 2},
	}

	Rank(original, 0)

	assert.Equal(t, "a", original[0].PlayerID)
	assert.Equal(t, 0, original[0].Rank)
}
