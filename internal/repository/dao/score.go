package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Score holds one point entry per (player, judge, criterion, round) tuple.
// The unique index backs the atomic upsert; concurrent writers targeting the
// same tuple resolve at the database rather than check-then-act in Go.
type Score struct {
	ID          uint      `gorm:"primaryKey"`
	PlayerID    string    `gorm:"not null;uniqueIndex:idx_scores_entry"`
	JudgeID     string    `gorm:"not null;uniqueIndex:idx_scores_entry"`
	CriterionID string    `gorm:"not null;uniqueIndex:idx_scores_entry"`
	Round       string    `gorm:"not null;uniqueIndex:idx_scores_entry;index"`
	Points      int       `gorm:"not null"`
	EnteredBy   string    `gorm:"not null"`
	EnteredAt   time.Time `gorm:"not null"`
}

type ScoreDAO struct {
	db *gorm.DB
}

func NewScoreDAO(db *gorm.DB) *ScoreDAO {
	return &ScoreDAO{
		db: db,
	}
}

func (d *ScoreDAO) FindByRound(ctx context.Context, round string) ([]Score, error) {
	var scores []Score

	result := d.db.WithContext(ctx).Where("round = ?", round).Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}

	return scores, nil
}

func (d *ScoreDAO) FindByPlayerAndRound(ctx context.Context, playerID, round string) ([]Score, error) {
	var scores []Score

	result := d.db.WithContext(ctx).
		Where("player_id = ? AND round = ?", playerID, round).
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}

	return scores, nil
}

// Upsert inserts the entry or overwrites points, entered_by and entered_at
// for an existing tuple in a single INSERT ... ON CONFLICT statement.
func (d *ScoreDAO) Upsert(ctx context.Context, score Score) (Score, error) {
	score.EnteredAt = time.Now().UTC()

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "player_id"},
			{Name: "judge_id"},
			{Name: "criterion_id"},
			{Name: "round"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"points", "entered_by", "entered_at"}),
	}).Create(&score)
	if result.Error != nil {
		return Score{}, result.Error
	}

	return score, nil
}

func (d *ScoreDAO) DeleteByPlayer(ctx context.Context, playerID string) error {
	return d.db.WithContext(ctx).Delete(&Score{}, "player_id = ?", playerID).Error
}
