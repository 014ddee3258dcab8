package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrRoundNotFound = errors.New("round not found")

type Round struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Description  string
	Theme        string
	TimeLimit    string
	Status       string `gorm:"not null;default:upcoming"`
	StartDate    string
	EndDate      string
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
}

type RoundDAO struct {
	db *gorm.DB
}

func NewRoundDAO(db *gorm.DB) *RoundDAO {
	return &RoundDAO{
		db: db,
	}
}

func (d *RoundDAO) FindAll(ctx context.Context) ([]Round, error) {
	var rounds []Round

	result := d.db.WithContext(ctx).Order("display_order").Find(&rounds)
	if result.Error != nil {
		return nil, result.Error
	}

	return rounds, nil
}

func (d *RoundDAO) FindByID(ctx context.Context, id string) (Round, error) {
	var round Round

	result := d.db.WithContext(ctx).First(&round, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Round{}, ErrRoundNotFound
		}

		return Round{}, result.Error
	}

	return round, nil
}

func (d *RoundDAO) Insert(ctx context.Context, round Round) (Round, error) {
	result := d.db.WithContext(ctx).Create(&round)
	if result.Error != nil {
		return Round{}, result.Error
	}

	return round, nil
}

func (d *RoundDAO) Update(ctx context.Context, round Round) (Round, error) {
	result := d.db.WithContext(ctx).
		Model(&Round{ID: round.ID}).
		Updates(map[string]any{
			"name":          round.Name,
			"description":   round.Description,
			"theme":         round.Theme,
			"time_limit":    round.TimeLimit,
			"status":        round.Status,
			"start_date":    round.StartDate,
			"end_date":      round.EndDate,
			"display_order": round.DisplayOrder,
		})
	if result.Error != nil {
		return Round{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Round{}, ErrRoundNotFound
	}

	return d.FindByID(ctx, round.ID)
}

func (d *RoundDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Round{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoundNotFound
	}

	return nil
}
