package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCompetitionInfoNotFound = errors.New("competition info not found")

// CompetitionInfo is a singleton row; every write targets id 1.
type CompetitionInfo struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	StartDate   string
	EndDate     string
	MaxPlayers  int
	Status      string
	Theme       string
	PrizePool   string
	UpdatedAt   time.Time
}

func (CompetitionInfo) TableName() string {
	return "competition_info"
}

const competitionInfoID = 1

type CompetitionDAO struct {
	db *gorm.DB
}

func NewCompetitionDAO(db *gorm.DB) *CompetitionDAO {
	return &CompetitionDAO{
		db: db,
	}
}

func (d *CompetitionDAO) Find(ctx context.Context) (CompetitionInfo, error) {
	var info CompetitionInfo

	result := d.db.WithContext(ctx).First(&info, "id = ?", competitionInfoID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CompetitionInfo{}, ErrCompetitionInfoNotFound
		}

		return CompetitionInfo{}, result.Error
	}

	return info, nil
}

func (d *CompetitionDAO) Upsert(ctx context.Context, info CompetitionInfo) error {
	info.ID = competitionInfoID
	info.UpdatedAt = time.Now().UTC()

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "start_date", "end_date",
			"max_players", "status", "theme", "prize_pool", "updated_at",
		}),
	}).Create(&info)

	return result.Error
}
