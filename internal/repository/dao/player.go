package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPlayerNotFound = errors.New("player not found")

type Player struct {
	ID              string `gorm:"primaryKey"`
	Username        string `gorm:"not null"`
	IGN             string `gorm:"column:ign;not null"`
	DiscordUsername string
	Team            string
	Status          string    `gorm:"not null;default:active;index"`
	CreatedAt       time.Time `gorm:"not null"`
}

type PlayerDAO struct {
	db *gorm.DB
}

func NewPlayerDAO(db *gorm.DB) *PlayerDAO {
	return &PlayerDAO{
		db: db,
	}
}

func (d *PlayerDAO) FindByID(ctx context.Context, id string) (Player, error) {
	var player Player

	result := d.db.WithContext(ctx).First(&player, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Player{}, ErrPlayerNotFound
		}

		return Player{}, result.Error
	}

	return player, nil
}

// FindActive lists active players ordered by registration date.
func (d *PlayerDAO) FindActive(ctx context.Context, limit, offset int) ([]Player, error) {
	var players []Player

	result := d.db.WithContext(ctx).
		Where("status = ?", "active").
		Order("created_at").
		Limit(limit).
		Offset(offset).
		Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

// FindActiveByScore lists active players ordered by their qualification-round
// total, highest first. Players without score rows sort last with a total of 0.
func (d *PlayerDAO) FindActiveByScore(ctx context.Context, round string, limit, offset int) ([]Player, error) {
	var players []Player

	subquery := d.db.
		Table("scores").
		Select("player_id, SUM(points) AS total_points").
		Where("round = ?", round).
		Group("player_id")

	result := d.db.WithContext(ctx).
		Table("players").
		Joins("LEFT JOIN (?) totals ON totals.player_id = players.id", subquery).
		Where("players.status = ?", "active").
		Order("COALESCE(totals.total_points, 0) DESC").
		Limit(limit).
		Offset(offset).
		Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (d *PlayerDAO) CountActive(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Player{}).
		Where("status = ?", "active").
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *PlayerDAO) Insert(ctx context.Context, player Player) (Player, error) {
	result := d.db.WithContext(ctx).Create(&player)
	if result.Error != nil {
		return Player{}, result.Error
	}

	return player, nil
}

func (d *PlayerDAO) Update(ctx context.Context, player Player) (Player, error) {
	result := d.db.WithContext(ctx).
		Model(&Player{ID: player.ID}).
		Updates(map[string]any{
			"username":         player.Username,
			"ign":              player.IGN,
			"discord_username": player.DiscordUsername,
			"team":             player.Team,
			"status":           player.Status,
		})
	if result.Error != nil {
		return Player{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Player{}, ErrPlayerNotFound
	}

	return d.FindByID(ctx, player.ID)
}

// Upsert inserts the player or overwrites its mutable fields in one
// statement. Used by the roster upload path.
func (d *PlayerDAO) Upsert(ctx context.Context, player Player) (Player, error) {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "ign", "discord_username", "team", "status"}),
	}).Create(&player)
	if result.Error != nil {
		return Player{}, result.Error
	}

	return player, nil
}

func (d *PlayerDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Player{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}
