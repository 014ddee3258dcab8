package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting rows are narrow key/value pairs so new flags need no migration.
type Setting struct {
	Key       string `gorm:"primaryKey;column:setting_key"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

type SettingDAO struct {
	db *gorm.DB
}

func NewSettingDAO(db *gorm.DB) *SettingDAO {
	return &SettingDAO{
		db: db,
	}
}

func (d *SettingDAO) FindAll(ctx context.Context) ([]Setting, error) {
	var settings []Setting

	result := d.db.WithContext(ctx).Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

func (d *SettingDAO) Upsert(ctx context.Context, setting Setting) error {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting)

	return result.Error
}

// UpsertAll writes a batch of settings in one transaction so coupled flags
// (finalsEnabled + qualificationLocked) never persist half-applied.
func (d *SettingDAO) UpsertAll(ctx context.Context, settings []Setting) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range settings {
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "setting_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&s)
			if result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}
