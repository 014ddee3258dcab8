package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrJudgeNotFound = errors.New("judge not found")

// Judge state column: 0 inactive, 1 active, 2 deleted. Deleted judges keep
// their row so score history stays intact.
type Judge struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Specialty string
	Avatar    string
	Bio       string
	State     int16     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
}

const (
	stateInactive int16 = 0
	stateActive   int16 = 1
	stateDeleted  int16 = 2
)

type JudgeDAO struct {
	db *gorm.DB
}

func NewJudgeDAO(db *gorm.DB) *JudgeDAO {
	return &JudgeDAO{
		db: db,
	}
}

// FindAll returns every judge that has not been deleted, ordered by name.
func (d *JudgeDAO) FindAll(ctx context.Context) ([]Judge, error) {
	var judges []Judge

	result := d.db.WithContext(ctx).
		Where("state <> ?", stateDeleted).
		Order("name").
		Find(&judges)
	if result.Error != nil {
		return nil, result.Error
	}

	return judges, nil
}

func (d *JudgeDAO) FindActive(ctx context.Context) ([]Judge, error) {
	var judges []Judge

	result := d.db.WithContext(ctx).
		Where("state = ?", stateActive).
		Order("name").
		Find(&judges)
	if result.Error != nil {
		return nil, result.Error
	}

	return judges, nil
}

func (d *JudgeDAO) FindByID(ctx context.Context, id string) (Judge, error) {
	var judge Judge

	result := d.db.WithContext(ctx).First(&judge, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Judge{}, ErrJudgeNotFound
		}

		return Judge{}, result.Error
	}

	return judge, nil
}

func (d *JudgeDAO) Insert(ctx context.Context, judge Judge) (Judge, error) {
	result := d.db.WithContext(ctx).Create(&judge)
	if result.Error != nil {
		return Judge{}, result.Error
	}

	return judge, nil
}

func (d *JudgeDAO) Update(ctx context.Context, judge Judge) (Judge, error) {
	result := d.db.WithContext(ctx).
		Model(&Judge{ID: judge.ID}).
		Updates(map[string]any{
			"name":      judge.Name,
			"specialty": judge.Specialty,
			"avatar":    judge.Avatar,
			"bio":       judge.Bio,
			"state":     judge.State,
		})
	if result.Error != nil {
		return Judge{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Judge{}, ErrJudgeNotFound
	}

	return d.FindByID(ctx, judge.ID)
}

// SoftDelete flips the state flag instead of removing the row.
func (d *JudgeDAO) SoftDelete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).
		Model(&Judge{ID: id}).
		Update("state", stateDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJudgeNotFound
	}

	return nil
}
