package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCriterionNotFound = errors.New("criterion not found")

// Criterion rows are soft-deleted like judges. Rounds holds the JSON-encoded
// list of phases the criterion applies to ("qualification", "finals").
type Criterion struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Description  string
	MaxPoints    int       `gorm:"not null"`
	DisplayOrder int       `gorm:"not null;default:0"`
	State        int16     `gorm:"not null;default:1"`
	Rounds       string    `gorm:"not null;default:'[]'"`
	CreatedAt    time.Time `gorm:"not null"`
}

type CriterionDAO struct {
	db *gorm.DB
}

func NewCriterionDAO(db *gorm.DB) *CriterionDAO {
	return &CriterionDAO{
		db: db,
	}
}

func (d *CriterionDAO) FindAll(ctx context.Context) ([]Criterion, error) {
	var criteria []Criterion

	result := d.db.WithContext(ctx).
		Where("state <> ?", stateDeleted).
		Order("display_order").
		Find(&criteria)
	if result.Error != nil {
		return nil, result.Error
	}

	return criteria, nil
}

func (d *CriterionDAO) FindActive(ctx context.Context) ([]Criterion, error) {
	var criteria []Criterion

	result := d.db.WithContext(ctx).
		Where("state = ?", stateActive).
		Order("display_order").
		Find(&criteria)
	if result.Error != nil {
		return nil, result.Error
	}

	return criteria, nil
}

func (d *CriterionDAO) FindByID(ctx context.Context, id string) (Criterion, error) {
	var criterion Criterion

	result := d.db.WithContext(ctx).First(&criterion, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Criterion{}, ErrCriterionNotFound
		}

		return Criterion{}, result.Error
	}

	return criterion, nil
}

func (d *CriterionDAO) Insert(ctx context.Context, criterion Criterion) (Criterion, error) {
	result := d.db.WithContext(ctx).Create(&criterion)
	if result.Error != nil {
		return Criterion{}, result.Error
	}

	return criterion, nil
}

func (d *CriterionDAO) Update(ctx context.Context, criterion Criterion) (Criterion, error) {
	result := d.db.WithContext(ctx).
		Model(&Criterion{ID: criterion.ID}).
		Updates(map[string]any{
			"name":          criterion.Name,
			"description":   criterion.Description,
			"max_points":    criterion.MaxPoints,
			"display_order": criterion.DisplayOrder,
			"state":         criterion.State,
			"rounds":        criterion.Rounds,
		})
	if result.Error != nil {
		return Criterion{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Criterion{}, ErrCriterionNotFound
	}

	return d.FindByID(ctx, criterion.ID)
}

func (d *CriterionDAO) SoftDelete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).
		Model(&Criterion{ID: id}).
		Update("state", stateDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCriterionNotFound
	}

	return nil
}

// Reorder reassigns display_order following the submitted id sequence.
// Runs in one transaction so a failure never leaves a half-applied order.
func (d *CriterionDAO) Reorder(ctx context.Context, orderedIDs []string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			result := tx.Model(&Criterion{ID: id}).Update("display_order", i)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrCriterionNotFound
			}
		}

		return nil
	})
}
