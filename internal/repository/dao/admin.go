package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAdminUsernameExists = errors.New("admin username already exists")
	ErrAdminNotFound       = errors.New("admin not found")
)

type Admin struct {
	ID                    string `gorm:"primaryKey"`
	Name                  string `gorm:"not null"`
	Username              string `gorm:"unique;not null"`
	Password              string `gorm:"not null"`
	Email                 string
	Role                  string `gorm:"not null;default:normal"`
	Status                string `gorm:"not null;default:active"`
	RequirePasswordChange bool   `gorm:"not null;default:false"`
	LastLogin             *time.Time
	CreatedAt             time.Time `gorm:"not null"`
}

type AdminDAO struct {
	db *gorm.DB
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{
		db: db,
	}
}

func (d *AdminDAO) Insert(ctx context.Context, admin Admin) (Admin, error) {
	result := d.db.WithContext(ctx).Create(&admin)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_admins_username"`) {
			return Admin{}, ErrAdminUsernameExists
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindAll(ctx context.Context) ([]Admin, error) {
	var admins []Admin

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&admins)
	if result.Error != nil {
		return nil, result.Error
	}

	return admins, nil
}

func (d *AdminDAO) FindByID(ctx context.Context, id string) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).First(&admin, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindByUsername(ctx context.Context, username string) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).First(&admin, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) Update(ctx context.Context, admin Admin) (Admin, error) {
	result := d.db.WithContext(ctx).
		Model(&Admin{ID: admin.ID}).
		Updates(map[string]any{
			"name":                    admin.Name,
			"email":                   admin.Email,
			"password":                admin.Password,
			"role":                    admin.Role,
			"status":                  admin.Status,
			"require_password_change": admin.RequirePasswordChange,
			"last_login":              admin.LastLogin,
		})
	if result.Error != nil {
		return Admin{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Admin{}, ErrAdminNotFound
	}

	return d.FindByID(ctx, admin.ID)
}

func (d *AdminDAO) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	result := d.db.WithContext(ctx).
		Model(&Admin{ID: id}).
		Update("last_login", at)

	return result.Error
}

func (d *AdminDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Admin{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}

	return nil
}
