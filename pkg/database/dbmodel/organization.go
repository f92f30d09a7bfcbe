package dbmodel

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Organization struct {
	gorm.Model

	Name string `gorm:"not null"`

	Admins []User `gorm:"many2many:organization_admins;"`
}

// IsAdmin reports whether the user is listed among the organization admins.
func (o *Organization) IsAdmin(userID uint) bool {
	for _, admin := range o.Admins {
		if admin.ID == userID {
			return true
		}
	}

	return false
}

type OrganizationRepository interface {
	FindByID(ctx context.Context, id uint) (*Organization, error)
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) FindByID(ctx context.Context, id uint) (*Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var organization Organization
	tx := r.db.WithContext(ctx).Model(&organization).Preload("Admins")

	err := tx.Where("id = ?", id).First(&organization).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &organization, nil
}
