package dbmodel

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Fund struct {
	gorm.Model

	Name            string `gorm:"not null"`
	ReferenceNumber *string
	TaxDeductible   bool `gorm:"not null;default:false"`
	IsDefault       bool `gorm:"not null;default:false"`
	IsArchived      bool `gorm:"not null;default:false"`

	Campaigns []FundraisingCampaign `gorm:"foreignKey:FundID"`

	// Foreign objects
	OrganizationID uint `gorm:"not null;index"`
	CreatorID      *uint
}

type FundFieldsToInclude struct {
	Campaigns         bool
	Campaigns_Pledges bool
}

type FundRepository interface {
	FindByID(ctx context.Context, id uint, fieldsToInclude *FundFieldsToInclude) (*Fund, error)
	FindByOrganizationID(ctx context.Context, organizationID uint, fieldsToInclude *FundFieldsToInclude) ([]*Fund, error)
	Delete(ctx context.Context, id uint) error
}

type fundRepository struct {
	db *gorm.DB
}

func NewFundRepository(db *gorm.DB) FundRepository {
	return &fundRepository{db: db}
}

func (r *fundRepository) FindByID(ctx context.Context, id uint, fieldsToInclude *FundFieldsToInclude) (*Fund, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var fund Fund
	tx := r.db.WithContext(ctx).Model(&fund)

	if fieldsToInclude != nil {
		if fieldsToInclude.Campaigns {
			tx = tx.Preload("Campaigns")
		}

		if fieldsToInclude.Campaigns_Pledges {
			tx = tx.Preload("Campaigns.Pledges")
		}
	}

	err := tx.Where("id = ?", id).First(&fund).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &fund, nil
}

func (r *fundRepository) FindByOrganizationID(ctx context.Context, organizationID uint, fieldsToInclude *FundFieldsToInclude) ([]*Fund, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var funds []*Fund
	tx := r.db.WithContext(ctx).Model(&Fund{})

	if fieldsToInclude != nil {
		if fieldsToInclude.Campaigns {
			tx = tx.Preload("Campaigns")
		}

		if fieldsToInclude.Campaigns_Pledges {
			tx = tx.Preload("Campaigns.Pledges")
		}
	}

	err := tx.Where("organization_id = ?", organizationID).Order("id").Find(&funds).Error

	if err != nil {
		return nil, err
	}

	return funds, nil
}

func (r *fundRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx := r.db.WithContext(ctx)

	return tx.Unscoped().Delete(&Fund{}, id).Error
}
