package dbmodel

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type FundraisingCampaign struct {
	gorm.Model

	Name        string    `gorm:"not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	FundingGoal float64   `gorm:"not null"`
	Currency    string    `gorm:"not null;size:3"`

	Pledges []Pledge `gorm:"foreignKey:CampaignID"`

	// Foreign objects
	FundID         uint `gorm:"not null;index"`
	OrganizationID uint `gorm:"not null;index"`
}

type FundraisingCampaignRepository interface {
	FindByFundID(ctx context.Context, fundID uint) ([]*FundraisingCampaign, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
}

type fundraisingCampaignRepository struct {
	db *gorm.DB
}

func NewFundraisingCampaignRepository(db *gorm.DB) FundraisingCampaignRepository {
	return &fundraisingCampaignRepository{db: db}
}

func (r *fundraisingCampaignRepository) FindByFundID(ctx context.Context, fundID uint) ([]*FundraisingCampaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var campaigns []*FundraisingCampaign
	tx := r.db.WithContext(ctx).Model(&FundraisingCampaign{})

	err := tx.Where("fund_id = ?", fundID).Order("id").Find(&campaigns).Error

	if err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (r *fundraisingCampaignRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result := r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&FundraisingCampaign{})

	return result.RowsAffected, result.Error
}
