package dbmodel

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Pledge struct {
	gorm.Model

	Amount    float64   `gorm:"not null"`
	Currency  string    `gorm:"not null;size:3"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	// Foreign objects
	CampaignID uint `gorm:"not null;index"`
}

type PledgeRepository interface {
	FindByCampaignIDs(ctx context.Context, campaignIDs []uint) ([]*Pledge, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
}

type pledgeRepository struct {
	db *gorm.DB
}

func NewPledgeRepository(db *gorm.DB) PledgeRepository {
	return &pledgeRepository{db: db}
}

func (r *pledgeRepository) FindByCampaignIDs(ctx context.Context, campaignIDs []uint) ([]*Pledge, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pledges []*Pledge
	tx := r.db.WithContext(ctx).Model(&Pledge{})

	err := tx.Where("campaign_id IN ?", campaignIDs).Order("id").Find(&pledges).Error

	if err != nil {
		return nil, err
	}

	return pledges, nil
}

func (r *pledgeRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result := r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&Pledge{})

	return result.RowsAffected, result.Error
}
