package dbmodel

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// AppUserProfile tracks the campaigns and pledges a user is associated with.
// Both lists live in join tables, so pruning a reference deletes a join row.
type AppUserProfile struct {
	gorm.Model

	UserID       uint `gorm:"not null;unique"`
	IsSuperAdmin bool `gorm:"not null;default:false"`

	Campaigns []FundraisingCampaign `gorm:"many2many:app_user_profile_campaigns;"`
	Pledges   []Pledge              `gorm:"many2many:app_user_profile_pledges;"`
}

type AppUserProfileFieldsToInclude struct {
	Campaigns bool
	Pledges   bool
}

type AppUserProfileRepository interface {
	FindByUserID(ctx context.Context, userID uint, fieldsToInclude *AppUserProfileFieldsToInclude) (*AppUserProfile, error)
	RemoveCampaigns(ctx context.Context, campaignIDs []uint) (int64, error)
	RemovePledges(ctx context.Context, pledgeIDs []uint) (int64, error)
}

type appUserProfileRepository struct {
	db *gorm.DB
}

func NewAppUserProfileRepository(db *gorm.DB) AppUserProfileRepository {
	return &appUserProfileRepository{db: db}
}

func (r *appUserProfileRepository) FindByUserID(ctx context.Context, userID uint, fieldsToInclude *AppUserProfileFieldsToInclude) (*AppUserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var profile AppUserProfile
	tx := r.db.WithContext(ctx).Model(&profile)

	if fieldsToInclude != nil {
		if fieldsToInclude.Campaigns {
			tx = tx.Preload("Campaigns")
		}

		if fieldsToInclude.Pledges {
			tx = tx.Preload("Pledges")
		}
	}

	err := tx.Where("user_id = ?", userID).First(&profile).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &profile, nil
}

// RemoveCampaigns drops the given campaigns from every profile that lists them.
// It returns the number of references removed.
func (r *appUserProfileRepository) RemoveCampaigns(ctx context.Context, campaignIDs []uint) (int64, error) {
	if len(campaignIDs) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result := r.db.WithContext(ctx).
		Exec("DELETE FROM app_user_profile_campaigns WHERE fundraising_campaign_id IN ?", campaignIDs)

	return result.RowsAffected, result.Error
}

// RemovePledges drops the given pledges from every profile that lists them.
func (r *appUserProfileRepository) RemovePledges(ctx context.Context, pledgeIDs []uint) (int64, error) {
	if len(pledgeIDs) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result := r.db.WithContext(ctx).
		Exec("DELETE FROM app_user_profile_pledges WHERE pledge_id IN ?", pledgeIDs)

	return result.RowsAffected, result.Error
}
