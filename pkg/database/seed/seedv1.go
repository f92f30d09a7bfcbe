package seed

import (
	"time"

	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T {
	return &v
}

// SeedV1 creates a demo organization with one admin, a fund, a campaign and a pledge
// the admin is associated with.
func SeedV1(database *gorm.DB) error {
	return database.Transaction(func(tx *gorm.DB) error {
		admin := dbmodel.User{
			Email:     "admin@talawa.local",
			FirstName: "Demo",
			LastName:  ptr("Admin"),
		}

		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		organization := dbmodel.Organization{
			Name:   "Demo Organization",
			Admins: []dbmodel.User{admin},
		}

		if err := tx.Create(&organization).Error; err != nil {
			return err
		}

		fund := dbmodel.Fund{
			Name:            "General Fund",
			ReferenceNumber: ptr("GF-001"),
			TaxDeductible:   true,
			IsDefault:       true,
			OrganizationID:  organization.ID,
			CreatorID:       &admin.ID,
		}

		if err := tx.Create(&fund).Error; err != nil {
			return err
		}

		start := time.Now().Truncate(24 * time.Hour)

		campaign := dbmodel.FundraisingCampaign{
			Name:           "Spring Drive",
			StartDate:      start,
			EndDate:        start.AddDate(0, 3, 0),
			FundingGoal:    10000,
			Currency:       "USD",
			FundID:         fund.ID,
			OrganizationID: organization.ID,
		}

		if err := tx.Create(&campaign).Error; err != nil {
			return err
		}

		pledge := dbmodel.Pledge{
			Amount:     250,
			Currency:   "USD",
			StartDate:  start,
			EndDate:    start.AddDate(0, 1, 0),
			CampaignID: campaign.ID,
		}

		if err := tx.Create(&pledge).Error; err != nil {
			return err
		}

		profile := dbmodel.AppUserProfile{
			UserID:    admin.ID,
			Campaigns: []dbmodel.FundraisingCampaign{campaign},
			Pledges:   []dbmodel.Pledge{pledge},
		}

		return tx.Create(&profile).Error
	})
}
