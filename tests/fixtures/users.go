package fixtures

import (
	"fmt"
	"testing"

	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var userCounter = 0

// CreateUser creates a user without an app profile.
func CreateUser(t *testing.T, db *gorm.DB) *dbmodel.User {
	t.Helper()

	userCounter++

	user := &dbmodel.User{
		Email:     fmt.Sprintf("user%d@test.com", userCounter),
		FirstName: "Test",
		LastName:  stringPtr(fmt.Sprintf("User%d", userCounter)),
	}

	require.NoError(t, db.Create(user).Error)

	return user
}

// CreateUserWithProfile creates a user and an empty app profile.
func CreateUserWithProfile(t *testing.T, db *gorm.DB, isSuperAdmin bool) (*dbmodel.User, *dbmodel.AppUserProfile) {
	t.Helper()

	user := CreateUser(t, db)

	profile := &dbmodel.AppUserProfile{
		UserID:       user.ID,
		IsSuperAdmin: isSuperAdmin,
	}

	require.NoError(t, db.Create(profile).Error)

	return user, profile
}

// AssociateProfile adds campaigns and pledges to the profile lists.
func AssociateProfile(t *testing.T, db *gorm.DB, profile *dbmodel.AppUserProfile, campaigns []*dbmodel.FundraisingCampaign, pledges []*dbmodel.Pledge) {
	t.Helper()

	for _, campaign := range campaigns {
		require.NoError(t, db.Model(profile).Association("Campaigns").Append(campaign))
	}

	for _, pledge := range pledges {
		require.NoError(t, db.Model(profile).Association("Pledges").Append(pledge))
	}
}

// LoadProfile reloads the user's profile with both lists.
func LoadProfile(t *testing.T, db *gorm.DB, userID uint) *dbmodel.AppUserProfile {
	t.Helper()

	var profile dbmodel.AppUserProfile
	require.NoError(t, db.Preload("Campaigns").Preload("Pledges").Where("user_id = ?", userID).First(&profile).Error)

	return &profile
}

func stringPtr(s string) *string {
	return &s
}
