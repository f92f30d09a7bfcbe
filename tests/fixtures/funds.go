package fixtures

import (
	"fmt"
	"testing"
	"time"

	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// FundGraph is a fund owned by an organization whose admin has a profile,
// with optional campaign and pledge.
type FundGraph struct {
	Admin        *dbmodel.User
	Profile      *dbmodel.AppUserProfile
	Organization *dbmodel.Organization
	Fund         *dbmodel.Fund
	Campaign     *dbmodel.FundraisingCampaign
	Pledge       *dbmodel.Pledge
}

// CreateOrganization creates an organization administered by the given users.
func CreateOrganization(t *testing.T, db *gorm.DB, admins ...*dbmodel.User) *dbmodel.Organization {
	t.Helper()

	organization := &dbmodel.Organization{Name: fmt.Sprintf("Organization %d", time.Now().UnixNano())}
	for _, admin := range admins {
		organization.Admins = append(organization.Admins, *admin)
	}

	require.NoError(t, db.Create(organization).Error)

	return organization
}

func CreateFund(t *testing.T, db *gorm.DB, organization *dbmodel.Organization, creator *dbmodel.User) *dbmodel.Fund {
	t.Helper()

	fund := &dbmodel.Fund{
		Name:            "Test Fund",
		ReferenceNumber: stringPtr("REF-1"),
		TaxDeductible:   true,
		OrganizationID:  organization.ID,
		CreatorID:       &creator.ID,
	}

	require.NoError(t, db.Create(fund).Error)

	return fund
}

func CreateFundraisingCampaign(t *testing.T, db *gorm.DB, fund *dbmodel.Fund) *dbmodel.FundraisingCampaign {
	t.Helper()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	campaign := &dbmodel.FundraisingCampaign{
		Name:           "Test Campaign",
		StartDate:      start,
		EndDate:        start.AddDate(0, 6, 0),
		FundingGoal:    1000,
		Currency:       "USD",
		FundID:         fund.ID,
		OrganizationID: fund.OrganizationID,
	}

	require.NoError(t, db.Create(campaign).Error)

	return campaign
}

func CreatePledge(t *testing.T, db *gorm.DB, campaign *dbmodel.FundraisingCampaign) *dbmodel.Pledge {
	t.Helper()

	pledge := &dbmodel.Pledge{
		Amount:     100,
		Currency:   "USD",
		StartDate:  campaign.StartDate,
		EndDate:    campaign.StartDate.AddDate(0, 1, 0),
		CampaignID: campaign.ID,
	}

	require.NoError(t, db.Create(pledge).Error)

	return pledge
}

// CreateFundGraph creates an admin with a profile, the organization they administer and a fund
// without campaigns.
func CreateFundGraph(t *testing.T, db *gorm.DB) *FundGraph {
	t.Helper()

	admin, profile := CreateUserWithProfile(t, db, false)
	organization := CreateOrganization(t, db, admin)

	return &FundGraph{
		Admin:        admin,
		Profile:      profile,
		Organization: organization,
		Fund:         CreateFund(t, db, organization, admin),
	}
}

// CreateFundGraphWithPledge extends CreateFundGraph with one campaign and one pledge,
// both listed on the admin's profile.
func CreateFundGraphWithPledge(t *testing.T, db *gorm.DB) *FundGraph {
	t.Helper()

	graph := CreateFundGraph(t, db)
	graph.Campaign = CreateFundraisingCampaign(t, db, graph.Fund)
	graph.Pledge = CreatePledge(t, db, graph.Campaign)

	AssociateProfile(t, db, graph.Profile,
		[]*dbmodel.FundraisingCampaign{graph.Campaign},
		[]*dbmodel.Pledge{graph.Pledge},
	)

	return graph
}
