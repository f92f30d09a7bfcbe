package fund

import (
	"context"
	"fmt"

	"github.com/Vaishali054/talawa-api/config"
	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/Vaishali054/talawa-api/pkg/errormsg"
)

type FundsService struct {
	*config.Config
}

// New creates a new instance of the funds service with the given configuration.
// It takes a configuration object as a parameter and returns a new instance of the funds service.
func New(config *config.Config) *FundsService {
	return &FundsService{config}
}

// Get returns the fund with the given ID, with its campaigns and their pledges.
// The requesting user must exist. It returns a FundNotFoundError when the fund does not exist.
func (config *FundsService) Get(ctx context.Context, userID uint, id uint) (*dbmodel.Fund, error) {
	if _, err := config.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	dbFund, err := config.FundRepository.FindByID(ctx, id, &dbmodel.FundFieldsToInclude{
		Campaigns:         true,
		Campaigns_Pledges: true,
	})

	if err != nil {
		return nil, err
	}

	if dbFund == nil {
		return nil, &errormsg.FundNotFoundError{Message: config.translate(ctx, errormsg.FundNotFoundMessage)}
	}

	return dbFund, nil
}

// ListByOrganization returns the funds of the given organization, with their campaigns and
// their pledges. The requesting user must exist.
func (config *FundsService) ListByOrganization(ctx context.Context, userID uint, organizationID uint) ([]*dbmodel.Fund, error) {
	if _, err := config.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	return config.FundRepository.FindByOrganizationID(ctx, organizationID, &dbmodel.FundFieldsToInclude{
		Campaigns:         true,
		Campaigns_Pledges: true,
	})
}

// Remove deletes the fund with the given ID on behalf of the given user, together with its
// campaigns, their pledges and every profile reference to them.
//
// Lookups and the authorization check happen before any write, so a failing request leaves
// the data untouched. The deletes then run in a single transaction.
func (config *FundsService) Remove(ctx context.Context, userID uint, id uint) error {
	dbUser, err := config.requireUser(ctx, userID)
	if err != nil {
		return err
	}

	dbFund, err := config.FundRepository.FindByID(ctx, id, nil)

	if err != nil {
		return err
	}

	if dbFund == nil {
		return &errormsg.FundNotFoundError{Message: config.translate(ctx, errormsg.FundNotFoundMessage)}
	}

	if err := config.authorize(ctx, dbUser, dbFund.OrganizationID, config.OrganizationRepository); err != nil {
		return err
	}

	var result cascadeResult

	err = config.Store.Transaction(ctx, func(repositories *dbmodel.Repositories) error {
		result, err = removeCascade(ctx, repositories, dbFund)
		return err
	})

	if err != nil {
		return fmt.Errorf("removing fund %d: %w", dbFund.ID, err)
	}

	config.Logger.Info().
		Uint("fundId", dbFund.ID).
		Uint("organizationId", dbFund.OrganizationID).
		Uint("userId", dbUser.ID).
		Int("campaigns", result.Campaigns).
		Int("pledges", result.Pledges).
		Int64("profileReferences", result.ProfileReferences).
		Msg("fund removed")

	return nil
}

type cascadeResult struct {
	Campaigns         int
	Pledges           int
	ProfileReferences int64
}

// removeCascade prunes profile references first so that no join row points at a deleted
// campaign or pledge, then deletes pledges, campaigns and the fund.
func removeCascade(ctx context.Context, repositories *dbmodel.Repositories, dbFund *dbmodel.Fund) (cascadeResult, error) {
	var result cascadeResult

	campaigns, err := repositories.FundraisingCampaigns.FindByFundID(ctx, dbFund.ID)
	if err != nil {
		return result, fmt.Errorf("finding campaigns: %w", err)
	}

	campaignIDs := make([]uint, 0, len(campaigns))
	for _, campaign := range campaigns {
		campaignIDs = append(campaignIDs, campaign.ID)
	}

	pledges, err := repositories.Pledges.FindByCampaignIDs(ctx, campaignIDs)
	if err != nil {
		return result, fmt.Errorf("finding pledges: %w", err)
	}

	pledgeIDs := make([]uint, 0, len(pledges))
	for _, pledge := range pledges {
		pledgeIDs = append(pledgeIDs, pledge.ID)
	}

	removedCampaignReferences, err := repositories.AppUserProfiles.RemoveCampaigns(ctx, campaignIDs)
	if err != nil {
		return result, fmt.Errorf("pruning campaign references: %w", err)
	}

	removedPledgeReferences, err := repositories.AppUserProfiles.RemovePledges(ctx, pledgeIDs)
	if err != nil {
		return result, fmt.Errorf("pruning pledge references: %w", err)
	}

	if _, err := repositories.Pledges.DeleteByIDs(ctx, pledgeIDs); err != nil {
		return result, fmt.Errorf("deleting pledges: %w", err)
	}

	if _, err := repositories.FundraisingCampaigns.DeleteByIDs(ctx, campaignIDs); err != nil {
		return result, fmt.Errorf("deleting campaigns: %w", err)
	}

	if err := repositories.Funds.Delete(ctx, dbFund.ID); err != nil {
		return result, fmt.Errorf("deleting fund: %w", err)
	}

	result.Campaigns = len(campaignIDs)
	result.Pledges = len(pledgeIDs)
	result.ProfileReferences = removedCampaignReferences + removedPledgeReferences

	return result, nil
}

func (config *FundsService) requireUser(ctx context.Context, userID uint) (*dbmodel.User, error) {
	dbUser, err := config.UserRepository.FindByID(ctx, userID)

	if err != nil {
		return nil, err
	}

	if dbUser == nil {
		return nil, &errormsg.UserNotFoundError{Message: config.translate(ctx, errormsg.UserNotFoundMessage)}
	}

	return dbUser, nil
}

func (config *FundsService) translate(ctx context.Context, key string) string {
	if config.Translator == nil {
		return key
	}

	return config.Translator.Translate(ctx, key)
}
