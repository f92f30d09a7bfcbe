package resolver

import (
	"context"
	"errors"

	"github.com/Vaishali054/talawa-api/internal/authentication"
	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/Vaishali054/talawa-api/pkg/errormsg"
	graphql "github.com/graph-gophers/graphql-go"
)

// RemoveFund is the resolver for the removeFund field.
func (r *Resolver) RemoveFund(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	err := r.FundsService.Remove(ctx, authentication.ForContext(ctx), parseID(args.ID))

	if err != nil {
		return false, publicError(ctx, err)
	}

	return true, nil
}

// Fund is the resolver for the fund field.
func (r *Resolver) Fund(ctx context.Context, args struct{ ID graphql.ID }) (*FundResolver, error) {
	dbFund, err := r.FundsService.Get(ctx, authentication.ForContext(ctx), parseID(args.ID))

	if err != nil {
		var fundNotFound *errormsg.FundNotFoundError
		if errors.As(err, &fundNotFound) {
			return nil, nil
		}

		return nil, publicError(ctx, err)
	}

	return &FundResolver{fund: dbFund, service: r.FundsService}, nil
}

// FundsByOrganization is the resolver for the fundsByOrganization field.
func (r *Resolver) FundsByOrganization(ctx context.Context, args struct{ OrganizationID graphql.ID }) ([]*FundResolver, error) {
	dbFunds, err := r.FundsService.ListByOrganization(ctx, authentication.ForContext(ctx), parseID(args.OrganizationID))

	if err != nil {
		return nil, publicError(ctx, err)
	}

	funds := make([]*FundResolver, 0, len(dbFunds))
	for _, dbFund := range dbFunds {
		funds = append(funds, &FundResolver{fund: dbFund, service: r.FundsService})
	}

	return funds, nil
}

type FundResolver struct {
	fund    *dbmodel.Fund
	service interface {
		Authorize(ctx context.Context, userID uint, organizationID uint) error
	}
}

func (f *FundResolver) ID() graphql.ID {
	return toID(f.fund.ID)
}

func (f *FundResolver) Name() string {
	return f.fund.Name
}

func (f *FundResolver) ReferenceNumber() *string {
	return f.fund.ReferenceNumber
}

func (f *FundResolver) TaxDeductible() bool {
	return f.fund.TaxDeductible
}

func (f *FundResolver) IsDefault() bool {
	return f.fund.IsDefault
}

func (f *FundResolver) IsArchived() bool {
	return f.fund.IsArchived
}

func (f *FundResolver) OrganizationID() graphql.ID {
	return toID(f.fund.OrganizationID)
}

func (f *FundResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: f.fund.CreatedAt}
}

func (f *FundResolver) Campaigns() []*CampaignResolver {
	campaigns := make([]*CampaignResolver, 0, len(f.fund.Campaigns))
	for i := range f.fund.Campaigns {
		campaigns = append(campaigns, &CampaignResolver{campaign: &f.fund.Campaigns[i]})
	}

	return campaigns
}

// ViewerCanRemove reports whether the requesting user would be allowed to remove the fund.
func (f *FundResolver) ViewerCanRemove(ctx context.Context) (bool, error) {
	err := f.service.Authorize(ctx, authentication.ForContext(ctx), f.fund.OrganizationID)

	if err == nil {
		return true, nil
	}

	if errormsg.IsNotAuthorized(err) || errormsg.IsNotFound(err) {
		return false, nil
	}

	return false, publicError(ctx, err)
}

type CampaignResolver struct {
	campaign *dbmodel.FundraisingCampaign
}

func (c *CampaignResolver) ID() graphql.ID {
	return toID(c.campaign.ID)
}

func (c *CampaignResolver) Name() string {
	return c.campaign.Name
}

func (c *CampaignResolver) FundID() graphql.ID {
	return toID(c.campaign.FundID)
}

func (c *CampaignResolver) StartDate() graphql.Time {
	return graphql.Time{Time: c.campaign.StartDate}
}

func (c *CampaignResolver) EndDate() graphql.Time {
	return graphql.Time{Time: c.campaign.EndDate}
}

func (c *CampaignResolver) FundingGoal() float64 {
	return c.campaign.FundingGoal
}

func (c *CampaignResolver) Currency() string {
	return c.campaign.Currency
}

func (c *CampaignResolver) Pledges() []*PledgeResolver {
	pledges := make([]*PledgeResolver, 0, len(c.campaign.Pledges))
	for i := range c.campaign.Pledges {
		pledges = append(pledges, &PledgeResolver{pledge: &c.campaign.Pledges[i]})
	}

	return pledges
}

type PledgeResolver struct {
	pledge *dbmodel.Pledge
}

func (p *PledgeResolver) ID() graphql.ID {
	return toID(p.pledge.ID)
}

func (p *PledgeResolver) CampaignID() graphql.ID {
	return toID(p.pledge.CampaignID)
}

func (p *PledgeResolver) Amount() float64 {
	return p.pledge.Amount
}

func (p *PledgeResolver) Currency() string {
	return p.pledge.Currency
}

func (p *PledgeResolver) StartDate() graphql.Time {
	return graphql.Time{Time: p.pledge.StartDate}
}

func (p *PledgeResolver) EndDate() graphql.Time {
	return graphql.Time{Time: p.pledge.EndDate}
}
