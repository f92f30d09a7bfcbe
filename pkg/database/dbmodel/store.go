package dbmodel

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the repositories bound to one connection or transaction.
type Repositories struct {
	AppUserProfiles      AppUserProfileRepository
	Funds                FundRepository
	FundraisingCampaigns FundraisingCampaignRepository
	Organizations        OrganizationRepository
	Pledges              PledgeRepository
	Users                UserRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		AppUserProfiles:      NewAppUserProfileRepository(db),
		Funds:                NewFundRepository(db),
		FundraisingCampaigns: NewFundraisingCampaignRepository(db),
		Organizations:        NewOrganizationRepository(db),
		Pledges:              NewPledgeRepository(db),
		Users:                NewUserRepository(db),
	}
}

type Store interface {
	// Transaction runs fn with repositories bound to a single transaction.
	// The transaction is committed when fn returns nil and rolled back otherwise.
	Transaction(ctx context.Context, fn func(repositories *Repositories) error) error
}

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Transaction(ctx context.Context, fn func(repositories *Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
