package fund

import (
	"context"

	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/stretchr/testify/mock"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*dbmodel.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbmodel.User), args.Error(1)
}

// Mock AppUserProfileRepository
type MockAppUserProfileRepository struct {
	mock.Mock
}

func (m *MockAppUserProfileRepository) FindByUserID(ctx context.Context, userID uint, fieldsToInclude *dbmodel.AppUserProfileFieldsToInclude) (*dbmodel.AppUserProfile, error) {
	args := m.Called(ctx, userID, fieldsToInclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbmodel.AppUserProfile), args.Error(1)
}

func (m *MockAppUserProfileRepository) RemoveCampaigns(ctx context.Context, campaignIDs []uint) (int64, error) {
	args := m.Called(ctx, campaignIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppUserProfileRepository) RemovePledges(ctx context.Context, pledgeIDs []uint) (int64, error) {
	args := m.Called(ctx, pledgeIDs)
	return args.Get(0).(int64), args.Error(1)
}

// Mock OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id uint) (*dbmodel.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbmodel.Organization), args.Error(1)
}

// Mock FundRepository
type MockFundRepository struct {
	mock.Mock
}

func (m *MockFundRepository) FindByID(ctx context.Context, id uint, fieldsToInclude *dbmodel.FundFieldsToInclude) (*dbmodel.Fund, error) {
	args := m.Called(ctx, id, fieldsToInclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbmodel.Fund), args.Error(1)
}

func (m *MockFundRepository) FindByOrganizationID(ctx context.Context, organizationID uint, fieldsToInclude *dbmodel.FundFieldsToInclude) ([]*dbmodel.Fund, error) {
	args := m.Called(ctx, organizationID, fieldsToInclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dbmodel.Fund), args.Error(1)
}

func (m *MockFundRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock FundraisingCampaignRepository
type MockFundraisingCampaignRepository struct {
	mock.Mock
}

func (m *MockFundraisingCampaignRepository) FindByFundID(ctx context.Context, fundID uint) ([]*dbmodel.FundraisingCampaign, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dbmodel.FundraisingCampaign), args.Error(1)
}

func (m *MockFundraisingCampaignRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// Mock PledgeRepository
type MockPledgeRepository struct {
	mock.Mock
}

func (m *MockPledgeRepository) FindByCampaignIDs(ctx context.Context, campaignIDs []uint) ([]*dbmodel.Pledge, error) {
	args := m.Called(ctx, campaignIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dbmodel.Pledge), args.Error(1)
}

func (m *MockPledgeRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// Mock Store, runs the transaction body against the mocked repositories.
type MockStore struct {
	mock.Mock
	Repositories *dbmodel.Repositories
}

func (m *MockStore) Transaction(ctx context.Context, fn func(repositories *dbmodel.Repositories) error) error {
	m.Called(ctx)
	return fn(m.Repositories)
}
