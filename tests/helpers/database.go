package helpers

import (
	"testing"

	"github.com/Vaishali054/talawa-api/config"
	"github.com/Vaishali054/talawa-api/pkg/database"
	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/Vaishali054/talawa-api/pkg/i18n"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const TestJWTSecret = "test-secret-key-for-integration-tests"

// SetupTestDB opens a fresh in-memory database and runs the migrations.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite::memory:", &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet logs during tests
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db, false, zerolog.Nop()))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// NewTestConfig wires uncached repositories around db, with the identity translator
// so error messages are the raw message keys.
func NewTestConfig(db *gorm.DB) *config.Config {
	cfg := &config.Config{
		AppUserProfileRepository:      dbmodel.NewAppUserProfileRepository(db),
		FundRepository:                dbmodel.NewFundRepository(db),
		FundraisingCampaignRepository: dbmodel.NewFundraisingCampaignRepository(db),
		OrganizationRepository:        dbmodel.NewOrganizationRepository(db),
		PledgeRepository:              dbmodel.NewPledgeRepository(db),
		UserRepository:                dbmodel.NewUserRepository(db),
		Store:                         dbmodel.NewStore(db),
		Logger:                        zerolog.Nop(),
		Translator:                    i18n.Identity(),
	}
	cfg.Constants.JWT.Secret = TestJWTSecret

	return cfg
}

// AssertRowCount checks that a table has expected number of rows
func AssertRowCount(t *testing.T, db *gorm.DB, tableName string, expected int64) {
	t.Helper()

	var count int64
	db.Table(tableName).Count(&count)
	assert.Equal(t, expected, count, "Expected %d rows in %s, got %d", expected, tableName, count)
}

// Exists reports whether a row with the given id exists, soft-deleted rows included.
func Exists(t *testing.T, db *gorm.DB, model interface{}, id uint) bool {
	t.Helper()

	var count int64
	require.NoError(t, db.Unscoped().Model(model).Where("id = ?", id).Count(&count).Error)

	return count > 0
}
