package database

import (
	"testing"

	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/Vaishali054/talawa-api/pkg/database/seed"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open("sqlite::memory:", &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)

	return n
}

func TestMigrate(t *testing.T) {
	t.Run("without demo data", func(t *testing.T) {
		db := openTestDB(t)

		require.NoError(t, Migrate(db, false, zerolog.Nop()))

		assert.Zero(t, count(t, db, &dbmodel.Fund{}))
		assert.Zero(t, count(t, db, &seed.Seed{}))
	})

	t.Run("seeds are applied once", func(t *testing.T) {
		db := openTestDB(t)

		require.NoError(t, Migrate(db, true, zerolog.Nop()))
		require.NoError(t, Migrate(db, true, zerolog.Nop()))

		assert.Equal(t, int64(1), count(t, db, &seed.Seed{}))
		assert.Equal(t, int64(1), count(t, db, &dbmodel.Fund{}))
		assert.Equal(t, int64(1), count(t, db, &dbmodel.FundraisingCampaign{}))
		assert.Equal(t, int64(1), count(t, db, &dbmodel.Pledge{}))
	})
}

func TestOpen(t *testing.T) {
	_, err := Open("postgres://invalid host", nil)
	assert.Error(t, err)
}
