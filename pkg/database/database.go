package database

import (
	"fmt"
	"strings"

	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/Vaishali054/talawa-api/pkg/database/seed"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the database described by connectionString.
// A "sqlite:" prefix selects sqlite (e.g. sqlite::memory: or sqlite:./talawa.db),
// anything else is handed to the postgres driver.
func Open(connectionString string, config *gorm.Config) (*gorm.DB, error) {
	if config == nil {
		config = &gorm.Config{}
	}

	if strings.HasPrefix(connectionString, "sqlite:") {
		dsn := strings.TrimPrefix(connectionString, "sqlite:")
		if dsn == "" {
			dsn = "./talawa.db"
		}

		db, err := gorm.Open(sqlite.Open(dsn), config)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}

		// An in-memory database only lives as long as its connection.
		if strings.Contains(dsn, ":memory:") {
			sqlDB, err := db.DB()
			if err != nil {
				return nil, err
			}
			sqlDB.SetMaxOpenConns(1)
		}

		return db, nil
	}

	db, err := gorm.Open(postgres.Open(connectionString), config)
	if err != nil {
		return nil, fmt.Errorf("opening postgres database: %w", err)
	}

	return db, nil
}

func Migrate(database *gorm.DB, seedDemoData bool, logger zerolog.Logger) error {
	err := database.AutoMigrate(
		&seed.Seed{},
		&dbmodel.User{},
		&dbmodel.Organization{},
		&dbmodel.Fund{},
		&dbmodel.FundraisingCampaign{},
		&dbmodel.Pledge{},
		&dbmodel.AppUserProfile{},
	)

	if err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	logger.Info().Msg("database migrated")

	if !seedDemoData {
		return nil
	}

	return ApplySeeds(database, logger)
}

func ApplySeeds(database *gorm.DB, logger zerolog.Logger) error {
	seedsToApply := []struct {
		Name     string
		SeedFunc func(*gorm.DB) error
	}{
		{"SeedV1", seed.SeedV1},
	}

	for _, seedToApply := range seedsToApply {
		if isSeedApplied(database, seedToApply.Name) {
			continue
		}

		logger.Info().Str("seed", seedToApply.Name).Msg("applying seed")

		if err := seedToApply.SeedFunc(database); err != nil {
			return fmt.Errorf("applying seed %s: %w", seedToApply.Name, err)
		}

		markSeedAsApplied(database, seedToApply.Name)
	}

	logger.Info().Msg("seeds applied")

	return nil
}

func isSeedApplied(database *gorm.DB, name string) bool {
	var count int64
	database.Model(&seed.Seed{}).Where("name = ?", name).Count(&count)

	return count > 0
}

func markSeedAsApplied(database *gorm.DB, name string) {
	database.Create(&seed.Seed{Name: name})
}
