package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Vaishali054/talawa-api/pkg/database"
	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/Vaishali054/talawa-api/pkg/i18n"
	"github.com/Vaishali054/talawa-api/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func doesEnvExists(name string) bool {
	_, exists := os.LookupEnv(name)
	return exists
}

type Constants struct {
	// Constants
	Port     string `yaml:"port"`
	Env      string `yaml:"env"`
	LogLevel string `yaml:"logLevel"`

	// JWT Configuration
	JWT struct {
		Secret         string        `yaml:"secret"`
		AccessTokenTTL time.Duration `yaml:"accessTokenTTL"`
	} `yaml:"jwt"`

	// Organization cache used by the fund authorization check
	Cache struct {
		OrganizationSize int           `yaml:"organizationSize"`
		OrganizationTTL  time.Duration `yaml:"organizationTTL"`
	} `yaml:"cache"`

	// Database
	ConnectionString string `yaml:"connectionString"`
	SeedDemoData     bool   `yaml:"seedDemoData"`
}

type Config struct {
	Constants

	// Repositories
	AppUserProfileRepository      dbmodel.AppUserProfileRepository
	FundRepository                dbmodel.FundRepository
	FundraisingCampaignRepository dbmodel.FundraisingCampaignRepository
	OrganizationRepository        dbmodel.OrganizationRepository
	PledgeRepository              dbmodel.PledgeRepository
	UserRepository                dbmodel.UserRepository

	Store dbmodel.Store

	// Read side only, see fund.FundsService.Authorize
	OrganizationCache dbmodel.OrganizationRepository

	// Services
	Logger     zerolog.Logger
	Translator i18n.Translator
}

func initViper(configName string) (Constants, error) {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName(configName)

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok && err != nil {
		return Constants{}, err
	}

	// At this point, the only error would be a missing config file
	if err != nil {
		err = initViperEnv()

		if err != nil {
			return Constants{}, err
		}
	}

	var constants Constants
	err = viper.Unmarshal(&constants)

	return constants, err
}

func initViperEnv() error {
	if err := loadEnvFiles(".env", ".env.local"); err != nil {
		return err
	}

	var missing []string
	for _, name := range []string{"PORT", "JWT_SECRET", "CONNECTION_STRING"} {
		if !doesEnvExists(name) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &MissingEnvVariableError{Names: missing}
	}

	setDefaultFromEnv("port", "PORT")
	setDefaultFromEnv("env", "APP_ENV")
	setDefaultFromEnv("logLevel", "LOG_LEVEL")
	setDefaultFromEnv("jwt.secret", "JWT_SECRET")
	setDefaultFromEnv("jwt.accessTokenTTL", "JWT_ACCESS_TOKEN_TTL")
	setDefaultFromEnv("cache.organizationSize", "CACHE_ORGANIZATION_SIZE")
	setDefaultFromEnv("cache.organizationTTL", "CACHE_ORGANIZATION_TTL")
	setDefaultFromEnv("connectionString", "CONNECTION_STRING")
	setDefaultFromEnv("seedDemoData", "SEED_DEMO_DATA")

	return nil
}

// loadEnvFiles loads each file that exists. Variables already set in the environment win,
// and an earlier file wins over a later one.
func loadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}

	return nil
}

// Optional variables are only registered when set, an empty duration would not decode.
func setDefaultFromEnv(key string, name string) {
	if value, exists := os.LookupEnv(name); exists {
		viper.SetDefault(key, value)
	}
}

func applyDefaults(constants *Constants) {
	if constants.Env == "" {
		constants.Env = "production"
	}

	if constants.JWT.AccessTokenTTL == 0 {
		constants.JWT.AccessTokenTTL = 30 * time.Minute
	}

	if constants.Cache.OrganizationSize <= 0 {
		constants.Cache.OrganizationSize = 1000
	}

	if constants.Cache.OrganizationTTL == 0 {
		constants.Cache.OrganizationTTL = 30 * time.Second
	}
}

// NewWithDatabase wires repositories, logger and translator around an already opened database.
func NewWithDatabase(constants Constants, databaseSession *gorm.DB) (*Config, error) {
	applyDefaults(&constants)

	config := Config{Constants: constants}

	config.Logger = logger.New(constants.Env, constants.LogLevel)

	translator, err := i18n.New()
	if err != nil {
		return nil, err
	}
	config.Translator = translator

	if err := database.Migrate(databaseSession, constants.SeedDemoData, config.Logger); err != nil {
		return nil, err
	}

	config.AppUserProfileRepository = dbmodel.NewAppUserProfileRepository(databaseSession)
	config.FundRepository = dbmodel.NewFundRepository(databaseSession)
	config.FundraisingCampaignRepository = dbmodel.NewFundraisingCampaignRepository(databaseSession)
	config.OrganizationRepository = dbmodel.NewOrganizationRepository(databaseSession)
	config.OrganizationCache = dbmodel.NewCachedOrganizationRepository(
		config.OrganizationRepository,
		constants.Cache.OrganizationSize,
		constants.Cache.OrganizationTTL,
	)
	config.PledgeRepository = dbmodel.NewPledgeRepository(databaseSession)
	config.UserRepository = dbmodel.NewUserRepository(databaseSession)
	config.Store = dbmodel.NewStore(databaseSession)

	return &config, nil
}

func New() (*Config, error) {
	constants, err := initViper("config")

	if err != nil {
		return nil, err
	}

	// Database
	databaseSession, err := database.Open(constants.ConnectionString, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return NewWithDatabase(constants, databaseSession)
}
