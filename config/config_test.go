package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Vaishali054/talawa-api/pkg/database"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitViperEnv(t *testing.T) {
	t.Run("reports every missing variable", func(t *testing.T) {
		viper.Reset()
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "")
		t.Setenv("CONNECTION_STRING", "")
		os.Unsetenv("CONNECTION_STRING")

		err := initViperEnv()

		var missing *MissingEnvVariableError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"CONNECTION_STRING"}, missing.Names)
		assert.Contains(t, err.Error(), "CONNECTION_STRING")
	})

	t.Run("loads constants from the environment", func(t *testing.T) {
		viper.Reset()
		t.Setenv("PORT", "9090")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_ACCESS_TOKEN_TTL", "15m")
		t.Setenv("CONNECTION_STRING", "sqlite::memory:")
		t.Setenv("SEED_DEMO_DATA", "true")

		constants, err := initViper("config")

		require.NoError(t, err)
		assert.Equal(t, "9090", constants.Port)
		assert.Equal(t, "secret", constants.JWT.Secret)
		assert.Equal(t, 15*time.Minute, constants.JWT.AccessTokenTTL)
		assert.Equal(t, "sqlite::memory:", constants.ConnectionString)
		assert.True(t, constants.SeedDemoData)
	})
}

func TestNewWithDatabase(t *testing.T) {
	db, err := database.Open("sqlite::memory:", nil)
	require.NoError(t, err)

	constants := Constants{LogLevel: "disabled"}
	cfg, err := NewWithDatabase(constants, db)

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 1000, cfg.Cache.OrganizationSize)
	assert.NotNil(t, cfg.Store)
	assert.NotNil(t, cfg.FundRepository)
	assert.NotNil(t, cfg.OrganizationRepository)
	assert.NotNil(t, cfg.OrganizationCache)
	assert.NotNil(t, cfg.Translator)
}

func TestLoadEnvFiles(t *testing.T) {
	t.Run("later files load when earlier ones are missing", func(t *testing.T) {
		dir := t.TempDir()
		local := filepath.Join(dir, ".env.local")
		require.NoError(t, os.WriteFile(local, []byte("FUNDS_TEST_LOCAL_ONLY=from-local\n"), 0o600))
		t.Setenv("FUNDS_TEST_LOCAL_ONLY", "")
		os.Unsetenv("FUNDS_TEST_LOCAL_ONLY")

		err := loadEnvFiles(filepath.Join(dir, ".env"), local)

		require.NoError(t, err)
		assert.Equal(t, "from-local", os.Getenv("FUNDS_TEST_LOCAL_ONLY"))
	})

	t.Run("environment wins over files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte("FUNDS_TEST_PRESET=from-file\n"), 0o600))
		t.Setenv("FUNDS_TEST_PRESET", "from-env")

		require.NoError(t, loadEnvFiles(path))
		assert.Equal(t, "from-env", os.Getenv("FUNDS_TEST_PRESET"))
	})

	t.Run("unreadable file is reported", func(t *testing.T) {
		dir := t.TempDir()

		err := loadEnvFiles(dir)

		assert.Error(t, err)
	})
}
