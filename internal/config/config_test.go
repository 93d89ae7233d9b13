package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "pawfect")
	t.Setenv("DB_NAME", "pawfectmatch")
	t.Setenv("JWT_ACCESS_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Learning.MinSwipes)
	assert.InDelta(t, 0.6, cfg.Learning.ConfidenceThreshold, 1e-9)
	assert.InDelta(t, 0.2, cfg.Learning.MaxBoost, 1e-9)

	// Weights fall back to the compiled defaults and sum to 100.
	assert.InDelta(t, 100, cfg.Matching.Weights.Sum(), 1e-9)
	assert.InDelta(t, 100, cfg.Matching.Gates.MaxDistanceKm, 1e-9)
}

func TestLoadRejectsShortJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 characters")
}

func TestLoadRequiresDatabaseHost(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database host")
}

func TestValidateRejectsWeightsOutOfRange(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	cfg.Matching.Weights.Temperament = 80
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights out of safe range")
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "app",
		Password: "secret",
		DBName:   "pawfectmatch",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=app password=secret dbname=pawfectmatch sslmode=require",
		db.GetDSN())
}

func TestLearningBoundsValidated(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LEARNING_CONFIDENCE_THRESHOLD", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence threshold")
}
