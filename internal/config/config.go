package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Matching MatchingConfig
	Learning LearningConfig
	Logging  LoggingConfig

	GeminiAPIKey string
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiryMin int
}

// MatchingConfig carries the scoring weights and the hard-gate policy.
// Weights come from an optional YAML file so operators can tune them
// without a rebuild; gates come from the environment.
type MatchingConfig struct {
	Weights domain.MatchingWeights
	Gates   domain.HardGatesConfig
}

type LearningConfig struct {
	MinSwipes           int
	ConfidenceThreshold float64
	MaxBoost            float64
}

type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("REDIS_ENABLED", true)
	viper.SetDefault("JWT_ACCESS_EXPIRY_MIN", 60)
	viper.SetDefault("GATE_MAX_DISTANCE_KM", 100.0)
	viper.SetDefault("LEARNING_MIN_SWIPES", 10)
	viper.SetDefault("LEARNING_CONFIDENCE_THRESHOLD", 0.6)
	viper.SetDefault("LEARNING_MAX_BOOST", 0.2)
	viper.SetDefault("LOG_LEVEL", "info")

	gates := domain.DefaultHardGatesConfig()
	gates.MaxDistanceKm = viper.GetFloat64("GATE_MAX_DISTANCE_KM")
	if viper.IsSet("GATE_ALLOW_CROSS_SPECIES") {
		gates.AllowCrossSpecies = viper.GetBool("GATE_ALLOW_CROSS_SPECIES")
	}
	if viper.IsSet("GATE_REQUIRE_VACCINATIONS") {
		gates.RequireVaccinations = viper.GetBool("GATE_REQUIRE_VACCINATIONS")
	}
	if viper.IsSet("GATE_ENFORCE_NEUTER_POLICY") {
		gates.EnforceNeuterPolicy = viper.GetBool("GATE_ENFORCE_NEUTER_POLICY")
	}

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			Enabled:  viper.GetBool("REDIS_ENABLED"),
		},
		JWT: JWTConfig{
			AccessSecret:    viper.GetString("JWT_ACCESS_SECRET"),
			AccessExpiryMin: viper.GetInt("JWT_ACCESS_EXPIRY_MIN"),
		},
		Matching: MatchingConfig{
			Weights: loadWeights(),
			Gates:   gates,
		},
		Learning: LearningConfig{
			MinSwipes:           viper.GetInt("LEARNING_MIN_SWIPES"),
			ConfidenceThreshold: viper.GetFloat64("LEARNING_CONFIDENCE_THRESHOLD"),
			MaxBoost:            viper.GetFloat64("LEARNING_MAX_BOOST"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
	}

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadWeights reads weight overrides from matching.yaml next to the
// binary when present; otherwise the compiled defaults apply.
func loadWeights() domain.MatchingWeights {
	weights := domain.DefaultMatchingWeights()

	v := viper.New()
	v.SetConfigName("matching")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		return weights
	}

	var override domain.MatchingWeights
	if err := v.UnmarshalKey("weights", &override); err != nil {
		return weights
	}
	if override.Sum() == 0 {
		return weights
	}
	return override
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT access secret is required")
	}
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if c.Learning.MinSwipes < 1 {
		return fmt.Errorf("learning min swipes must be positive")
	}
	if c.Learning.ConfidenceThreshold < 0 || c.Learning.ConfidenceThreshold > 1 {
		return fmt.Errorf("learning confidence threshold must be in [0,1]")
	}

	validate := validator.New()
	if err := validate.Struct(&c.Matching.Weights); err != nil {
		return fmt.Errorf("matching weights out of safe range: %w", err)
	}
	if err := validate.Struct(&c.Matching.Gates); err != nil {
		return fmt.Errorf("hard gate config out of safe range: %w", err)
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
