package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/breeds"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/config"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/delivery/http"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/delivery/http/handler"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/delivery/http/middleware"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/infrastructure/database"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/infrastructure/gemini"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/infrastructure/server"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/matching"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/repository/postgres"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/learning"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/match"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/profile"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/recommend"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/swipe"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis backs the learned-weights store; a disabled Redis falls back
	// to the in-memory store so single-node deployments still work.
	var redisClient *redis.Client
	var weightStore learning.Store
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		weightStore = learning.NewRedisStore(redisClient)
	} else {
		weightStore = learning.NewMemoryStore()
	}

	// Initialize Gemini Client
	geminiClient, err := gemini.NewClient(cfg.GeminiAPIKey)
	if err != nil {
		fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
		// Don't fail, just continue without AI features
	}

	// Load the breed reference data
	breedTable, err := breeds.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load breed table: %w", err)
	}

	// Initialize repositories
	petRepo := postgres.NewPetRepository(db)
	prefsRepo := postgres.NewPreferencesRepository(db)
	behaviorRepo := postgres.NewBehaviorRepository(db)
	similarityRepo := postgres.NewSimilarityRepository(db)

	// Initialize the matching core
	scorer := matching.NewScorer(breedTable)

	learnerCfg := learning.DefaultConfig()
	learnerCfg.MinSampleSize = cfg.Learning.MinSwipes
	learnerCfg.ConfidenceThreshold = cfg.Learning.ConfidenceThreshold
	learnerCfg.MaxAdjustment = cfg.Learning.MaxBoost
	learner := learning.NewLearner(learnerCfg, cfg.Matching.Weights, scorer, weightStore)

	// Initialize use cases
	profileUseCase := profile.NewProfileUseCase(petRepo, prefsRepo, geminiClient)
	matchUseCase := match.NewMatchUseCase(petRepo, prefsRepo, learner, cfg.Matching.Gates)
	recommendUseCase := recommend.NewRecommendUseCase(petRepo, behaviorRepo, similarityRepo)
	swipeUseCase := swipe.NewSwipeUseCase(behaviorRepo, petRepo, learner)
	learningService := learning.NewService(learner, behaviorRepo)

	// Initialize handlers
	petHandler := handler.NewPetHandler(profileUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	recommendHandler := handler.NewRecommendHandler(recommendUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	learningHandler := handler.NewLearningHandler(learningService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)

	// Initialize router
	router := http.NewRouter(
		petHandler,
		matchHandler,
		recommendHandler,
		swipeHandler,
		learningHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
