package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/delivery/http/handler"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/delivery/http/middleware"
)

type Router struct {
	petHandler       *handler.PetHandler
	matchHandler     *handler.MatchHandler
	recommendHandler *handler.RecommendHandler
	swipeHandler     *handler.SwipeHandler
	learningHandler  *handler.LearningHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(
	petHandler *handler.PetHandler,
	matchHandler *handler.MatchHandler,
	recommendHandler *handler.RecommendHandler,
	swipeHandler *handler.SwipeHandler,
	learningHandler *handler.LearningHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		petHandler:       petHandler,
		matchHandler:     matchHandler,
		recommendHandler: recommendHandler,
		swipeHandler:     swipeHandler,
		learningHandler:  learningHandler,
		authMiddleware:   authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Pet profile routes
			pets := protected.Group("/pets")
			{
				pets.POST("", r.petHandler.CreatePet)
				pets.GET("", r.petHandler.ListMyPets)
				pets.GET("/:pet_id", r.petHandler.GetPet)
				pets.PUT("/:pet_id", r.petHandler.UpdatePet)
				pets.DELETE("/:pet_id", r.petHandler.DeactivatePet)
				pets.POST("/:pet_id/reactivate", r.petHandler.ReactivatePet)
				pets.POST("/:pet_id/hints", r.petHandler.GenerateHints)
			}

			// Owner preference routes
			preferences := protected.Group("/preferences")
			{
				preferences.GET("", r.petHandler.GetPreferences)
				preferences.PUT("", r.petHandler.UpsertPreferences)
			}

			// Matching routes
			protected.POST("/match/check", r.matchHandler.CheckMatch)
			protected.POST("/recommendations", r.recommendHandler.Browse)

			// Swipe routes
			protected.POST("/swipes", r.swipeHandler.CreateSwipe)

			// Learned weight routes
			learning := protected.Group("/learning")
			{
				learning.GET("/weights", r.learningHandler.GetWeights)
				learning.POST("/refresh", r.learningHandler.Refresh)
			}
		}
	}

	return router
}
