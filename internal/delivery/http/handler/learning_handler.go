package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/learning"
)

type LearningHandler struct {
	learningService *learning.Service
}

func NewLearningHandler(learningService *learning.Service) *LearningHandler {
	return &LearningHandler{
		learningService: learningService,
	}
}

// GetWeights handles GET /learning/weights
// @Summary Get learned weights
// @Description Get the owner's learned matching weights, if any
// @Tags learning
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.LearnedWeights
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /learning/weights [get]
func (h *LearningHandler) GetWeights(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	weights, err := h.learningService.Weights(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load learned weights"})
		return
	}
	if weights == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not enough swipe history yet"})
		return
	}

	c.JSON(http.StatusOK, weights)
}

// Refresh handles POST /learning/refresh
// @Summary Recompute learned weights
// @Description Recompute the owner's learned weights from swipe history
// @Tags learning
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.LearnedWeights
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /learning/refresh [post]
func (h *LearningHandler) Refresh(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	weights, err := h.learningService.Refresh(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to refresh learned weights"})
		return
	}
	if weights == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not enough swipe history yet"})
		return
	}

	c.JSON(http.StatusOK, weights)
}
