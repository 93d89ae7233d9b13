package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/recommend"
)

type RecommendHandler struct {
	recommendUseCase *recommend.RecommendUseCase
}

func NewRecommendHandler(recommendUseCase *recommend.RecommendUseCase) *RecommendHandler {
	return &RecommendHandler{
		recommendUseCase: recommendUseCase,
	}
}

// Browse handles POST /recommendations
// @Summary Rank candidate pets
// @Description Rank a candidate pool for the given pet using hybrid scoring
// @Tags recommendations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body recommend.BrowseRequest true "Ranking request"
// @Success 200 {array} recommend.Recommendation
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recommendations [post]
func (h *RecommendHandler) Browse(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req recommend.BrowseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	recs, err := h.recommendUseCase.BrowseRecommendations(c.Request.Context(), owner, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPetNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "pet not found"})
		case errors.Is(err, domain.ErrNotProfileOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the profile owner"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build recommendations"})
		}
		return
	}

	c.JSON(http.StatusOK, recs)
}
