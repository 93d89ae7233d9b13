package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

type checkMatchRequest struct {
	PetID       string `json:"pet_id" binding:"required,uuid"`
	TargetPetID string `json:"target_pet_id" binding:"required,uuid"`
}

// CheckMatch handles POST /match/check
// @Summary Check pair compatibility
// @Description Run hard gates for a pet pair and, if eligible, score the pair
// @Tags match
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body checkMatchRequest true "Pet pair"
// @Success 200 {object} match.CheckResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /match/check [post]
func (h *MatchHandler) CheckMatch(c *gin.Context) {
	if _, ok := ownerID(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req checkMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.matchUseCase.CheckMatch(c.Request.Context(), req.PetID, req.TargetPetID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPetNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "pet not found"})
		case errors.Is(err, domain.ErrPetInactive):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "pet profile is inactive"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to check match"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
