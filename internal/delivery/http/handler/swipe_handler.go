package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/swipe"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// CreateSwipe handles POST /swipes
// @Summary Record a swipe
// @Description Record a like/pass/superlike and check for a mutual match
// @Tags swipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.SwipeRequest true "Swipe data"
// @Success 201 {object} swipe.SwipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /swipes [post]
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req swipe.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.swipeUseCase.CreateSwipe(c.Request.Context(), owner, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPetNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "pet not found"})
		case errors.Is(err, domain.ErrNotProfileOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the profile owner"})
		case errors.Is(err, domain.ErrCannotSwipeSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot swipe on own pet"})
		case errors.Is(err, domain.ErrSwipeAlreadyExists):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "swipe already recorded"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to record swipe"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
