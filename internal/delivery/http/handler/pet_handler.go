package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/profile"
)

type PetHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewPetHandler(profileUseCase *profile.ProfileUseCase) *PetHandler {
	return &PetHandler{
		profileUseCase: profileUseCase,
	}
}

// CreatePet handles POST /pets
// @Summary Create pet profile
// @Description Create a new pet profile for the authenticated owner
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.CreatePetRequest true "Pet profile data"
// @Success 201 {object} domain.PetProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pets [post]
func (h *PetHandler) CreatePet(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req profile.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	pet, err := h.profileUseCase.CreatePet(c.Request.Context(), owner, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create pet profile"})
		return
	}

	c.JSON(http.StatusCreated, pet)
}

// GetPet handles GET /pets/:pet_id
// @Summary Get pet profile
// @Description Get a pet profile by id
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {object} domain.PetProfile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pets/{pet_id} [get]
func (h *PetHandler) GetPet(c *gin.Context) {
	if _, ok := ownerID(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	pet, err := h.profileUseCase.GetPet(c.Request.Context(), c.Param("pet_id"))
	if err != nil {
		if errors.Is(err, domain.ErrPetNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get pet profile"})
		return
	}

	c.JSON(http.StatusOK, pet)
}

// ListMyPets handles GET /pets
// @Summary List my pets
// @Description List all pet profiles of the authenticated owner
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.PetProfile
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pets [get]
func (h *PetHandler) ListMyPets(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	pets, err := h.profileUseCase.ListOwnPets(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list pets"})
		return
	}

	c.JSON(http.StatusOK, pets)
}

// UpdatePet handles PUT /pets/:pet_id
// @Summary Update pet profile
// @Description Update fields of an owned pet profile
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Param request body profile.UpdatePetRequest true "Fields to update"
// @Success 200 {object} domain.PetProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pets/{pet_id} [put]
func (h *PetHandler) UpdatePet(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req profile.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	pet, err := h.profileUseCase.UpdatePet(c.Request.Context(), owner, c.Param("pet_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPetNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "pet not found"})
		case errors.Is(err, domain.ErrNotProfileOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the profile owner"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update pet profile"})
		}
		return
	}

	c.JSON(http.StatusOK, pet)
}

// DeactivatePet handles DELETE /pets/:pet_id
// @Summary Deactivate pet profile
// @Description Remove an owned pet profile from matching without deleting it
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pets/{pet_id} [delete]
func (h *PetHandler) DeactivatePet(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.profileUseCase.Deactivate(c.Request.Context(), owner, c.Param("pet_id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrPetNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "pet not found"})
		case errors.Is(err, domain.ErrNotProfileOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the profile owner"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to deactivate pet profile"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ReactivatePet handles POST /pets/:pet_id/reactivate
// @Summary Reactivate pet profile
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pets/{pet_id}/reactivate [post]
func (h *PetHandler) ReactivatePet(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.profileUseCase.Reactivate(c.Request.Context(), owner, c.Param("pet_id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrPetNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "pet not found"})
		case errors.Is(err, domain.ErrNotProfileOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the profile owner"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to reactivate pet profile"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateHints handles POST /pets/:pet_id/hints
// @Summary Generate AI profile hints
// @Description Generate trait suggestions and a bio summary for an owned pet
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {object} domain.AIHints
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pets/{pet_id}/hints [post]
func (h *PetHandler) GenerateHints(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	hints, err := h.profileUseCase.GenerateHints(c.Request.Context(), owner, c.Param("pet_id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPetNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "pet not found"})
		case errors.Is(err, domain.ErrNotProfileOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the profile owner"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate hints"})
		}
		return
	}

	c.JSON(http.StatusOK, hints)
}

// GetPreferences handles GET /preferences
// @Summary Get owner preferences
// @Tags preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.OwnerPreferences
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /preferences [get]
func (h *PetHandler) GetPreferences(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	prefs, err := h.profileUseCase.GetPreferences(c.Request.Context(), owner)
	if err != nil {
		if errors.Is(err, domain.ErrPreferencesNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "preferences not set"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpsertPreferences handles PUT /preferences
// @Summary Set owner preferences
// @Tags preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.PreferencesRequest true "Preferences"
// @Success 200 {object} domain.OwnerPreferences
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /preferences [put]
func (h *PetHandler) UpsertPreferences(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req profile.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	prefs, err := h.profileUseCase.UpsertPreferences(c.Request.Context(), owner, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
