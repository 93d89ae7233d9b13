package profile

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/infrastructure/gemini"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/repository"
)

type ProfileUseCase struct {
	petRepo   repository.PetRepository
	prefsRepo repository.PreferencesRepository
	gemini    *gemini.Client
}

func NewProfileUseCase(
	petRepo repository.PetRepository,
	prefsRepo repository.PreferencesRepository,
	geminiClient *gemini.Client,
) *ProfileUseCase {
	return &ProfileUseCase{
		petRepo:   petRepo,
		prefsRepo: prefsRepo,
		gemini:    geminiClient,
	}
}

// CreatePetRequest carries everything an owner submits at onboarding.
// Coordinates are validated here and rounded before storage so precise
// locations never persist.
type CreatePetRequest struct {
	Name         string               `json:"name" binding:"required,min=1,max=64"`
	Species      domain.Species       `json:"species" binding:"required,oneof=dog cat"`
	BreedID      string               `json:"breed_id" binding:"required"`
	Sex          domain.Sex           `json:"sex" binding:"required,oneof=male female"`
	NeuterStatus domain.NeuterStatus  `json:"neuter_status" binding:"required,oneof=intact neutered unknown"`
	AgeMonths    int                  `json:"age_months" binding:"required,min=1,max=360"`
	Size         domain.SizeClass     `json:"size" binding:"required,oneof=toy small medium large giant"`
	WeightKg     *float64             `json:"weight_kg,omitempty" binding:"omitempty,min=0.1,max=120"`
	Health       domain.Health        `json:"health"`
	Temperament  domain.Temperament   `json:"temperament" binding:"required"`
	Social       domain.Socialization `json:"socialization"`
	Intents      []domain.Intent      `json:"intents" binding:"required,min=1,dive,oneof=playdate companionship adoption breeding"`
	Interests    []string             `json:"interests" binding:"max=20"`
	Lat          float64              `json:"lat" binding:"min=-90,max=90"`
	Lng          float64              `json:"lng" binding:"min=-180,max=180"`
	City         string               `json:"city"`
	Country      string               `json:"country"`
	Timezone     string               `json:"timezone"`
}

type UpdatePetRequest struct {
	Name        *string               `json:"name,omitempty" binding:"omitempty,min=1,max=64"`
	AgeMonths   *int                  `json:"age_months,omitempty" binding:"omitempty,min=1,max=360"`
	Size        *domain.SizeClass     `json:"size,omitempty" binding:"omitempty,oneof=toy small medium large giant"`
	WeightKg    *float64              `json:"weight_kg,omitempty" binding:"omitempty,min=0.1,max=120"`
	Health      *domain.Health        `json:"health,omitempty"`
	Temperament *domain.Temperament   `json:"temperament,omitempty"`
	Social      *domain.Socialization `json:"socialization,omitempty"`
	Intents     []domain.Intent       `json:"intents,omitempty" binding:"omitempty,min=1,dive,oneof=playdate companionship adoption breeding"`
	Interests   []string              `json:"interests,omitempty" binding:"max=20"`
	Lat         *float64              `json:"lat,omitempty" binding:"omitempty,min=-90,max=90"`
	Lng         *float64              `json:"lng,omitempty" binding:"omitempty,min=-180,max=180"`
	City        *string               `json:"city,omitempty"`
	Country     *string               `json:"country,omitempty"`
	Timezone    *string               `json:"timezone,omitempty"`
	BlockedIDs  []string              `json:"blocked_ids,omitempty" binding:"omitempty,dive,uuid"`
}

type PreferencesRequest struct {
	MaxDistanceKm     float64                 `json:"max_distance_km" binding:"required,min=1,max=1000"`
	Species           []domain.Species        `json:"species" binding:"omitempty,dive,oneof=dog cat"`
	AllowCrossSpecies bool                    `json:"allow_cross_species"`
	Sizes             []domain.SizeClass      `json:"sizes" binding:"omitempty,dive,oneof=toy small medium large giant"`
	Intents           []domain.Intent         `json:"intents" binding:"omitempty,dive,oneof=playdate companionship adoption breeding"`
	MinLifeStage      *domain.LifeStage       `json:"min_life_stage,omitempty" binding:"omitempty,oneof=puppy kitten adult senior"`
	MaxLifeStage      *domain.LifeStage       `json:"max_life_stage,omitempty" binding:"omitempty,oneof=puppy kitten adult senior"`
	RequireVaccinated bool                    `json:"require_vaccinated"`
	Schedule          []domain.ScheduleWindow `json:"schedule,omitempty"`
	GlobalSearch      bool                    `json:"global_search"`
}

func (uc *ProfileUseCase) CreatePet(ctx context.Context, ownerID string, req *CreatePetRequest) (*domain.PetProfile, error) {
	now := time.Now()
	pet := &domain.PetProfile{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Name:         req.Name,
		Species:      req.Species,
		BreedID:      req.BreedID,
		Sex:          req.Sex,
		NeuterStatus: req.NeuterStatus,
		AgeMonths:    req.AgeMonths,
		Size:         req.Size,
		WeightKg:     req.WeightKg,
		Health:       req.Health,
		Temperament:  req.Temperament,
		Social:       req.Social,
		Intents:      req.Intents,
		Interests:    req.Interests,
		Location: domain.Location{
			Lat:      roundCoord(req.Lat),
			Lng:      roundCoord(req.Lng),
			City:     req.City,
			Country:  req.Country,
			Timezone: req.Timezone,
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.petRepo.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("failed to create pet profile: %w", err)
	}
	return pet, nil
}

func (uc *ProfileUseCase) GetPet(ctx context.Context, petID string) (*domain.PetProfile, error) {
	return uc.petRepo.GetByID(ctx, petID)
}

func (uc *ProfileUseCase) ListOwnPets(ctx context.Context, ownerID string) ([]*domain.PetProfile, error) {
	return uc.petRepo.GetByOwnerID(ctx, ownerID)
}

func (uc *ProfileUseCase) UpdatePet(ctx context.Context, ownerID, petID string, req *UpdatePetRequest) (*domain.PetProfile, error) {
	pet, err := uc.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.AgeMonths != nil {
		pet.AgeMonths = *req.AgeMonths
	}
	if req.Size != nil {
		pet.Size = *req.Size
	}
	if req.WeightKg != nil {
		pet.WeightKg = req.WeightKg
	}
	if req.Health != nil {
		pet.Health = *req.Health
	}
	if req.Temperament != nil {
		pet.Temperament = *req.Temperament
	}
	if req.Social != nil {
		pet.Social = *req.Social
	}
	if req.Intents != nil {
		pet.Intents = req.Intents
	}
	if req.Interests != nil {
		pet.Interests = req.Interests
	}
	if req.Lat != nil {
		pet.Location.Lat = roundCoord(*req.Lat)
	}
	if req.Lng != nil {
		pet.Location.Lng = roundCoord(*req.Lng)
	}
	if req.City != nil {
		pet.Location.City = *req.City
	}
	if req.Country != nil {
		pet.Location.Country = *req.Country
	}
	if req.Timezone != nil {
		pet.Location.Timezone = *req.Timezone
	}
	if req.BlockedIDs != nil {
		pet.BlockedIDs = req.BlockedIDs
	}
	pet.UpdatedAt = time.Now()

	if err := uc.petRepo.Update(ctx, pet); err != nil {
		return nil, fmt.Errorf("failed to update pet profile: %w", err)
	}
	return pet, nil
}

// Deactivate soft-removes the profile from matching and recommendations
// without losing its swipe history.
func (uc *ProfileUseCase) Deactivate(ctx context.Context, ownerID, petID string) error {
	if _, err := uc.ownedPet(ctx, ownerID, petID); err != nil {
		return err
	}
	if err := uc.petRepo.SetActive(ctx, petID, false); err != nil {
		return fmt.Errorf("failed to deactivate pet profile: %w", err)
	}
	return nil
}

func (uc *ProfileUseCase) Reactivate(ctx context.Context, ownerID, petID string) error {
	if _, err := uc.ownedPet(ctx, ownerID, petID); err != nil {
		return err
	}
	if err := uc.petRepo.SetActive(ctx, petID, true); err != nil {
		return fmt.Errorf("failed to reactivate pet profile: %w", err)
	}
	return nil
}

// GenerateHints asks Gemini for trait suggestions and a bio summary and
// persists them on the profile. Hints are advisory only and never feed
// the matching core.
func (uc *ProfileUseCase) GenerateHints(ctx context.Context, ownerID, petID string) (*domain.AIHints, error) {
	pet, err := uc.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	if uc.gemini == nil {
		return nil, fmt.Errorf("hint generation is not configured")
	}

	hints, err := uc.gemini.SuggestProfileHints(ctx, pet)
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile hints: %w", err)
	}

	if err := uc.petRepo.UpdateAIHints(ctx, petID, hints); err != nil {
		return nil, fmt.Errorf("failed to save profile hints: %w", err)
	}
	return hints, nil
}

func (uc *ProfileUseCase) GetPreferences(ctx context.Context, ownerID string) (*domain.OwnerPreferences, error) {
	return uc.prefsRepo.GetByOwnerID(ctx, ownerID)
}

func (uc *ProfileUseCase) UpsertPreferences(ctx context.Context, ownerID string, req *PreferencesRequest) (*domain.OwnerPreferences, error) {
	prefs := &domain.OwnerPreferences{
		OwnerID:           ownerID,
		MaxDistanceKm:     req.MaxDistanceKm,
		Species:           req.Species,
		AllowCrossSpecies: req.AllowCrossSpecies,
		Sizes:             req.Sizes,
		Intents:           req.Intents,
		MinLifeStage:      req.MinLifeStage,
		MaxLifeStage:      req.MaxLifeStage,
		RequireVaccinated: req.RequireVaccinated,
		Schedule:          req.Schedule,
		GlobalSearch:      req.GlobalSearch,
		UpdatedAt:         time.Now(),
	}
	if err := uc.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs, nil
}

func (uc *ProfileUseCase) ownedPet(ctx context.Context, ownerID, petID string) (*domain.PetProfile, error) {
	pet, err := uc.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet.OwnerID != ownerID {
		return nil, domain.ErrNotProfileOwner
	}
	return pet, nil
}

// roundCoord truncates a coordinate to two decimal places, roughly 1km
// of precision at the equator.
func roundCoord(v float64) float64 {
	return math.Round(v*100) / 100
}
