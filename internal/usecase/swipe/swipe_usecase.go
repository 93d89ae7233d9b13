package swipe

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/repository"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/learning"
)

type SwipeUseCase struct {
	behaviorRepo repository.BehaviorRepository
	petRepo      repository.PetRepository
	learner      *learning.Learner
}

func NewSwipeUseCase(
	behaviorRepo repository.BehaviorRepository,
	petRepo repository.PetRepository,
	learner *learning.Learner,
) *SwipeUseCase {
	return &SwipeUseCase{
		behaviorRepo: behaviorRepo,
		petRepo:      petRepo,
		learner:      learner,
	}
}

// SwipeRequest represents one swipe action
type SwipeRequest struct {
	PetID       string                `json:"pet_id" binding:"required,uuid"`
	TargetPetID string                `json:"target_pet_id" binding:"required,uuid"`
	Direction   domain.SwipeDirection `json:"direction" binding:"required,oneof=like pass superlike"`
}

// SwipeResponse represents the swipe result
type SwipeResponse struct {
	IsMatch bool                `json:"is_match"`
	Swipe   *domain.SwipeAction `json:"swipe"`
	Match   *domain.MatchRecord `json:"match,omitempty"`
}

// CreateSwipe records a swipe together with the factor scores the scorer
// produced for the pair at swipe time, then checks for a mutual like. The
// recorded scores are what lets the weight learner attribute decisions to
// factors later.
func (uc *SwipeUseCase) CreateSwipe(ctx context.Context, ownerID string, req *SwipeRequest) (*SwipeResponse, error) {
	if req.PetID == req.TargetPetID {
		return nil, domain.ErrCannotSwipeSelf
	}

	pet, err := uc.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve swiping pet: %w", err)
	}
	if pet.OwnerID != ownerID {
		return nil, domain.ErrNotProfileOwner
	}

	target, err := uc.petRepo.GetByID(ctx, req.TargetPetID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target pet: %w", err)
	}
	if pet.OwnerID == target.OwnerID {
		return nil, domain.ErrCannotSwipeSelf
	}

	existing, err := uc.behaviorRepo.GetSwipe(ctx, req.PetID, req.TargetPetID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing swipe: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrSwipeAlreadyExists
	}

	scored, err := uc.learner.ScoreWithLearning(ctx, pet, target, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to score swipe pair: %w", err)
	}

	swipe := &domain.SwipeAction{
		ID:           uuid.NewString(),
		UserID:       ownerID,
		PetID:        req.PetID,
		TargetPetID:  req.TargetPetID,
		Direction:    req.Direction,
		FactorScores: &scored.FactorScores,
	}
	if err := uc.behaviorRepo.CreateSwipe(ctx, swipe); err != nil {
		return nil, fmt.Errorf("failed to create swipe: %w", err)
	}

	response := &SwipeResponse{Swipe: swipe}
	if !swipe.IsLike() {
		return response, nil
	}

	// Refresh the swiper's learned weights off the request path; a failed
	// refresh never affects the swipe itself.
	go uc.refreshLearnedWeights(ownerID)

	mutual, err := uc.behaviorRepo.CheckMutualLike(ctx, req.PetID, req.TargetPetID)
	if err != nil {
		log.Printf("mutual like check failed for pet %s: %v", req.PetID, err)
		return response, nil
	}
	if !mutual {
		return response, nil
	}

	match, err := uc.createMatch(ctx, ownerID, pet.ID, target)
	if err != nil {
		log.Printf("match creation failed for pets %s/%s: %v", pet.ID, target.ID, err)
		return response, nil
	}
	response.IsMatch = true
	response.Match = match
	return response, nil
}

// createMatch writes one match record per side so each owner's behavior
// bundle sees their own match history.
func (uc *SwipeUseCase) createMatch(ctx context.Context, ownerID, petID string, target *domain.PetProfile) (*domain.MatchRecord, error) {
	match := &domain.MatchRecord{
		ID:         uuid.NewString(),
		UserID:     ownerID,
		PetID:      petID,
		OtherPetID: target.ID,
		IsActive:   true,
	}
	if err := uc.behaviorRepo.CreateMatch(ctx, match); err != nil {
		return nil, err
	}

	mirror := &domain.MatchRecord{
		ID:         uuid.NewString(),
		UserID:     target.OwnerID,
		PetID:      target.ID,
		OtherPetID: petID,
		IsActive:   true,
	}
	if err := uc.behaviorRepo.CreateMatch(ctx, mirror); err != nil {
		return nil, err
	}
	return match, nil
}

func (uc *SwipeUseCase) refreshLearnedWeights(ownerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	behavior, err := uc.behaviorRepo.GetUserBehavior(ctx, ownerID)
	if err != nil {
		log.Printf("behavior load failed for user %s: %v", ownerID, err)
		return
	}

	if _, err := uc.learner.LearnWeights(ctx, ownerID, behavior); err != nil {
		log.Printf("weight learning failed for user %s: %v", ownerID, err)
	}
}
