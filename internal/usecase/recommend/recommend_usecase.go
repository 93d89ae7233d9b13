package recommend

import (
	"context"
	"fmt"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/repository"
)

const defaultSimilarUserLimit = 20

type RecommendUseCase struct {
	petRepo        repository.PetRepository
	behaviorRepo   repository.BehaviorRepository
	similarityRepo repository.SimilarityRepository
}

func NewRecommendUseCase(
	petRepo repository.PetRepository,
	behaviorRepo repository.BehaviorRepository,
	similarityRepo repository.SimilarityRepository,
) *RecommendUseCase {
	return &RecommendUseCase{
		petRepo:        petRepo,
		behaviorRepo:   behaviorRepo,
		similarityRepo: similarityRepo,
	}
}

// BrowseRequest is one ranking call: a reference pet, the candidate pool,
// and optional explicit exclusions on top of the swipe history.
type BrowseRequest struct {
	PetID        string                    `json:"pet_id" binding:"required,uuid"`
	CandidateIDs []string                  `json:"candidate_ids" binding:"required,min=1,max=200,dive,uuid"`
	ExcludeIDs   []string                  `json:"exclude_ids" binding:"omitempty,max=500,dive,uuid"`
	Limit        int                       `json:"limit" binding:"omitempty,min=1,max=100"`
	StaticPrefs  *domain.StaticPreferences `json:"static_preferences,omitempty"`
}

// BrowseRecommendations resolves the profiles and peer-similarity data,
// then delegates the actual ranking to Rank. Everything the pet's owner has
// already swiped on is excluded along with the request's explicit ids.
func (uc *RecommendUseCase) BrowseRecommendations(ctx context.Context, ownerID string, req *BrowseRequest) ([]Recommendation, error) {
	referencePet, err := uc.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reference pet: %w", err)
	}
	if referencePet.OwnerID != ownerID {
		return nil, domain.ErrNotProfileOwner
	}

	candidates, err := uc.petRepo.GetByIDs(ctx, req.CandidateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve candidates: %w", err)
	}

	viewed, err := uc.behaviorRepo.ListViewedPetIDs(ctx, req.PetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load swipe history: %w", err)
	}
	viewed = append(viewed, req.ExcludeIDs...)

	similarUsers, err := uc.similarityRepo.GetSimilarUsers(ctx, ownerID, defaultSimilarUserLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load similar users: %w", err)
	}

	recommendations := Rank(RankInput{
		ReferencePet: referencePet,
		Candidates:   candidates,
		ViewedIDs:    viewed,
		SimilarUsers: similarUsers,
		StaticPrefs:  req.StaticPrefs,
	})

	if req.Limit > 0 && len(recommendations) > req.Limit {
		recommendations = recommendations[:req.Limit]
	}
	return recommendations, nil
}
