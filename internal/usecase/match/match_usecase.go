package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/matching"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/repository"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/usecase/learning"
)

// MatchUseCase runs the eligibility-and-score operation: gate first, and
// only when the gate passes, score the pair with the requesting owner's
// learned weights.
type MatchUseCase struct {
	petRepo   repository.PetRepository
	prefsRepo repository.PreferencesRepository
	learner   *learning.Learner
	gates     domain.HardGatesConfig
}

func NewMatchUseCase(
	petRepo repository.PetRepository,
	prefsRepo repository.PreferencesRepository,
	learner *learning.Learner,
	gates domain.HardGatesConfig,
) *MatchUseCase {
	return &MatchUseCase{
		petRepo:   petRepo,
		prefsRepo: prefsRepo,
		learner:   learner,
		gates:     gates,
	}
}

// CheckResult is the outcome of one eligibility-and-score check. Score is
// present only when the gate passed.
type CheckResult struct {
	Gate  matching.GateResult   `json:"gate"`
	Score *matching.ScoreResult `json:"score,omitempty"`
}

// CheckMatch evaluates the hard gates for petA against petB and, if they
// pass, computes the compatibility score on petA's owner's behalf.
func (uc *MatchUseCase) CheckMatch(ctx context.Context, petAID, petBID string) (*CheckResult, error) {
	petA, err := uc.petRepo.GetByID(ctx, petAID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pet %s: %w", petAID, err)
	}
	petB, err := uc.petRepo.GetByID(ctx, petBID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pet %s: %w", petBID, err)
	}
	if !petA.IsActive || !petB.IsActive {
		return nil, domain.ErrPetInactive
	}

	prefs, err := uc.resolvePreferences(ctx, petA.OwnerID)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Gate: matching.EvaluateGates(petA, petB, prefs, uc.gates)}
	if !result.Gate.Passed {
		return result, nil
	}

	score, err := uc.learner.ScoreWithLearning(ctx, petA, petB, petA.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to score pair: %w", err)
	}
	result.Score = &score
	return result, nil
}

// resolvePreferences falls back to policy defaults for owners who never
// saved explicit preferences.
func (uc *MatchUseCase) resolvePreferences(ctx context.Context, ownerID string) (*domain.OwnerPreferences, error) {
	prefs, err := uc.prefsRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferencesNotFound) {
			return &domain.OwnerPreferences{
				OwnerID:       ownerID,
				MaxDistanceKm: uc.gates.MaxDistanceKm,
			}, nil
		}
		return nil, fmt.Errorf("failed to resolve owner preferences: %w", err)
	}
	return prefs, nil
}
