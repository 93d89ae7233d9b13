package learning

import (
	"context"
	"fmt"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/repository"
)

// Service wires the learner to the behavior log so callers can trigger a
// learning pass with just a user id.
type Service struct {
	learner      *Learner
	behaviorRepo repository.BehaviorRepository
}

func NewService(learner *Learner, behaviorRepo repository.BehaviorRepository) *Service {
	return &Service{
		learner:      learner,
		behaviorRepo: behaviorRepo,
	}
}

// Refresh recomputes the user's learned weights from their full behavior
// bundle. Returns nil when the history is still too small.
func (s *Service) Refresh(ctx context.Context, userID string) (*domain.LearnedWeights, error) {
	behavior, err := s.behaviorRepo.GetUserBehavior(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load behavior for user %s: %w", userID, err)
	}
	return s.learner.LearnWeights(ctx, userID, behavior)
}

// Weights returns the stored learned vector, or nil when none exists.
func (s *Service) Weights(ctx context.Context, userID string) (*domain.LearnedWeights, error) {
	return s.learner.GetLearnedWeights(ctx, userID)
}
