package repository

import (
	"context"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

// BehaviorRepository is the behavior/event log: swipes, matches, message
// activity and view-time samples. The weight learner reads the aggregated
// bundle; the swipe flow appends to it.
type BehaviorRepository interface {
	CreateSwipe(ctx context.Context, swipe *domain.SwipeAction) error
	GetSwipe(ctx context.Context, petID, targetPetID string) (*domain.SwipeAction, error)
	CheckMutualLike(ctx context.Context, petID, targetPetID string) (bool, error)
	CreateMatch(ctx context.Context, match *domain.MatchRecord) error
	ListViewedPetIDs(ctx context.Context, petID string) ([]string, error)
	GetUserBehavior(ctx context.Context, userID string) (*domain.UserBehaviorData, error)
}

// SimilarityRepository reads the externally precomputed similar-user
// records consumed by the hybrid recommender.
type SimilarityRepository interface {
	GetSimilarUsers(ctx context.Context, userID string, limit int) ([]domain.SimilarUser, error)
}
