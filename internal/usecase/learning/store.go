package learning

import (
	"context"
	"sync"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

// Store holds the per-user learned weight vectors. One value per user,
// overwritten on every learning pass. Implementations must serialize writes
// for the same user id; last write wins.
type Store interface {
	Get(ctx context.Context, userID string) (*domain.LearnedWeights, error)
	Put(ctx context.Context, learned *domain.LearnedWeights) error
	Delete(ctx context.Context, userID string) error
}

// MemoryStore is the in-process Store used by tests and single-node
// deployments. A single mutex serializes all writes, which trivially
// satisfies the per-user single-writer requirement.
type MemoryStore struct {
	mu      sync.RWMutex
	weights map[string]domain.LearnedWeights
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{weights: make(map[string]domain.LearnedWeights)}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*domain.LearnedWeights, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	learned, ok := s.weights[userID]
	if !ok {
		return nil, nil
	}
	copied := learned
	return &copied, nil
}

func (s *MemoryStore) Put(_ context.Context, learned *domain.LearnedWeights) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weights[learned.UserID] = *learned
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.weights, userID)
	return nil
}
