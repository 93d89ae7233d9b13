package learning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

const redisKeyPrefix = "learned_weights:"

// RedisStore keeps learned weight vectors in Redis so they survive restarts
// and are shared across instances. Single-key SET is atomic, which gives the
// last-write-wins semantics the learner expects.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*domain.LearnedWeights, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read learned weights: %w", err)
	}

	var learned domain.LearnedWeights
	if err := json.Unmarshal(payload, &learned); err != nil {
		return nil, fmt.Errorf("failed to decode learned weights: %w", err)
	}
	return &learned, nil
}

func (s *RedisStore) Put(ctx context.Context, learned *domain.LearnedWeights) error {
	payload, err := json.Marshal(learned)
	if err != nil {
		return fmt.Errorf("failed to encode learned weights: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+learned.UserID, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store learned weights: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to delete learned weights: %w", err)
	}
	return nil
}
