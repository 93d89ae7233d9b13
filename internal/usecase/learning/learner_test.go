package learning

import (
	"context"
	"fmt"
	"testing"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/breeds"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLearner(t *testing.T) (*Learner, *MemoryStore) {
	t.Helper()
	table, err := breeds.Load()
	require.NoError(t, err)

	store := NewMemoryStore()
	learner := NewLearner(DefaultConfig(), domain.DefaultMatchingWeights(), matching.NewScorer(table), store)
	return learner, store
}

// swipeHistory builds n liked swipes over high-temperament targets and n
// passed swipes over low-temperament targets.
func swipeHistory(n int) *domain.UserBehaviorData {
	behavior := &domain.UserBehaviorData{UserID: "user-1"}
	for i := 0; i < n; i++ {
		liked := domain.FactorScores{
			Temperament: 90, Energy: 50, LifeStage: 50, Size: 50, Breed: 50,
			Socialization: 50, Intent: 50, Distance: 50, Health: 50,
		}
		passed := liked
		passed.Temperament = 20

		behavior.SwipeActions = append(behavior.SwipeActions,
			domain.SwipeAction{
				ID:           fmt.Sprintf("like-%d", i),
				UserID:       "user-1",
				TargetPetID:  fmt.Sprintf("pet-liked-%d", i),
				Direction:    domain.SwipeLike,
				FactorScores: &liked,
			},
			domain.SwipeAction{
				ID:           fmt.Sprintf("pass-%d", i),
				UserID:       "user-1",
				TargetPetID:  fmt.Sprintf("pet-passed-%d", i),
				Direction:    domain.SwipePass,
				FactorScores: &passed,
			},
		)
	}
	return behavior
}

func TestLearnWeightsInsufficientData(t *testing.T) {
	learner, store := newTestLearner(t)

	for _, n := range []int{0, 4} { // 4 pairs = 8 swipes, below the minimum of 10
		learned, err := learner.LearnWeights(context.Background(), "user-1", swipeHistory(n))
		require.NoError(t, err)
		assert.Nil(t, learned)
	}

	stored, err := store.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestLearnWeightsBoostsDecisiveFactor(t *testing.T) {
	learner, _ := newTestLearner(t)
	base := domain.DefaultMatchingWeights()

	learned, err := learner.LearnWeights(context.Background(), "user-1", swipeHistory(20))
	require.NoError(t, err)
	require.NotNil(t, learned)

	// Temperament drove every decision: its weight must rise, but never by
	// more than the 20% cap.
	assert.Greater(t, learned.Weights.Temperament, base.Temperament)
	assert.LessOrEqual(t, learned.Weights.Temperament, base.Temperament*1.2)

	// The vector keeps the base sum.
	assert.InDelta(t, base.Sum(), learned.Weights.Sum(), 0.001)

	assert.Equal(t, 40, learned.SampleSize)
	assert.False(t, learned.LearnedAt.IsZero())
}

func TestLearnWeightsConfidenceRange(t *testing.T) {
	learner, _ := newTestLearner(t)

	for _, n := range []int{5, 10, 25, 100} {
		behavior := swipeHistory(n)
		learned, err := learner.LearnWeights(context.Background(), "user-1", behavior)
		require.NoError(t, err)
		require.NotNil(t, learned)

		assert.GreaterOrEqual(t, learned.Confidence, 0.0)
		assert.LessOrEqual(t, learned.Confidence, 1.0)
	}
}

func TestLearnWeightsOverwritesPreviousPass(t *testing.T) {
	learner, store := newTestLearner(t)

	first, err := learner.LearnWeights(context.Background(), "user-1", swipeHistory(10))
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := learner.LearnWeights(context.Background(), "user-1", swipeHistory(30))
	require.NoError(t, err)
	require.NotNil(t, second)

	stored, err := store.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 60, stored.SampleSize)
}

func TestLearnWeightsNeutralWithoutFactorScores(t *testing.T) {
	learner, _ := newTestLearner(t)
	base := domain.DefaultMatchingWeights()

	behavior := &domain.UserBehaviorData{UserID: "user-1"}
	for i := 0; i < 20; i++ {
		behavior.SwipeActions = append(behavior.SwipeActions, domain.SwipeAction{
			ID:        fmt.Sprintf("s-%d", i),
			Direction: domain.SwipeLike,
		})
	}

	learned, err := learner.LearnWeights(context.Background(), "user-1", behavior)
	require.NoError(t, err)
	require.NotNil(t, learned)

	// No recorded factor scores means zero importance everywhere: the
	// learned vector equals the base vector.
	for _, f := range domain.Factors {
		assert.InDelta(t, base.Of(f), learned.Weights.Of(f), 0.001)
	}
}

func TestScoreWithLearningFallsBackOnLowConfidence(t *testing.T) {
	learner, store := newTestLearner(t)

	petA := sampleDog("a")
	petB := sampleDog("b")

	baseline := learner.scorer.Score(petA, petB, learner.BaseWeights())

	skewed := domain.DefaultMatchingWeights()
	skewed.Temperament = 40
	skewed.Distance = 0
	require.NoError(t, store.Put(context.Background(), &domain.LearnedWeights{
		UserID:     "user-1",
		Weights:    skewed,
		Confidence: 0.3,
	}))

	result, err := learner.ScoreWithLearning(context.Background(), petA, petB, "user-1")
	require.NoError(t, err)
	assert.Equal(t, baseline.TotalScore, result.TotalScore)
}

func TestScoreWithLearningUsesConfidentWeights(t *testing.T) {
	learner, store := newTestLearner(t)

	petA := sampleDog("a")
	petB := sampleDog("b")
	petB.Temperament.Traits = []string{"shy", "lazy"} // tank the temperament factor

	skewed := domain.MatchingWeights{Temperament: 100}
	require.NoError(t, store.Put(context.Background(), &domain.LearnedWeights{
		UserID:     "user-1",
		Weights:    skewed,
		Confidence: 0.9,
	}))

	result, err := learner.ScoreWithLearning(context.Background(), petA, petB, "user-1")
	require.NoError(t, err)

	baseline := learner.scorer.Score(petA, petB, learner.BaseWeights())
	assert.Less(t, result.TotalScore, baseline.TotalScore)
}

func sampleDog(id string) *domain.PetProfile {
	return &domain.PetProfile{
		ID:          id,
		Species:     domain.SpeciesDog,
		BreedID:     "golden-retriever",
		AgeMonths:   36,
		Size:        domain.SizeLarge,
		Health:      domain.Health{VaccinationsUpToDate: true},
		Temperament: domain.Temperament{Energy: 3, Traits: []string{"friendly", "playful"}},
		Social:      domain.Socialization{WithDogs: 4, WithCats: 2, WithStrangers: 3},
		Intents:     []domain.Intent{domain.IntentPlaydate},
		Location:    domain.Location{Lat: 42.70, Lng: 23.32},
		IsActive:    true,
	}
}
