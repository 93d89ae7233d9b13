// Package learning adjusts a user's matching weights from their observed
// swipe behavior. The adjustment is a bounded heuristic nudge on top of the
// configured base vector, not a trained model: each factor's weight moves by
// at most a configured fraction, and the vector keeps its original sum.
package learning

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/matching"
)

// Config carries the learner's tunables. The defaults are empirically
// chosen; deployments override them through the main configuration file.
type Config struct {
	// MinSampleSize is the number of swipes below which no learning happens.
	MinSampleSize int `mapstructure:"min_sample_size" validate:"min=1,max=1000"`
	// SampleSizeTarget is the swipe count at which the sample-size term of
	// the confidence score saturates at 1.
	SampleSizeTarget int `mapstructure:"sample_size_target" validate:"min=1,max=10000"`
	// MaxAdjustment caps the per-factor weight swing (0.2 = 20%).
	MaxAdjustment float64 `mapstructure:"max_adjustment" validate:"min=0,max=1"`
	// ConfidenceThreshold is the confidence above which learned weights
	// replace the base vector when scoring.
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold" validate:"min=0,max=1"`
	// MatchSignalWeight, MessageSignalWeight and ViewTimeSignalWeight blend
	// the secondary behavior signals into the swipe-derived importance.
	MatchSignalWeight    float64 `mapstructure:"match_signal_weight" validate:"min=0,max=5"`
	MessageSignalWeight  float64 `mapstructure:"message_signal_weight" validate:"min=0,max=5"`
	ViewTimeSignalWeight float64 `mapstructure:"view_time_signal_weight" validate:"min=0,max=5"`
	// Confidence blend coefficients; nominally sum to 1.
	SampleSizeBlend  float64 `mapstructure:"sample_size_blend" validate:"min=0,max=1"`
	MatchRateBlend   float64 `mapstructure:"match_rate_blend" validate:"min=0,max=1"`
	ConsistencyBlend float64 `mapstructure:"consistency_blend" validate:"min=0,max=1"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MinSampleSize:        10,
		SampleSizeTarget:     50,
		MaxAdjustment:        0.2,
		ConfidenceThreshold:  0.6,
		MatchSignalWeight:    1.5,
		MessageSignalWeight:  1.2,
		ViewTimeSignalWeight: 0.8,
		SampleSizeBlend:      0.4,
		MatchRateBlend:       0.3,
		ConsistencyBlend:     0.3,
	}
}

// Learner derives per-user weight vectors from behavior data and delegates
// all scoring arithmetic to the compatibility scorer.
type Learner struct {
	cfg    Config
	base   domain.MatchingWeights
	scorer *matching.Scorer
	store  Store
}

func NewLearner(cfg Config, base domain.MatchingWeights, scorer *matching.Scorer, store Store) *Learner {
	return &Learner{
		cfg:    cfg,
		base:   base,
		scorer: scorer,
		store:  store,
	}
}

// LearnWeights recomputes the user's weight vector from scratch and stores
// it, replacing any previous value. Returns (nil, nil) when the swipe
// history is too small to learn from; that is an expected condition, not an
// error.
func (l *Learner) LearnWeights(ctx context.Context, userID string, behavior *domain.UserBehaviorData) (*domain.LearnedWeights, error) {
	if behavior == nil || len(behavior.SwipeActions) < l.cfg.MinSampleSize {
		return nil, nil
	}

	importance := l.factorImportance(behavior)
	adjusted := l.adjustWeights(importance)
	confidence := l.confidence(behavior, importance)

	learned := &domain.LearnedWeights{
		UserID:     userID,
		Weights:    adjusted,
		Confidence: confidence,
		SampleSize: len(behavior.SwipeActions),
		LearnedAt:  time.Now().UTC(),
	}

	if err := l.store.Put(ctx, learned); err != nil {
		return nil, fmt.Errorf("failed to store learned weights for user %s: %w", userID, err)
	}
	return learned, nil
}

// GetLearnedWeights returns the stored vector for the user, or nil when the
// user has never accumulated enough history.
func (l *Learner) GetLearnedWeights(ctx context.Context, userID string) (*domain.LearnedWeights, error) {
	return l.store.Get(ctx, userID)
}

// ScoreWithLearning scores a pair with the user's learned weights when their
// confidence clears the threshold, and with the base vector otherwise.
func (l *Learner) ScoreWithLearning(ctx context.Context, petA, petB *domain.PetProfile, userID string) (matching.ScoreResult, error) {
	weights := l.base

	learned, err := l.store.Get(ctx, userID)
	if err != nil {
		return matching.ScoreResult{}, err
	}
	if learned != nil && learned.Confidence > l.cfg.ConfidenceThreshold {
		weights = learned.Weights
	}

	return l.scorer.Score(petA, petB, weights), nil
}

// BaseWeights returns the configured base vector.
func (l *Learner) BaseWeights() domain.MatchingWeights {
	return l.base
}

// factorImportance estimates how much each factor drove the user's likes:
// the positive gap between the average factor score of liked targets and
// passed targets, blended with the secondary signals and normalized by the
// maximum so the strongest factor sits at 1.
func (l *Learner) factorImportance(behavior *domain.UserBehaviorData) map[domain.Factor]float64 {
	liked, passed := behavior.PartitionSwipes()

	likedAvg := averageFactorScores(liked)
	passedAvg := averageFactorScores(passed)

	importance := make(map[domain.Factor]float64, len(domain.Factors))
	for _, f := range domain.Factors {
		importance[f] = math.Max(0, likedAvg[f]-passedAvg[f])
	}

	blendSignal(importance, l.matchFactorAverages(behavior), l.cfg.MatchSignalWeight)
	blendSignal(importance, l.messageFactorAverages(behavior), l.cfg.MessageSignalWeight)
	blendSignal(importance, l.viewTimeFactorAverages(behavior), l.cfg.ViewTimeSignalWeight)

	var maxImportance float64
	for _, v := range importance {
		maxImportance = math.Max(maxImportance, v)
	}
	if maxImportance > 0 {
		for f := range importance {
			importance[f] /= maxImportance
		}
	}
	return importance
}

// averageFactorScores averages the per-swipe recorded factor scores over a
// set of swipes and rescales them to 0..1. Swipes recorded without factor
// scores are skipped.
func averageFactorScores(swipes []domain.SwipeAction) map[domain.Factor]float64 {
	sums := make(map[domain.Factor]float64, len(domain.Factors))
	counted := 0
	for _, s := range swipes {
		if s.FactorScores == nil {
			continue
		}
		counted++
		for _, f := range domain.Factors {
			sums[f] += float64(s.FactorScores.Of(f))
		}
	}

	avg := make(map[domain.Factor]float64, len(domain.Factors))
	if counted == 0 {
		return avg
	}
	for _, f := range domain.Factors {
		avg[f] = sums[f] / float64(counted) / 100
	}
	return avg
}

// blendSignal folds a secondary signal into the running importance as a
// weighted average. Empty signals leave the importance untouched.
func blendSignal(importance map[domain.Factor]float64, signal map[domain.Factor]float64, weight float64) {
	if len(signal) == 0 || weight <= 0 {
		return
	}
	for f, v := range signal {
		importance[f] = (importance[f] + v*weight) / (1 + weight)
	}
}

// The three secondary aggregators are extension points. MatchRecord,
// MessageActivity and ViewTimeSample do not carry per-factor scores yet, so
// they currently contribute nothing and importance is driven by the swipe
// history alone.
// TODO: join match records back to their originating swipes so engagement
// outcomes can be attributed to factor scores.

func (l *Learner) matchFactorAverages(*domain.UserBehaviorData) map[domain.Factor]float64 {
	return nil
}

func (l *Learner) messageFactorAverages(*domain.UserBehaviorData) map[domain.Factor]float64 {
	return nil
}

func (l *Learner) viewTimeFactorAverages(*domain.UserBehaviorData) map[domain.Factor]float64 {
	return nil
}

// adjustWeights nudges each base weight up by at most MaxAdjustment in
// proportion to the factor's importance, then renormalizes the vector so its
// sum matches the base vector's sum.
func (l *Learner) adjustWeights(importance map[domain.Factor]float64) domain.MatchingWeights {
	var adjusted domain.MatchingWeights
	for _, f := range domain.Factors {
		adjusted.Set(f, l.base.Of(f)*(1+importance[f]*l.cfg.MaxAdjustment))
	}

	baseSum := l.base.Sum()
	adjustedSum := adjusted.Sum()
	if adjustedSum > 0 && baseSum > 0 {
		scale := baseSum / adjustedSum
		for _, f := range domain.Factors {
			adjusted.Set(f, adjusted.Of(f)*scale)
		}
	}
	return adjusted
}

// confidence blends sample size, match rate and importance consistency into
// a [0,1] trust estimate for the learned vector.
func (l *Learner) confidence(behavior *domain.UserBehaviorData, importance map[domain.Factor]float64) float64 {
	sampleScore := math.Min(1, float64(len(behavior.SwipeActions))/float64(l.cfg.SampleSizeTarget))

	var matchRateScore float64
	if likes := behavior.LikeCount(); likes > 0 {
		matchRateScore = math.Min(1, 2*float64(len(behavior.Matches))/float64(likes))
	}

	consistencyScore := math.Max(0, 1-2*variance(importance))

	confidence := l.cfg.SampleSizeBlend*sampleScore +
		l.cfg.MatchRateBlend*matchRateScore +
		l.cfg.ConsistencyBlend*consistencyScore
	return math.Max(0, math.Min(1, confidence))
}

func variance(values map[domain.Factor]float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sum float64
	for _, v := range values {
		sum += (v - mean) * (v - mean)
	}
	return sum / float64(len(values))
}
