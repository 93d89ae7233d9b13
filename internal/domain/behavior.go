package domain

import "time"

type SwipeDirection string

const (
	SwipeLike      SwipeDirection = "like"
	SwipePass      SwipeDirection = "pass"
	SwipeSuperlike SwipeDirection = "superlike"
)

// SwipeAction is one recorded swipe. FactorScores are the sub-scores the
// scorer produced for the pair at swipe time; the learner needs them to
// estimate which factors drove the decision, so the swipe flow records them.
type SwipeAction struct {
	ID           string          `json:"id" db:"id"`
	UserID       string          `json:"user_id" db:"user_id"`
	PetID        string          `json:"pet_id" db:"pet_id"`
	TargetPetID  string          `json:"target_pet_id" db:"target_pet_id"`
	Direction    SwipeDirection  `json:"direction" db:"direction"`
	FactorScores *FactorScores   `json:"factor_scores,omitempty" db:"factor_scores"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// IsLike reports whether the swipe expresses interest (like or superlike).
func (s *SwipeAction) IsLike() bool {
	return s.Direction == SwipeLike || s.Direction == SwipeSuperlike
}

// MatchRecord captures the engagement that followed a mutual like.
type MatchRecord struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"user_id" db:"user_id"`
	PetID            string    `json:"pet_id" db:"pet_id"`
	OtherPetID       string    `json:"other_pet_id" db:"other_pet_id"`
	MessagesSent     int       `json:"messages_sent" db:"messages_sent"`
	MessagesReceived int       `json:"messages_received" db:"messages_received"`
	ConversationMins int       `json:"conversation_mins" db:"conversation_mins"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// MessageActivity aggregates a user's messaging behavior.
type MessageActivity struct {
	UserID          string  `json:"user_id" db:"user_id"`
	MessageCount    int     `json:"message_count" db:"message_count"`
	ResponseRate    float64 `json:"response_rate" db:"response_rate"`
	AvgResponseSecs float64 `json:"avg_response_secs" db:"avg_response_secs"`
}

// ViewTimeSample records how long a user looked at a profile and what they
// eventually did with it.
type ViewTimeSample struct {
	UserID      string         `json:"user_id" db:"user_id"`
	TargetPetID string         `json:"target_pet_id" db:"target_pet_id"`
	DurationMs  int64          `json:"duration_ms" db:"duration_ms"`
	Outcome     SwipeDirection `json:"outcome" db:"outcome"`
}

// UserBehaviorData bundles everything the weight learner reads for one user.
// The learner never mutates it.
type UserBehaviorData struct {
	UserID       string           `json:"user_id"`
	SwipeActions []SwipeAction    `json:"swipe_actions"`
	Matches      []MatchRecord    `json:"matches"`
	Messages     []MessageActivity `json:"messages"`
	ViewTimes    []ViewTimeSample `json:"view_times"`
}

// PartitionSwipes splits the swipe history into liked and passed actions.
func (b *UserBehaviorData) PartitionSwipes() (liked, passed []SwipeAction) {
	for _, s := range b.SwipeActions {
		if s.IsLike() {
			liked = append(liked, s)
		} else {
			passed = append(passed, s)
		}
	}
	return liked, passed
}

// LikeCount returns the number of like/superlike actions.
func (b *UserBehaviorData) LikeCount() int {
	n := 0
	for _, s := range b.SwipeActions {
		if s.IsLike() {
			n++
		}
	}
	return n
}

// LearnedWeights is the per-user adjusted weight vector. One value per user,
// overwritten wholesale on every learning pass.
type LearnedWeights struct {
	UserID     string          `json:"user_id"`
	Weights    MatchingWeights `json:"weights"`
	Confidence float64         `json:"confidence"`
	SampleSize int             `json:"sample_size"`
	LearnedAt  time.Time       `json:"learned_at"`
}
