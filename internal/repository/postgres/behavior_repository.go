package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/repository"
)

type behaviorRepository struct {
	db *sqlx.DB
}

func NewBehaviorRepository(db *sqlx.DB) repository.BehaviorRepository {
	return &behaviorRepository{db: db}
}

func (r *behaviorRepository) CreateSwipe(ctx context.Context, swipe *domain.SwipeAction) error {
	var factorScores []byte
	if swipe.FactorScores != nil {
		var err error
		factorScores, err = json.Marshal(swipe.FactorScores)
		if err != nil {
			return fmt.Errorf("failed to encode factor scores: %w", err)
		}
	}

	query := `
		INSERT INTO swipes (id, user_id, pet_id, target_pet_id, direction, factor_scores)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		swipe.ID, swipe.UserID, swipe.PetID, swipe.TargetPetID, swipe.Direction, factorScores,
	).Scan(&swipe.CreatedAt)
}

func (r *behaviorRepository) GetSwipe(ctx context.Context, petID, targetPetID string) (*domain.SwipeAction, error) {
	query := `
		SELECT id, user_id, pet_id, target_pet_id, direction, factor_scores, created_at
		FROM swipes WHERE pet_id = $1 AND target_pet_id = $2
	`
	swipe, err := scanSwipe(r.db.QueryRowContext(ctx, query, petID, targetPetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get swipe: %w", err)
	}
	return swipe, nil
}

func (r *behaviorRepository) CheckMutualLike(ctx context.Context, petID, targetPetID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE pet_id = $1 AND target_pet_id = $2 AND direction IN ('like', 'superlike')
		)
	`
	var mutual bool
	if err := r.db.QueryRowContext(ctx, query, targetPetID, petID).Scan(&mutual); err != nil {
		return false, fmt.Errorf("failed to check mutual like: %w", err)
	}
	return mutual, nil
}

func (r *behaviorRepository) CreateMatch(ctx context.Context, match *domain.MatchRecord) error {
	query := `
		INSERT INTO matches (id, user_id, pet_id, other_pet_id, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		match.ID, match.UserID, match.PetID, match.OtherPetID,
	).Scan(&match.CreatedAt)
}

func (r *behaviorRepository) ListViewedPetIDs(ctx context.Context, petID string) ([]string, error) {
	query := `SELECT target_pet_id FROM swipes WHERE pet_id = $1`

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, petID); err != nil {
		return nil, fmt.Errorf("failed to list viewed pets: %w", err)
	}
	return ids, nil
}

func (r *behaviorRepository) GetUserBehavior(ctx context.Context, userID string) (*domain.UserBehaviorData, error) {
	behavior := &domain.UserBehaviorData{UserID: userID}

	swipeQuery := `
		SELECT id, user_id, pet_id, target_pet_id, direction, factor_scores, created_at
		FROM swipes WHERE user_id = $1 ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, swipeQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load swipe history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		swipe, err := scanSwipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan swipe: %w", err)
		}
		behavior.SwipeActions = append(behavior.SwipeActions, *swipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	matchQuery := `
		SELECT id, user_id, pet_id, other_pet_id, messages_sent, messages_received,
		       conversation_mins, is_active, created_at
		FROM matches WHERE user_id = $1 ORDER BY created_at
	`
	if err := r.db.SelectContext(ctx, &behavior.Matches, matchQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to load match history: %w", err)
	}

	messageQuery := `
		SELECT user_id, message_count, response_rate, avg_response_secs
		FROM message_activity WHERE user_id = $1
	`
	if err := r.db.SelectContext(ctx, &behavior.Messages, messageQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to load message activity: %w", err)
	}

	viewQuery := `
		SELECT user_id, target_pet_id, duration_ms, outcome
		FROM view_time_samples WHERE user_id = $1
	`
	if err := r.db.SelectContext(ctx, &behavior.ViewTimes, viewQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to load view time samples: %w", err)
	}

	return behavior, nil
}

func scanSwipe(row rowScanner) (*domain.SwipeAction, error) {
	var swipe domain.SwipeAction
	var factorScores []byte

	err := row.Scan(
		&swipe.ID, &swipe.UserID, &swipe.PetID, &swipe.TargetPetID,
		&swipe.Direction, &factorScores, &swipe.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(factorScores) > 0 {
		var scores domain.FactorScores
		if err := json.Unmarshal(factorScores, &scores); err != nil {
			return nil, fmt.Errorf("failed to decode factor scores: %w", err)
		}
		swipe.FactorScores = &scores
	}
	return &swipe, nil
}

type similarityRepository struct {
	db *sqlx.DB
}

func NewSimilarityRepository(db *sqlx.DB) repository.SimilarityRepository {
	return &similarityRepository{db: db}
}

// GetSimilarUsers reads the precomputed similarity records. The table is
// populated by an external batch job; this service never writes it.
func (r *similarityRepository) GetSimilarUsers(ctx context.Context, userID string, limit int) ([]domain.SimilarUser, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT similar_user_id, similarity, common_likes, common_passes
		FROM user_similarities
		WHERE user_id = $1
		ORDER BY similarity DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load similar users: %w", err)
	}
	defer rows.Close()

	var similar []domain.SimilarUser
	for rows.Next() {
		var s domain.SimilarUser
		if err := rows.Scan(&s.UserID, &s.Similarity, pq.Array(&s.CommonLikes), pq.Array(&s.CommonPasses)); err != nil {
			return nil, fmt.Errorf("failed to scan similar user: %w", err)
		}
		similar = append(similar, s)
	}
	return similar, rows.Err()
}
