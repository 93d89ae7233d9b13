package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/repository"
)

type preferencesRepository struct {
	db *sqlx.DB
}

func NewPreferencesRepository(db *sqlx.DB) repository.PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) GetByOwnerID(ctx context.Context, ownerID string) (*domain.OwnerPreferences, error) {
	query := `
		SELECT owner_id, max_distance_km, species, allow_cross_species, sizes,
		       intents, min_life_stage, max_life_stage, require_vaccinated,
		       global_search, updated_at
		FROM owner_preferences WHERE owner_id = $1
	`
	var prefs domain.OwnerPreferences
	var species, sizes, intents []string
	var minStage, maxStage sql.NullString

	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&prefs.OwnerID, &prefs.MaxDistanceKm, pq.Array(&species), &prefs.AllowCrossSpecies,
		pq.Array(&sizes), pq.Array(&intents), &minStage, &maxStage,
		&prefs.RequireVaccinated, &prefs.GlobalSearch, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("failed to get owner preferences: %w", err)
	}

	for _, s := range species {
		prefs.Species = append(prefs.Species, domain.Species(s))
	}
	for _, s := range sizes {
		prefs.Sizes = append(prefs.Sizes, domain.SizeClass(s))
	}
	for _, s := range intents {
		prefs.Intents = append(prefs.Intents, domain.Intent(s))
	}
	if minStage.Valid {
		stage := domain.LifeStage(minStage.String)
		prefs.MinLifeStage = &stage
	}
	if maxStage.Valid {
		stage := domain.LifeStage(maxStage.String)
		prefs.MaxLifeStage = &stage
	}
	return &prefs, nil
}

func (r *preferencesRepository) Upsert(ctx context.Context, prefs *domain.OwnerPreferences) error {
	query := `
		INSERT INTO owner_preferences (
			owner_id, max_distance_km, species, allow_cross_species, sizes,
			intents, min_life_stage, max_life_stage, require_vaccinated, global_search
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (owner_id) DO UPDATE SET
			max_distance_km = EXCLUDED.max_distance_km,
			species = EXCLUDED.species,
			allow_cross_species = EXCLUDED.allow_cross_species,
			sizes = EXCLUDED.sizes,
			intents = EXCLUDED.intents,
			min_life_stage = EXCLUDED.min_life_stage,
			max_life_stage = EXCLUDED.max_life_stage,
			require_vaccinated = EXCLUDED.require_vaccinated,
			global_search = EXCLUDED.global_search,
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	species := make([]string, 0, len(prefs.Species))
	for _, s := range prefs.Species {
		species = append(species, string(s))
	}
	sizes := make([]string, 0, len(prefs.Sizes))
	for _, s := range prefs.Sizes {
		sizes = append(sizes, string(s))
	}

	var minStage, maxStage *string
	if prefs.MinLifeStage != nil {
		s := string(*prefs.MinLifeStage)
		minStage = &s
	}
	if prefs.MaxLifeStage != nil {
		s := string(*prefs.MaxLifeStage)
		maxStage = &s
	}

	return r.db.QueryRowContext(
		ctx, query,
		prefs.OwnerID, prefs.MaxDistanceKm, pq.Array(species), prefs.AllowCrossSpecies,
		pq.Array(sizes), pq.Array(intentsToStrings(prefs.Intents)),
		minStage, maxStage, prefs.RequireVaccinated, prefs.GlobalSearch,
	).Scan(&prefs.UpdatedAt)
}
