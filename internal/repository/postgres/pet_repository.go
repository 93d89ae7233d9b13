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

type petRepository struct {
	db *sqlx.DB
}

func NewPetRepository(db *sqlx.DB) repository.PetRepository {
	return &petRepository{db: db}
}

const petColumns = `
	id, owner_id, name, species, breed_id, sex, neuter_status, age_months,
	size_class, weight_kg,
	vaccinations_up_to_date, special_needs, is_aggressive, bite_history, attack_history,
	temperament_energy, temperament_friendliness, temperament_playfulness,
	temperament_calmness, temperament_independence, temperament_traits,
	social_with_dogs, social_with_cats, social_with_kids, social_with_strangers,
	intents, interests,
	location_lat, location_lng, city, country, timezone,
	ai_suggested_traits, ai_bio_summary,
	vet_verified, id_verified, blocked_ids, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPet(row rowScanner) (*domain.PetProfile, error) {
	var pet domain.PetProfile
	var intents []string
	var aiTraits []string
	var aiBioSummary sql.NullString

	err := row.Scan(
		&pet.ID, &pet.OwnerID, &pet.Name, &pet.Species, &pet.BreedID, &pet.Sex,
		&pet.NeuterStatus, &pet.AgeMonths, &pet.Size, &pet.WeightKg,
		&pet.Health.VaccinationsUpToDate, pq.Array(&pet.Health.SpecialNeeds),
		&pet.Health.IsAggressive, &pet.Health.BiteHistory, &pet.Health.AttackHistory,
		&pet.Temperament.Energy, &pet.Temperament.Friendliness, &pet.Temperament.Playfulness,
		&pet.Temperament.Calmness, &pet.Temperament.Independence, pq.Array(&pet.Temperament.Traits),
		&pet.Social.WithDogs, &pet.Social.WithCats, &pet.Social.WithKids, &pet.Social.WithStrangers,
		pq.Array(&intents), pq.Array(&pet.Interests),
		&pet.Location.Lat, &pet.Location.Lng, &pet.Location.City, &pet.Location.Country, &pet.Location.Timezone,
		pq.Array(&aiTraits), &aiBioSummary,
		&pet.VetVerified, &pet.IDVerified, pq.Array(&pet.BlockedIDs), &pet.IsActive,
		&pet.CreatedAt, &pet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	pet.Intents = make([]domain.Intent, 0, len(intents))
	for _, intent := range intents {
		pet.Intents = append(pet.Intents, domain.Intent(intent))
	}
	if len(aiTraits) > 0 || aiBioSummary.Valid {
		pet.AIHints = &domain.AIHints{
			SuggestedTraits: aiTraits,
			BioSummary:      aiBioSummary.String,
		}
	}
	return &pet, nil
}

func intentsToStrings(intents []domain.Intent) []string {
	out := make([]string, 0, len(intents))
	for _, intent := range intents {
		out = append(out, string(intent))
	}
	return out
}

func (r *petRepository) Create(ctx context.Context, pet *domain.PetProfile) error {
	query := `
		INSERT INTO pets (
			id, owner_id, name, species, breed_id, sex, neuter_status, age_months,
			size_class, weight_kg,
			vaccinations_up_to_date, special_needs, is_aggressive, bite_history, attack_history,
			temperament_energy, temperament_friendliness, temperament_playfulness,
			temperament_calmness, temperament_independence, temperament_traits,
			social_with_dogs, social_with_cats, social_with_kids, social_with_strangers,
			intents, interests,
			location_lat, location_lng, city, country, timezone,
			vet_verified, id_verified, blocked_ids, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21,
		        $22, $23, $24, $25,
		        $26, $27,
		        $28, $29, $30, $31, $32,
		        $33, $34, $35, $36)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		pet.ID, pet.OwnerID, pet.Name, pet.Species, pet.BreedID, pet.Sex,
		pet.NeuterStatus, pet.AgeMonths, pet.Size, pet.WeightKg,
		pet.Health.VaccinationsUpToDate, pq.Array(pet.Health.SpecialNeeds),
		pet.Health.IsAggressive, pet.Health.BiteHistory, pet.Health.AttackHistory,
		pet.Temperament.Energy, pet.Temperament.Friendliness, pet.Temperament.Playfulness,
		pet.Temperament.Calmness, pet.Temperament.Independence, pq.Array(pet.Temperament.Traits),
		pet.Social.WithDogs, pet.Social.WithCats, pet.Social.WithKids, pet.Social.WithStrangers,
		pq.Array(intentsToStrings(pet.Intents)), pq.Array(pet.Interests),
		pet.Location.Lat, pet.Location.Lng, pet.Location.City, pet.Location.Country, pet.Location.Timezone,
		pet.VetVerified, pet.IDVerified, pq.Array(pet.BlockedIDs), pet.IsActive,
	).Scan(&pet.CreatedAt, &pet.UpdatedAt)
}

func (r *petRepository) GetByID(ctx context.Context, id string) (*domain.PetProfile, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE id = $1`

	pet, err := scanPet(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	if err := r.loadMedia(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (r *petRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.PetProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + petColumns + ` FROM pets WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	var pets []*domain.PetProfile
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, pet := range pets {
		if err := r.loadMedia(ctx, pet); err != nil {
			return nil, err
		}
	}
	return pets, nil
}

func (r *petRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.PetProfile, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE owner_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner pets: %w", err)
	}
	defer rows.Close()

	var pets []*domain.PetProfile
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		pets = append(pets, pet)
	}
	return pets, rows.Err()
}

func (r *petRepository) Update(ctx context.Context, pet *domain.PetProfile) error {
	query := `
		UPDATE pets
		SET name = $1, breed_id = $2, neuter_status = $3, age_months = $4,
		    size_class = $5, weight_kg = $6,
		    vaccinations_up_to_date = $7, special_needs = $8,
		    is_aggressive = $9, bite_history = $10, attack_history = $11,
		    temperament_energy = $12, temperament_friendliness = $13,
		    temperament_playfulness = $14, temperament_calmness = $15,
		    temperament_independence = $16, temperament_traits = $17,
		    social_with_dogs = $18, social_with_cats = $19,
		    social_with_kids = $20, social_with_strangers = $21,
		    intents = $22, interests = $23,
		    location_lat = $24, location_lng = $25, city = $26, country = $27, timezone = $28,
		    vet_verified = $29, id_verified = $30, blocked_ids = $31, is_active = $32,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $33
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		pet.Name, pet.BreedID, pet.NeuterStatus, pet.AgeMonths,
		pet.Size, pet.WeightKg,
		pet.Health.VaccinationsUpToDate, pq.Array(pet.Health.SpecialNeeds),
		pet.Health.IsAggressive, pet.Health.BiteHistory, pet.Health.AttackHistory,
		pet.Temperament.Energy, pet.Temperament.Friendliness,
		pet.Temperament.Playfulness, pet.Temperament.Calmness,
		pet.Temperament.Independence, pq.Array(pet.Temperament.Traits),
		pet.Social.WithDogs, pet.Social.WithCats,
		pet.Social.WithKids, pet.Social.WithStrangers,
		pq.Array(intentsToStrings(pet.Intents)), pq.Array(pet.Interests),
		pet.Location.Lat, pet.Location.Lng, pet.Location.City, pet.Location.Country, pet.Location.Timezone,
		pet.VetVerified, pet.IDVerified, pq.Array(pet.BlockedIDs), pet.IsActive,
		pet.ID,
	).Scan(&pet.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrPetNotFound
	}
	return err
}

func (r *petRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE pets SET is_active = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *petRepository) UpdateAIHints(ctx context.Context, id string, hints *domain.AIHints) error {
	query := `
		UPDATE pets
		SET ai_suggested_traits = $1, ai_bio_summary = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, pq.Array(hints.SuggestedTraits), hints.BioSummary, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *petRepository) loadMedia(ctx context.Context, pet *domain.PetProfile) error {
	query := `
		SELECT id, pet_id, url, moderation_status, created_at
		FROM pet_media WHERE pet_id = $1 ORDER BY created_at
	`
	var media []domain.MediaItem
	if err := r.db.SelectContext(ctx, &media, query, pet.ID); err != nil {
		return fmt.Errorf("failed to load pet media: %w", err)
	}
	pet.Media = media
	return nil
}
