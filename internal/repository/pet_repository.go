package repository

import (
	"context"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

// PetRepository is the read/write contract for pet profiles. The matching
// core only ever reads; writes come from onboarding and profile edits.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.PetProfile) error
	GetByID(ctx context.Context, id string) (*domain.PetProfile, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.PetProfile, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.PetProfile, error)
	Update(ctx context.Context, pet *domain.PetProfile) error
	SetActive(ctx context.Context, id string, active bool) error
	UpdateAIHints(ctx context.Context, id string, hints *domain.AIHints) error
}

// PreferencesRepository resolves the per-owner search constraints.
type PreferencesRepository interface {
	GetByOwnerID(ctx context.Context, ownerID string) (*domain.OwnerPreferences, error)
	Upsert(ctx context.Context, prefs *domain.OwnerPreferences) error
}
