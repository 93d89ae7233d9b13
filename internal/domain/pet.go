package domain

import "time"

type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type NeuterStatus string

const (
	NeuterStatusIntact   NeuterStatus = "intact"
	NeuterStatusNeutered NeuterStatus = "neutered"
	NeuterStatusUnknown  NeuterStatus = "unknown"
)

type SizeClass string

const (
	SizeToy    SizeClass = "toy"
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
	SizeGiant  SizeClass = "giant"
)

type LifeStage string

const (
	LifeStagePuppy  LifeStage = "puppy"
	LifeStageKitten LifeStage = "kitten"
	LifeStageAdult  LifeStage = "adult"
	LifeStageSenior LifeStage = "senior"
)

type Intent string

const (
	IntentPlaydate      Intent = "playdate"
	IntentCompanionship Intent = "companionship"
	IntentAdoption      Intent = "adoption"
	IntentBreeding      Intent = "breeding"
)

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// Temperament holds per-dimension scores on a 1-5 scale plus a free-form
// trait set ("playful", "calm", ...) used for overlap scoring.
type Temperament struct {
	Energy       int      `json:"energy" db:"temperament_energy"`
	Friendliness int      `json:"friendliness" db:"temperament_friendliness"`
	Playfulness  int      `json:"playfulness" db:"temperament_playfulness"`
	Calmness     int      `json:"calmness" db:"temperament_calmness"`
	Independence int      `json:"independence" db:"temperament_independence"`
	Traits       []string `json:"traits" db:"temperament_traits"`
}

// Socialization holds comfort levels on a 1-5 scale.
type Socialization struct {
	WithDogs      int `json:"with_dogs" db:"social_with_dogs"`
	WithCats      int `json:"with_cats" db:"social_with_cats"`
	WithKids      int `json:"with_kids" db:"social_with_kids"`
	WithStrangers int `json:"with_strangers" db:"social_with_strangers"`
}

// Health holds vaccination and safety data used by the hard gates.
type Health struct {
	VaccinationsUpToDate bool     `json:"vaccinations_up_to_date" db:"vaccinations_up_to_date"`
	SpecialNeeds         []string `json:"special_needs" db:"special_needs"`
	IsAggressive         bool     `json:"is_aggressive" db:"is_aggressive"`
	BiteHistory          bool     `json:"bite_history" db:"bite_history"`
	AttackHistory        bool     `json:"attack_history" db:"attack_history"`
}

// Location is deliberately coarse: coordinates are rounded to ~1km before
// they ever reach this struct, so distance math is an approximation by design.
type Location struct {
	Lat      float64 `json:"lat" db:"location_lat"`
	Lng      float64 `json:"lng" db:"location_lng"`
	City     string  `json:"city" db:"city"`
	Country  string  `json:"country" db:"country"`
	Timezone string  `json:"timezone" db:"timezone"`
}

type MediaItem struct {
	ID         string           `json:"id" db:"id"`
	PetID      string           `json:"pet_id" db:"pet_id"`
	URL        string           `json:"url" db:"url"`
	Moderation ModerationStatus `json:"moderation" db:"moderation_status"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

// AIHints are optional model-derived profile suggestions; absent for most
// profiles and never required by the matching core.
type AIHints struct {
	SuggestedTraits []string `json:"suggested_traits,omitempty"`
	BioSummary      string   `json:"bio_summary,omitempty"`
}

type PetProfile struct {
	ID           string        `json:"id" db:"id"`
	OwnerID      string        `json:"owner_id" db:"owner_id"`
	Name         string        `json:"name" db:"name"`
	Species      Species       `json:"species" db:"species"`
	BreedID      string        `json:"breed_id" db:"breed_id"`
	Sex          Sex           `json:"sex" db:"sex"`
	NeuterStatus NeuterStatus  `json:"neuter_status" db:"neuter_status"`
	AgeMonths    int           `json:"age_months" db:"age_months"`
	Size         SizeClass     `json:"size" db:"size_class"`
	WeightKg     *float64      `json:"weight_kg,omitempty" db:"weight_kg"`
	Health       Health        `json:"health"`
	Temperament  Temperament   `json:"temperament"`
	Social       Socialization `json:"socialization"`
	Intents      []Intent      `json:"intents" db:"intents"`
	Interests    []string      `json:"interests" db:"interests"`
	Location     Location      `json:"location"`
	Media        []MediaItem   `json:"media"`
	AIHints      *AIHints      `json:"ai_hints,omitempty"`
	VetVerified  bool          `json:"vet_verified" db:"vet_verified"`
	IDVerified   bool          `json:"id_verified" db:"id_verified"`
	BlockedIDs   []string      `json:"blocked_ids" db:"blocked_ids"`
	IsActive     bool          `json:"is_active" db:"is_active"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

// LifeStage derives the coarse age category from species and age in months.
func (p *PetProfile) LifeStage() LifeStage {
	switch p.Species {
	case SpeciesCat:
		switch {
		case p.AgeMonths < 12:
			return LifeStageKitten
		case p.AgeMonths >= 120:
			return LifeStageSenior
		default:
			return LifeStageAdult
		}
	default:
		switch {
		case p.AgeMonths < 12:
			return LifeStagePuppy
		case p.AgeMonths >= 84:
			return LifeStageSenior
		default:
			return LifeStageAdult
		}
	}
}

// HasBlocked reports whether this profile's blocklist contains the given pet id.
func (p *PetProfile) HasBlocked(petID string) bool {
	for _, id := range p.BlockedIDs {
		if id == petID {
			return true
		}
	}
	return false
}

// HasApprovedMedia reports whether at least one media item passed moderation.
func (p *PetProfile) HasApprovedMedia() bool {
	for _, m := range p.Media {
		if m.Moderation == ModerationApproved {
			return true
		}
	}
	return false
}

// HasIntent reports whether the profile declares the given intent.
func (p *PetProfile) HasIntent(intent Intent) bool {
	for _, i := range p.Intents {
		if i == intent {
			return true
		}
	}
	return false
}
