package domain

import "time"

// ScheduleWindow is an optional weekly availability slot ("saturday",
// "10:00"-"12:00"); matching ignores it today but it travels with the
// preferences so clients can display overlap.
type ScheduleWindow struct {
	Day   string `json:"day" db:"day"`
	Start string `json:"start" db:"start_time"`
	End   string `json:"end" db:"end_time"`
}

// OwnerPreferences are the per-owner search constraints applied on top of
// the hard-gate policy. GlobalSearch disables the distance gate entirely.
type OwnerPreferences struct {
	OwnerID          string           `json:"owner_id" db:"owner_id"`
	MaxDistanceKm    float64          `json:"max_distance_km" db:"max_distance_km"`
	Species          []Species        `json:"species" db:"species"`
	AllowCrossSpecies bool            `json:"allow_cross_species" db:"allow_cross_species"`
	Sizes            []SizeClass      `json:"sizes" db:"sizes"`
	Intents          []Intent         `json:"intents" db:"intents"`
	MinLifeStage     *LifeStage       `json:"min_life_stage,omitempty" db:"min_life_stage"`
	MaxLifeStage     *LifeStage       `json:"max_life_stage,omitempty" db:"max_life_stage"`
	RequireVaccinated bool            `json:"require_vaccinated" db:"require_vaccinated"`
	Schedule         []ScheduleWindow `json:"schedule,omitempty"`
	GlobalSearch     bool             `json:"global_search" db:"global_search"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// HardGatesConfig holds the platform-level eligibility policy. Owner
// preferences narrow it further; they never widen it.
type HardGatesConfig struct {
	AllowCrossSpecies        bool    `mapstructure:"allow_cross_species" json:"allow_cross_species"`
	RequireVaccinations      bool    `mapstructure:"require_vaccinations" json:"require_vaccinations"`
	BlockAggressionConflicts bool    `mapstructure:"block_aggression_conflicts" json:"block_aggression_conflicts"`
	RequireApprovedMedia     bool    `mapstructure:"require_approved_media" json:"require_approved_media"`
	EnforceNeuterPolicy      bool    `mapstructure:"enforce_neuter_policy" json:"enforce_neuter_policy"`
	MaxDistanceKm            float64 `mapstructure:"max_distance_km" json:"max_distance_km" validate:"min=1,max=1000"`
}

// DefaultHardGatesConfig returns the production policy defaults.
func DefaultHardGatesConfig() HardGatesConfig {
	return HardGatesConfig{
		AllowCrossSpecies:        false,
		RequireVaccinations:      true,
		BlockAggressionConflicts: true,
		RequireApprovedMedia:     true,
		EnforceNeuterPolicy:      true,
		MaxDistanceKm:            100,
	}
}
