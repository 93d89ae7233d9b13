package matching

import "github.com/pawfectmatch/pawfectmatch-backend/internal/domain"

// Gate failure codes. Stable identifiers: clients key localized UI off them.
const (
	GateSpeciesMismatch  = "species_mismatch"
	GateVaccination      = "vaccination_required"
	GateAggression       = "aggression_conflict"
	GateSafetyHistory    = "safety_history"
	GateMediaNotApproved = "media_not_approved"
	GateDistanceExceeded = "distance_exceeded"
	GateNeuterPolicy     = "neuter_policy_violation"
	GateBlocked          = "blocked"
)

// Comfort-with-strangers level at or above which a sociable pet is shielded
// from being paired with an aggressive one.
const strangerComfortThreshold = 3

// GateFailure is one violated eligibility rule.
type GateFailure struct {
	Code    string      `json:"code"`
	Message domain.Text `json:"message"`
}

// GateResult is the outcome of a full eligibility check. FailureReasons
// lists every violated rule, not just the first.
type GateResult struct {
	Passed         bool          `json:"passed"`
	FailureReasons []GateFailure `json:"failure_reasons"`
}

// EvaluateGates decides whether petB may be shown to petA at all. Every rule
// is evaluated; the result accumulates all failures so the complete
// explanation can be surfaced. Pure and deterministic, no I/O.
func EvaluateGates(petA, petB *domain.PetProfile, prefs *domain.OwnerPreferences, cfg domain.HardGatesConfig) GateResult {
	var failures []GateFailure

	if !cfg.AllowCrossSpecies && petA.Species != petB.Species {
		failures = append(failures, GateFailure{
			Code: GateSpeciesMismatch,
			Message: domain.Text{
				EN: "Cross-species matching is not enabled",
				BG: "Срещите между различни видове не са разрешени",
			},
		})
	}

	if cfg.RequireVaccinations &&
		(!petA.Health.VaccinationsUpToDate || !petB.Health.VaccinationsUpToDate) {
		failures = append(failures, GateFailure{
			Code: GateVaccination,
			Message: domain.Text{
				EN: "Both pets must have up-to-date vaccinations",
				BG: "И двата домашни любимеца трябва да имат актуални ваксини",
			},
		})
	}

	if cfg.BlockAggressionConflicts {
		if petA.Health.IsAggressive && petB.Social.WithStrangers >= strangerComfortThreshold {
			failures = append(failures, GateFailure{
				Code: GateAggression,
				Message: domain.Text{
					EN: "Aggressive pets cannot be matched with sociable pets",
					BG: "Агресивни любимци не могат да бъдат свързвани с общителни любимци",
				},
			})
		}
		if petA.Health.BiteHistory || petA.Health.AttackHistory {
			failures = append(failures, GateFailure{
				Code: GateSafetyHistory,
				Message: domain.Text{
					EN: "Pets with a bite or attack history require a safety review",
					BG: "Любимци с история на ухапвания или нападения изискват проверка за безопасност",
				},
			})
		}
	}

	if cfg.RequireApprovedMedia &&
		(!petA.HasApprovedMedia() || !petB.HasApprovedMedia()) {
		failures = append(failures, GateFailure{
			Code: GateMediaNotApproved,
			Message: domain.Text{
				EN: "Both pets need at least one approved photo",
				BG: "И двата домашни любимеца се нуждаят от поне една одобрена снимка",
			},
		})
	}

	if !prefs.GlobalSearch {
		if DistanceKm(petA.Location, petB.Location) > prefs.MaxDistanceKm {
			failures = append(failures, GateFailure{
				Code: GateDistanceExceeded,
				Message: domain.Text{
					EN: "This pet is outside your search distance",
					BG: "Този любимец е извън избраното от вас разстояние",
				},
			})
		}
	}

	if cfg.EnforceNeuterPolicy {
		breedingIntent := petA.HasIntent(domain.IntentBreeding) || petB.HasIntent(domain.IntentBreeding)
		neuteredParty := petA.NeuterStatus == domain.NeuterStatusNeutered ||
			petB.NeuterStatus == domain.NeuterStatusNeutered
		if breedingIntent && neuteredParty {
			failures = append(failures, GateFailure{
				Code: GateNeuterPolicy,
				Message: domain.Text{
					EN: "Breeding intent is incompatible with a neutered pet",
					BG: "Намерение за разплод е несъвместимо с кастриран любимец",
				},
			})
		}
	}

	// Blocking is symmetric: either direction fails the gate.
	if petA.HasBlocked(petB.ID) || petB.HasBlocked(petA.ID) {
		failures = append(failures, GateFailure{
			Code: GateBlocked,
			Message: domain.Text{
				EN: "One of the owners has blocked this match",
				BG: "Един от собствениците е блокирал тази връзка",
			},
		})
	}

	return GateResult{
		Passed:         len(failures) == 0,
		FailureReasons: failures,
	}
}
