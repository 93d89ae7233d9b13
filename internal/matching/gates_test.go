package matching

import (
	"testing"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDog(id string) *domain.PetProfile {
	return &domain.PetProfile{
		ID:           id,
		Species:      domain.SpeciesDog,
		BreedID:      "golden-retriever",
		NeuterStatus: domain.NeuterStatusIntact,
		AgeMonths:    36,
		Size:         domain.SizeLarge,
		Health:       domain.Health{VaccinationsUpToDate: true},
		Temperament:  domain.Temperament{Energy: 3, Traits: []string{"friendly", "playful"}},
		Social:       domain.Socialization{WithDogs: 4, WithCats: 2, WithKids: 4, WithStrangers: 4},
		Intents:      []domain.Intent{domain.IntentPlaydate},
		Location:     domain.Location{Lat: 42.70, Lng: 23.32, City: "Sofia"},
		Media: []domain.MediaItem{
			{ID: "m1", Moderation: domain.ModerationApproved},
		},
		IsActive: true,
	}
}

func testCat(id string) *domain.PetProfile {
	p := testDog(id)
	p.Species = domain.SpeciesCat
	p.BreedID = "british-shorthair"
	p.Size = domain.SizeMedium
	return p
}

func testPrefs() *domain.OwnerPreferences {
	return &domain.OwnerPreferences{MaxDistanceKm: 50}
}

func openGates() domain.HardGatesConfig {
	return domain.HardGatesConfig{
		AllowCrossSpecies:        true,
		RequireVaccinations:      true,
		BlockAggressionConflicts: true,
		RequireApprovedMedia:     true,
		EnforceNeuterPolicy:      true,
		MaxDistanceKm:            100,
	}
}

func failureCodes(result GateResult) []string {
	codes := make([]string, 0, len(result.FailureReasons))
	for _, f := range result.FailureReasons {
		codes = append(codes, f.Code)
	}
	return codes
}

func TestEvaluateGatesPasses(t *testing.T) {
	result := EvaluateGates(testDog("a"), testDog("b"), testPrefs(), openGates())

	assert.True(t, result.Passed)
	assert.Empty(t, result.FailureReasons)
}

func TestEvaluateGatesSpeciesMismatch(t *testing.T) {
	cfg := openGates()
	cfg.AllowCrossSpecies = false

	result := EvaluateGates(testDog("a"), testCat("b"), testPrefs(), cfg)

	assert.False(t, result.Passed)
	assert.Contains(t, failureCodes(result), GateSpeciesMismatch)
}

func TestEvaluateGatesCrossSpeciesAllowed(t *testing.T) {
	result := EvaluateGates(testDog("a"), testCat("b"), testPrefs(), openGates())

	assert.NotContains(t, failureCodes(result), GateSpeciesMismatch)
}

func TestEvaluateGatesVaccination(t *testing.T) {
	petB := testDog("b")
	petB.Health.VaccinationsUpToDate = false

	result := EvaluateGates(testDog("a"), petB, testPrefs(), openGates())

	assert.Contains(t, failureCodes(result), GateVaccination)
}

func TestEvaluateGatesAggressionConflict(t *testing.T) {
	petA := testDog("a")
	petA.Health.IsAggressive = true
	petB := testDog("b")
	petB.Social.WithStrangers = 4

	result := EvaluateGates(petA, petB, testPrefs(), openGates())

	assert.Contains(t, failureCodes(result), GateAggression)
}

func TestEvaluateGatesAggressionNoConflictWhenTargetWary(t *testing.T) {
	petA := testDog("a")
	petA.Health.IsAggressive = true
	petB := testDog("b")
	petB.Social.WithStrangers = 2

	result := EvaluateGates(petA, petB, testPrefs(), openGates())

	assert.NotContains(t, failureCodes(result), GateAggression)
}

// A bite history must surface the safety code no matter what the target
// profile looks like.
func TestEvaluateGatesBiteHistoryAlwaysFlagged(t *testing.T) {
	targets := []*domain.PetProfile{testDog("b"), testCat("c")}
	targets[1].Social.WithStrangers = 1

	for _, target := range targets {
		petA := testDog("a")
		petA.Health.BiteHistory = true

		result := EvaluateGates(petA, target, testPrefs(), openGates())

		assert.Contains(t, failureCodes(result), GateSafetyHistory)
	}
}

func TestEvaluateGatesMediaApproval(t *testing.T) {
	petB := testDog("b")
	petB.Media = []domain.MediaItem{{ID: "m2", Moderation: domain.ModerationPending}}

	result := EvaluateGates(testDog("a"), petB, testPrefs(), openGates())

	assert.Contains(t, failureCodes(result), GateMediaNotApproved)
}

func TestEvaluateGatesDistance(t *testing.T) {
	petB := testDog("b")
	petB.Location = domain.Location{Lat: 43.21, Lng: 27.91, City: "Varna"}

	result := EvaluateGates(testDog("a"), petB, testPrefs(), openGates())
	assert.Contains(t, failureCodes(result), GateDistanceExceeded)

	prefs := testPrefs()
	prefs.GlobalSearch = true
	result = EvaluateGates(testDog("a"), petB, prefs, openGates())
	assert.NotContains(t, failureCodes(result), GateDistanceExceeded)
}

func TestEvaluateGatesNeuterPolicy(t *testing.T) {
	petA := testDog("a")
	petA.Intents = []domain.Intent{domain.IntentBreeding}
	petB := testDog("b")
	petB.NeuterStatus = domain.NeuterStatusNeutered

	result := EvaluateGates(petA, petB, testPrefs(), openGates())
	assert.Contains(t, failureCodes(result), GateNeuterPolicy)

	// Without a breeding intent the neuter status is irrelevant.
	petA.Intents = []domain.Intent{domain.IntentPlaydate}
	result = EvaluateGates(petA, petB, testPrefs(), openGates())
	assert.NotContains(t, failureCodes(result), GateNeuterPolicy)
}

func TestEvaluateGatesBlocklistIsSymmetric(t *testing.T) {
	petA := testDog("a")
	petB := testDog("b")
	petB.BlockedIDs = []string{"a"}

	result := EvaluateGates(petA, petB, testPrefs(), openGates())
	assert.Contains(t, failureCodes(result), GateBlocked)

	petB.BlockedIDs = nil
	petA.BlockedIDs = []string{"b"}
	result = EvaluateGates(petA, petB, testPrefs(), openGates())
	assert.Contains(t, failureCodes(result), GateBlocked)
}

// The evaluator never short-circuits: independent violations all show up.
func TestEvaluateGatesAccumulatesAllFailures(t *testing.T) {
	cfg := openGates()
	cfg.AllowCrossSpecies = false

	petA := testDog("a")
	petA.Health.VaccinationsUpToDate = false
	petA.Health.BiteHistory = true
	petB := testCat("b")
	petB.Media = nil
	petB.BlockedIDs = []string{"a"}

	result := EvaluateGates(petA, petB, testPrefs(), cfg)

	require.False(t, result.Passed)
	codes := failureCodes(result)
	assert.Contains(t, codes, GateSpeciesMismatch)
	assert.Contains(t, codes, GateVaccination)
	assert.Contains(t, codes, GateSafetyHistory)
	assert.Contains(t, codes, GateMediaNotApproved)
	assert.Contains(t, codes, GateBlocked)
}
