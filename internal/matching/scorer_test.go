package matching

import (
	"testing"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/breeds"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	table, err := breeds.Load()
	require.NoError(t, err)
	return NewScorer(table)
}

func TestScoreIdenticalProfiles(t *testing.T) {
	scorer := newTestScorer(t)
	petA := testDog("a")
	petB := testDog("b")

	result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())

	assert.Equal(t, 100, result.FactorScores.Temperament)
	assert.Equal(t, 100, result.FactorScores.Energy)
	assert.Equal(t, 100, result.FactorScores.LifeStage)
	assert.Equal(t, 100, result.FactorScores.Distance)
}

func TestScoreClampedToRange(t *testing.T) {
	scorer := newTestScorer(t)
	petA := testDog("a")
	petB := testCat("b")
	petB.AgeMonths = 200
	petB.Temperament = domain.Temperament{Energy: 5, Traits: []string{"shy"}}
	petB.Location = domain.Location{Lat: 43.21, Lng: 27.91}

	weights := domain.MatchingWeights{
		Temperament: 300, Energy: 300, LifeStage: 300, Size: 300, Breed: 300,
		Socialization: 300, Intent: 300, Distance: 300, Health: 300,
	}
	result := scorer.Score(petA, petB, weights)

	assert.GreaterOrEqual(t, result.TotalScore, 0)
	assert.LessOrEqual(t, result.TotalScore, 100)
	for _, f := range domain.Factors {
		score := result.FactorScores.Of(f)
		assert.GreaterOrEqual(t, score, 0, "factor %s", f)
		assert.LessOrEqual(t, score, 100, "factor %s", f)
	}
}

func TestScoreTemperamentNeutralWhenTraitsMissing(t *testing.T) {
	scorer := newTestScorer(t)
	petA := testDog("a")
	petA.Temperament.Traits = nil
	petB := testDog("b")

	result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())

	assert.Equal(t, 50, result.FactorScores.Temperament)
}

func TestScoreEnergyDelta(t *testing.T) {
	scorer := newTestScorer(t)
	tests := []struct {
		energyA, energyB int
		want             int
	}{
		{3, 3, 100},
		{3, 4, 75},
		{1, 3, 50},
		{1, 5, 0},
	}

	for _, tt := range tests {
		petA := testDog("a")
		petA.Temperament.Energy = tt.energyA
		petB := testDog("b")
		petB.Temperament.Energy = tt.energyB

		result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())
		assert.Equal(t, tt.want, result.FactorScores.Energy)
	}
}

func TestScoreLifeStageDecay(t *testing.T) {
	scorer := newTestScorer(t)
	petA := testDog("a")
	petA.AgeMonths = 12
	petB := testDog("b")
	petB.AgeMonths = 48 // three years apart

	result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())

	assert.Equal(t, 70, result.FactorScores.LifeStage)
}

func TestScoreSizeCompatibility(t *testing.T) {
	scorer := newTestScorer(t)

	// Adjacent dog sizes are compatible.
	petA := testDog("a")
	petA.Size = domain.SizeMedium
	petB := testDog("b")
	petB.Size = domain.SizeLarge
	result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 100, result.FactorScores.Size)

	// Toy vs giant is not.
	petA.Size = domain.SizeToy
	petB.Size = domain.SizeGiant
	result = scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 30, result.FactorScores.Size)
}

func TestScoreSizeNeutralAcrossSpecies(t *testing.T) {
	scorer := newTestScorer(t)
	petA := testDog("a")
	petB := testCat("b")

	for _, size := range []domain.SizeClass{domain.SizeSmall, domain.SizeLarge} {
		petB.Size = size
		result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())
		assert.Equal(t, 50, result.FactorScores.Size)
	}
}

func TestScoreBreed(t *testing.T) {
	scorer := newTestScorer(t)

	petA := testDog("a") // golden-retriever, sporting
	petB := testDog("b")
	petB.BreedID = "labrador-retriever" // sporting
	result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 90, result.FactorScores.Breed)

	petB.BreedID = "border-collie" // herding
	result = scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 70, result.FactorScores.Breed)

	petB.BreedID = "street-special"
	result = scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 50, result.FactorScores.Breed)
}

func TestScoreSocialization(t *testing.T) {
	scorer := newTestScorer(t)

	// Same species: weaker same-species comfort wins.
	petA := testDog("a")
	petA.Social.WithDogs = 5
	petB := testDog("b")
	petB.Social.WithDogs = 2
	result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 40, result.FactorScores.Socialization)

	// Cross species: dog's cat comfort vs cat's dog comfort.
	cat := testCat("c")
	cat.Social.WithDogs = 4
	petA.Social.WithCats = 3
	result = scorer.Score(petA, cat, domain.DefaultMatchingWeights())
	assert.Equal(t, 60, result.FactorScores.Socialization)
}

func TestScoreIntent(t *testing.T) {
	scorer := newTestScorer(t)

	petA := testDog("a")
	petA.Intents = []domain.Intent{domain.IntentPlaydate, domain.IntentCompanionship}
	petB := testDog("b")
	petB.Intents = []domain.Intent{domain.IntentPlaydate}
	result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 50, result.FactorScores.Intent)

	petB.Intents = []domain.Intent{domain.IntentAdoption}
	result = scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 0, result.FactorScores.Intent)
}

func TestScoreHealthBonus(t *testing.T) {
	scorer := newTestScorer(t)

	petA := testDog("a")
	petB := testDog("b")
	result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 50, result.FactorScores.Health) // vaccinated only

	petA.VetVerified = true
	petB.VetVerified = true
	result = scorer.Score(petA, petB, domain.DefaultMatchingWeights())
	assert.Equal(t, 100, result.FactorScores.Health)
}

func TestScoreGoldenPair(t *testing.T) {
	scorer := newTestScorer(t)

	petA := testDog("a")
	petB := testDog("b")
	for _, p := range []*domain.PetProfile{petA, petB} {
		p.Temperament.Traits = []string{"friendly", "intelligent"}
		p.AgeMonths = 36
		p.VetVerified = true
	}

	result := scorer.Score(petA, petB, domain.DefaultMatchingWeights())

	assert.GreaterOrEqual(t, result.TotalScore, 95)

	var hasTraitsNote, hasVetNote bool
	for _, note := range result.Explanation.Positive {
		switch note.EN {
		case "The pets share many personality traits",
			"The pets' personalities align perfectly":
			hasTraitsNote = true
		case "Both pets are verified by a veterinarian":
			hasVetNote = true
		}
	}
	assert.True(t, hasTraitsNote, "expected a shared-traits note")
	assert.True(t, hasVetNote, "expected a vet-verified note")
}

func TestDistanceKm(t *testing.T) {
	sofia := domain.Location{Lat: 42.70, Lng: 23.32}
	varna := domain.Location{Lat: 43.21, Lng: 27.91}

	assert.InDelta(t, 0, DistanceKm(sofia, sofia), 0.001)
	assert.InDelta(t, 377, DistanceKm(sofia, varna), 15)
}
