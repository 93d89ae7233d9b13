package matching

import (
	"math"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/breeds"
	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

// Explanation collects the bilingual notes produced while scoring a pair.
type Explanation struct {
	Positive []domain.Text `json:"positive"`
	Negative []domain.Text `json:"negative"`
}

// ScoreResult is the full outcome of one pairwise comparison.
type ScoreResult struct {
	TotalScore   int                 `json:"total_score"`
	FactorScores domain.FactorScores `json:"factor_scores"`
	Explanation  Explanation         `json:"explanation"`
}

// Scorer computes the nine-factor weighted compatibility score. It holds
// only the static breed table, so any number of Score calls may run
// concurrently.
type Scorer struct {
	breeds *breeds.Table
}

func NewScorer(table *breeds.Table) *Scorer {
	return &Scorer{breeds: table}
}

// Score compares two profiles under the given weight vector. Missing
// optional data (empty trait sets, unknown breeds, no coordinates overlap)
// falls back to documented neutral values; the function never fails.
func (s *Scorer) Score(petA, petB *domain.PetProfile, weights domain.MatchingWeights) ScoreResult {
	var result ScoreResult
	var raw [len(factorFuncs)]float64

	for i, fn := range factorFuncs {
		score := fn.score(s, petA, petB, &result.Explanation)
		raw[i] = clampScore(score)
		result.FactorScores.Set(fn.factor, int(math.Round(raw[i])))
	}

	var weighted float64
	for i, fn := range factorFuncs {
		weighted += raw[i] * weights.Of(fn.factor)
	}
	result.TotalScore = int(math.Round(clampScore(weighted / 100)))

	return result
}

type factorFunc struct {
	factor domain.Factor
	score  func(s *Scorer, a, b *domain.PetProfile, ex *Explanation) float64
}

var factorFuncs = [...]factorFunc{
	{domain.FactorTemperament, (*Scorer).scoreTemperament},
	{domain.FactorEnergy, (*Scorer).scoreEnergy},
	{domain.FactorLifeStage, (*Scorer).scoreLifeStage},
	{domain.FactorSize, (*Scorer).scoreSizeCompatibility},
	{domain.FactorBreed, (*Scorer).scoreBreed},
	{domain.FactorSocialization, (*Scorer).scoreSocialization},
	{domain.FactorIntent, (*Scorer).scoreIntent},
	{domain.FactorDistance, (*Scorer).scoreDistance},
	{domain.FactorHealth, (*Scorer).scoreHealth},
}

// scoreTemperament scores trait-set overlap (Jaccard, scaled to 0-100).
// Neutral 50 when either pet has no declared traits.
func (s *Scorer) scoreTemperament(a, b *domain.PetProfile, ex *Explanation) float64 {
	traitsA := a.Temperament.Traits
	traitsB := b.Temperament.Traits
	if len(traitsA) == 0 || len(traitsB) == 0 {
		return 50
	}

	setA := make(map[string]struct{}, len(traitsA))
	for _, t := range traitsA {
		setA[t] = struct{}{}
	}
	union := make(map[string]struct{}, len(traitsA)+len(traitsB))
	for _, t := range traitsA {
		union[t] = struct{}{}
	}
	shared := 0
	for _, t := range traitsB {
		if _, ok := setA[t]; ok {
			shared++
		}
		union[t] = struct{}{}
	}

	switch {
	case shared >= 3:
		ex.positive("The pets share many personality traits", "Любимците споделят много общи черти на характера")
	case shared == 0:
		ex.negative("The pets have no personality traits in common", "Любимците нямат общи черти на характера")
	case shared == len(union):
		ex.positive("The pets' personalities align perfectly", "Характерите на любимците си пасват идеално")
	}

	return float64(shared) / float64(len(union)) * 100
}

// scoreEnergy: 100 - 25 per level of energy difference, floored at 0.
func (s *Scorer) scoreEnergy(a, b *domain.PetProfile, ex *Explanation) float64 {
	delta := abs(a.Temperament.Energy - b.Temperament.Energy)
	switch {
	case delta == 0:
		ex.positive("Perfectly matched energy levels", "Идеално съвпадащи нива на енергия")
	case delta >= 3:
		ex.negative("Very different energy levels", "Много различни нива на енергия")
	}
	return math.Max(0, 100-25*float64(delta))
}

// scoreLifeStage: 100 - 10 per year of age difference, floored at 0.
func (s *Scorer) scoreLifeStage(a, b *domain.PetProfile, ex *Explanation) float64 {
	deltaMonths := abs(a.AgeMonths - b.AgeMonths)
	switch {
	case deltaMonths <= 12:
		ex.positive("The pets are close in age", "Любимците са близки по възраст")
	case deltaMonths >= 48:
		ex.negative("Large age difference", "Голяма възрастова разлика")
	}
	return math.Max(0, 100-10*(float64(deltaMonths)/12))
}

// Size adjacency per species. Two classes are compatible when no more than
// one step apart on the species' ordinal ladder.
var sizeOrdinals = map[domain.Species]map[domain.SizeClass]int{
	domain.SpeciesDog: {
		domain.SizeToy:    0,
		domain.SizeSmall:  1,
		domain.SizeMedium: 2,
		domain.SizeLarge:  3,
		domain.SizeGiant:  4,
	},
	domain.SpeciesCat: {
		domain.SizeSmall:  0,
		domain.SizeMedium: 1,
		domain.SizeLarge:  2,
	},
}

// scoreSizeCompatibility: adjacency lookup within one species, neutral 50
// across species.
func (s *Scorer) scoreSizeCompatibility(a, b *domain.PetProfile, ex *Explanation) float64 {
	if a.Species != b.Species {
		return 50
	}
	ordinals, ok := sizeOrdinals[a.Species]
	if !ok {
		return 50
	}
	ordA, okA := ordinals[a.Size]
	ordB, okB := ordinals[b.Size]
	if !okA || !okB {
		return 50
	}
	if abs(ordA-ordB) <= 1 {
		return 100
	}
	return 30
}

// scoreBreed: 90 for a shared breed family, 70 for recognized but unrelated
// breeds, neutral 50 across species or when either breed is unknown.
func (s *Scorer) scoreBreed(a, b *domain.PetProfile, ex *Explanation) float64 {
	if a.Species != b.Species {
		return 50
	}
	breedA, okA := s.breeds.Resolve(a.BreedID)
	breedB, okB := s.breeds.Resolve(b.BreedID)
	if !okA || !okB {
		return 50
	}
	if breedA.Family == breedB.Family {
		ex.positive("The breeds belong to the same family", "Породите принадлежат към едно и също семейство")
		return 90
	}
	return 70
}

// scoreSocialization: same-species pairs use the weaker of the two
// same-species comfort levels; cross-species pairs use the dog's comfort
// with cats against the cat's comfort with dogs.
func (s *Scorer) scoreSocialization(a, b *domain.PetProfile, ex *Explanation) float64 {
	var comfortA, comfortB int
	if a.Species == b.Species {
		if a.Species == domain.SpeciesCat {
			comfortA, comfortB = a.Social.WithCats, b.Social.WithCats
		} else {
			comfortA, comfortB = a.Social.WithDogs, b.Social.WithDogs
		}
	} else {
		dog, cat := a, b
		if a.Species == domain.SpeciesCat {
			dog, cat = b, a
		}
		comfortA, comfortB = dog.Social.WithCats, cat.Social.WithDogs
	}
	return float64(min(comfortA, comfortB)) * 20
}

// scoreIntent: share of overlapping intents relative to the larger intent set.
func (s *Scorer) scoreIntent(a, b *domain.PetProfile, ex *Explanation) float64 {
	if len(a.Intents) == 0 || len(b.Intents) == 0 {
		return 0
	}
	shared := 0
	for _, intent := range a.Intents {
		if b.HasIntent(intent) {
			shared++
		}
	}
	if shared == 0 {
		ex.negative("The owners are looking for different things", "Собствениците търсят различни неща")
		return 0
	}
	ex.positive("The owners share the same goals", "Собствениците имат еднакви цели")
	return float64(shared) / float64(max(len(a.Intents), len(b.Intents))) * 100
}

// scoreDistance: 100 - 2 per km, floored at 0 (zero beyond 50 km).
func (s *Scorer) scoreDistance(a, b *domain.PetProfile, ex *Explanation) float64 {
	km := DistanceKm(a.Location, b.Location)
	switch {
	case km <= 5:
		ex.positive("The pets live very close to each other", "Любимците живеят много близо един до друг")
	case km >= 30:
		ex.negative("The pets live far apart", "Любимците живеят далеч един от друг")
	}
	return math.Max(0, 100-2*km)
}

// scoreHealth: +50 when both are vaccinated, +50 when both are
// vet-verified, capped at 100.
func (s *Scorer) scoreHealth(a, b *domain.PetProfile, ex *Explanation) float64 {
	var score float64
	if a.Health.VaccinationsUpToDate && b.Health.VaccinationsUpToDate {
		score += 50
	}
	if a.VetVerified && b.VetVerified {
		score += 50
		ex.positive("Both pets are verified by a veterinarian", "И двата любимеца са проверени от ветеринарен лекар")
	}
	return math.Min(score, 100)
}

func (ex *Explanation) positive(en, bg string) {
	ex.Positive = append(ex.Positive, domain.Text{EN: en, BG: bg})
}

func (ex *Explanation) negative(en, bg string) {
	ex.Negative = append(ex.Negative, domain.Text{EN: en, BG: bg})
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
