package domain

// Factor identifies one of the nine compatibility dimensions.
type Factor string

const (
	FactorTemperament   Factor = "temperament"
	FactorEnergy        Factor = "energy"
	FactorLifeStage     Factor = "life_stage"
	FactorSize          Factor = "size"
	FactorBreed         Factor = "breed"
	FactorSocialization Factor = "socialization"
	FactorIntent        Factor = "intent"
	FactorDistance      Factor = "distance"
	FactorHealth        Factor = "health"
)

// Factors lists all nine factors in canonical order. The learner and the
// scorer both iterate in this order so vectors line up.
var Factors = []Factor{
	FactorTemperament,
	FactorEnergy,
	FactorLifeStage,
	FactorSize,
	FactorBreed,
	FactorSocialization,
	FactorIntent,
	FactorDistance,
	FactorHealth,
}

// MatchingWeights assigns each factor its share of the total score. The
// defaults sum to 100; the validate tags carry each weight's safe range,
// enforced by the config loader rather than by the scoring functions.
type MatchingWeights struct {
	Temperament   float64 `mapstructure:"temperament" json:"temperament" validate:"min=5,max=40"`
	Energy        float64 `mapstructure:"energy" json:"energy" validate:"min=5,max=30"`
	LifeStage     float64 `mapstructure:"life_stage" json:"life_stage" validate:"min=0,max=25"`
	Size          float64 `mapstructure:"size" json:"size" validate:"min=0,max=25"`
	Breed         float64 `mapstructure:"breed" json:"breed" validate:"min=0,max=25"`
	Socialization float64 `mapstructure:"socialization" json:"socialization" validate:"min=5,max=30"`
	Intent        float64 `mapstructure:"intent" json:"intent" validate:"min=0,max=25"`
	Distance      float64 `mapstructure:"distance" json:"distance" validate:"min=0,max=20"`
	Health        float64 `mapstructure:"health" json:"health" validate:"min=0,max=20"`
}

// DefaultMatchingWeights returns the baseline vector (sums to 100).
func DefaultMatchingWeights() MatchingWeights {
	return MatchingWeights{
		Temperament:   20,
		Energy:        15,
		LifeStage:     10,
		Size:          10,
		Breed:         10,
		Socialization: 15,
		Intent:        10,
		Distance:      5,
		Health:        5,
	}
}

// Of returns the weight assigned to the given factor.
func (w MatchingWeights) Of(f Factor) float64 {
	switch f {
	case FactorTemperament:
		return w.Temperament
	case FactorEnergy:
		return w.Energy
	case FactorLifeStage:
		return w.LifeStage
	case FactorSize:
		return w.Size
	case FactorBreed:
		return w.Breed
	case FactorSocialization:
		return w.Socialization
	case FactorIntent:
		return w.Intent
	case FactorDistance:
		return w.Distance
	case FactorHealth:
		return w.Health
	}
	return 0
}

// Set assigns the weight for the given factor.
func (w *MatchingWeights) Set(f Factor, v float64) {
	switch f {
	case FactorTemperament:
		w.Temperament = v
	case FactorEnergy:
		w.Energy = v
	case FactorLifeStage:
		w.LifeStage = v
	case FactorSize:
		w.Size = v
	case FactorBreed:
		w.Breed = v
	case FactorSocialization:
		w.Socialization = v
	case FactorIntent:
		w.Intent = v
	case FactorDistance:
		w.Distance = v
	case FactorHealth:
		w.Health = v
	}
}

// Sum returns the total of all nine weights.
func (w MatchingWeights) Sum() float64 {
	var sum float64
	for _, f := range Factors {
		sum += w.Of(f)
	}
	return sum
}

// FactorScores holds the nine per-factor sub-scores of one comparison,
// each already rounded into [0,100] for display.
type FactorScores struct {
	Temperament   int `json:"temperament"`
	Energy        int `json:"energy"`
	LifeStage     int `json:"life_stage"`
	Size          int `json:"size"`
	Breed         int `json:"breed"`
	Socialization int `json:"socialization"`
	Intent        int `json:"intent"`
	Distance      int `json:"distance"`
	Health        int `json:"health"`
}

// Of returns the sub-score for the given factor.
func (s FactorScores) Of(f Factor) int {
	switch f {
	case FactorTemperament:
		return s.Temperament
	case FactorEnergy:
		return s.Energy
	case FactorLifeStage:
		return s.LifeStage
	case FactorSize:
		return s.Size
	case FactorBreed:
		return s.Breed
	case FactorSocialization:
		return s.Socialization
	case FactorIntent:
		return s.Intent
	case FactorDistance:
		return s.Distance
	case FactorHealth:
		return s.Health
	}
	return 0
}

// Set assigns the sub-score for the given factor.
func (s *FactorScores) Set(f Factor, v int) {
	switch f {
	case FactorTemperament:
		s.Temperament = v
	case FactorEnergy:
		s.Energy = v
	case FactorLifeStage:
		s.LifeStage = v
	case FactorSize:
		s.Size = v
	case FactorBreed:
		s.Breed = v
	case FactorSocialization:
		s.Socialization = v
	case FactorIntent:
		s.Intent = v
	case FactorDistance:
		s.Distance = v
	case FactorHealth:
		s.Health = v
	}
}
