package recommend

import (
	"math"
	"strings"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

// Content factor weights; sum to 1.
const (
	weightPersonality = 0.35
	weightSize        = 0.15
	weightAge         = 0.15
	weightInterests   = 0.2
	weightActivity    = 0.1
	weightStaticPrefs = 0.05
)

// complementaryTraits maps a personality trait to the traits that pair well
// with it without being identical. Exact matches score above complementary
// ones, which score above unrelated ones.
var complementaryTraits = map[string][]string{
	"playful":     {"energetic", "social"},
	"energetic":   {"playful", "adventurous"},
	"calm":        {"gentle", "independent"},
	"gentle":      {"calm", "shy"},
	"shy":         {"calm", "gentle"},
	"friendly":    {"social", "playful"},
	"social":      {"friendly", "playful"},
	"independent": {"calm"},
	"curious":     {"adventurous", "intelligent"},
	"intelligent": {"curious", "trainable"},
	"adventurous": {"energetic", "curious"},
	"loyal":       {"friendly", "protective"},
	"protective":  {"loyal", "calm"},
	"trainable":   {"intelligent", "social"},
}

// activityKeywords maps trait and interest keywords to a 1-5 activity level.
var activityKeywords = map[string]int{
	"energetic":   5,
	"active":      5,
	"running":     5,
	"agility":     5,
	"playful":     4,
	"adventurous": 4,
	"hiking":      4,
	"fetch":       4,
	"social":      3,
	"curious":     3,
	"walking":     3,
	"calm":        2,
	"gentle":      2,
	"cuddling":    2,
	"lazy":        1,
	"relaxed":     1,
	"napping":     1,
}

const defaultActivityLevel = 3

// unified size ladder used for ordinal proximity in browsing; unlike the
// pairwise scorer this is species-agnostic on purpose, browsing may show
// cross-species candidates.
var sizeLadder = map[domain.SizeClass]int{
	domain.SizeToy:    0,
	domain.SizeSmall:  1,
	domain.SizeMedium: 2,
	domain.SizeLarge:  3,
	domain.SizeGiant:  4,
}

// contentFactor is one scored content dimension plus the reason shown to the
// user when its threshold triggers.
type contentFactor struct {
	score  float64
	weight float64
	reason *domain.Text
}

// contentScore computes the six-factor profile-similarity score in [0,100]
// and the triggered per-factor reasons, strongest weight first.
func contentScore(ref, candidate *domain.PetProfile, prefs *domain.StaticPreferences) (float64, []domain.Text) {
	factors := []contentFactor{
		personalityFactor(ref, candidate),
		sizeFactor(ref, candidate),
		ageFactor(ref, candidate),
		interestFactor(ref, candidate),
		activityFactor(ref, candidate),
		staticPrefsFactor(candidate, prefs),
	}

	var total float64
	var reasons []domain.Text
	for _, f := range factors {
		total += f.score * f.weight
		if f.reason != nil {
			reasons = append(reasons, *f.reason)
		}
	}
	return clamp(total, 0, 100), reasons
}

func personalityFactor(ref, candidate *domain.PetProfile) contentFactor {
	traitsA := normalizeSet(ref.Temperament.Traits)
	traitsB := normalizeSet(candidate.Temperament.Traits)
	if len(traitsA) == 0 || len(traitsB) == 0 {
		return contentFactor{score: 50, weight: weightPersonality}
	}

	var sum float64
	for trait := range traitsA {
		best := 30.0 // unrelated
		if _, ok := traitsB[trait]; ok {
			best = 100 // exact match
		} else {
			for _, comp := range complementaryTraits[trait] {
				if _, ok := traitsB[comp]; ok {
					best = 70 // complementary
					break
				}
			}
		}
		sum += best
	}
	score := sum / float64(len(traitsA))

	f := contentFactor{score: score, weight: weightPersonality}
	if score >= 70 {
		f.reason = &domain.Text{
			EN: "Their personalities complement each other",
			BG: "Характерите им се допълват взаимно",
		}
	}
	return f
}

func sizeFactor(ref, candidate *domain.PetProfile) contentFactor {
	ordA, okA := sizeLadder[ref.Size]
	ordB, okB := sizeLadder[candidate.Size]
	if !okA || !okB {
		return contentFactor{score: 50, weight: weightSize}
	}

	dist := ordA - ordB
	if dist < 0 {
		dist = -dist
	}
	score := math.Max(0, 100-25*float64(dist))

	f := contentFactor{score: score, weight: weightSize}
	if dist == 0 {
		f.reason = &domain.Text{
			EN: "They are a similar size",
			BG: "Те са с подобен размер",
		}
	}
	return f
}

func ageFactor(ref, candidate *domain.PetProfile) contentFactor {
	diffYears := math.Abs(float64(ref.AgeMonths-candidate.AgeMonths)) / 12

	var score float64
	switch {
	case diffYears == 0:
		score = 100
	case diffYears <= 1:
		score = 90
	case diffYears <= 2:
		score = 75
	case diffYears <= 3:
		score = 60
	case diffYears <= 5:
		score = 45
	default:
		score = 30
	}

	f := contentFactor{score: score, weight: weightAge}
	if score >= 90 {
		f.reason = &domain.Text{
			EN: "They are close in age",
			BG: "Те са близки по възраст",
		}
	}
	return f
}

func interestFactor(ref, candidate *domain.PetProfile) contentFactor {
	setA := normalizeSet(ref.Interests)
	setB := normalizeSet(candidate.Interests)
	if len(setA) == 0 || len(setB) == 0 {
		return contentFactor{score: 50, weight: weightInterests}
	}

	shared := 0
	union := len(setB)
	for interest := range setA {
		if _, ok := setB[interest]; ok {
			shared++
		} else {
			union++
		}
	}
	score := float64(shared) / float64(union) * 100

	f := contentFactor{score: score, weight: weightInterests}
	if shared >= 2 {
		f.reason = &domain.Text{
			EN: "They enjoy the same activities",
			BG: "Те обичат едни и същи занимания",
		}
	}
	return f
}

func activityFactor(ref, candidate *domain.PetProfile) contentFactor {
	levelA := activityLevel(ref)
	levelB := activityLevel(candidate)

	diff := levelA - levelB
	if diff < 0 {
		diff = -diff
	}
	score := math.Max(0, 100-25*float64(diff))

	f := contentFactor{score: score, weight: weightActivity}
	if diff == 0 {
		f.reason = &domain.Text{
			EN: "Their activity levels match",
			BG: "Нивата им на активност съвпадат",
		}
	}
	return f
}

// activityLevel averages the keyword-derived levels over a pet's traits and
// interests, defaulting to the middle of the scale when nothing matches.
func activityLevel(p *domain.PetProfile) int {
	sum, n := 0, 0
	for _, word := range append(append([]string{}, p.Temperament.Traits...), p.Interests...) {
		if level, ok := activityKeywords[strings.ToLower(strings.TrimSpace(word))]; ok {
			sum += level
			n++
		}
	}
	if n == 0 {
		return defaultActivityLevel
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func staticPrefsFactor(candidate *domain.PetProfile, prefs *domain.StaticPreferences) contentFactor {
	if prefs == nil {
		return contentFactor{score: 50, weight: weightStaticPrefs}
	}

	score := 50.0
	for _, breed := range prefs.FavoriteBreeds {
		if strings.EqualFold(breed, candidate.BreedID) {
			score = 100
			break
		}
	}
	if score < 100 {
		candidateTraits := normalizeSet(candidate.Temperament.Traits)
		for _, personality := range prefs.FavoritePersonalities {
			if _, ok := candidateTraits[strings.ToLower(strings.TrimSpace(personality))]; ok {
				score = 80
				break
			}
		}
	}

	f := contentFactor{score: score, weight: weightStaticPrefs}
	if score == 100 {
		f.reason = &domain.Text{
			EN: "One of your favorite breeds",
			BG: "Една от любимите ви породи",
		}
	}
	return f
}

func normalizeSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
