// Package recommend ranks unseen candidates for open browsing. It blends a
// six-factor profile-similarity score with a collaborative-filtering score
// derived from externally supplied peer behavior. This is deliberately a
// different algorithm from the pairwise compatibility scorer: browsing ranks
// many loosely-filtered candidates, compatibility judges one eligible pair.
package recommend

import (
	"math"
	"sort"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

// Hybrid blend: content-based similarity dominates, peer behavior refines.
const (
	contentBlend       = 0.7
	collaborativeBlend = 0.3
)

// Recommendation categories by score band.
const (
	CategoryPerfectMatch   = "perfect-match"
	CategoryGreatFit       = "great-fit"
	CategoryGoodPotential  = "good-potential"
	CategoryWorthExploring = "worth-exploring"
)

const maxReasons = 3

// Recommendation is one ranked candidate.
type Recommendation struct {
	PetID    string        `json:"pet_id"`
	Score    int           `json:"score"`
	Reasons  []domain.Text `json:"reasons"`
	Category string        `json:"category"`
}

// RankInput bundles everything one ranking call needs. SimilarUsers and
// StaticPrefs are optional; without them the collaborative score is neutral
// and the static-preference factor scores 50.
type RankInput struct {
	ReferencePet *domain.PetProfile
	Candidates   []*domain.PetProfile
	ViewedIDs    []string
	SimilarUsers []domain.SimilarUser
	StaticPrefs  *domain.StaticPreferences
}

// Rank scores every unseen candidate and returns them sorted by descending
// score. Candidates already viewed, inactive, or identical to the reference
// pet are dropped. Pure per call; callers may parallelize across inputs.
func Rank(input RankInput) []Recommendation {
	viewed := make(map[string]struct{}, len(input.ViewedIDs))
	for _, id := range input.ViewedIDs {
		viewed[id] = struct{}{}
	}

	recommendations := make([]Recommendation, 0, len(input.Candidates))
	for _, candidate := range input.Candidates {
		if candidate.ID == input.ReferencePet.ID {
			continue
		}
		if _, seen := viewed[candidate.ID]; seen {
			continue
		}
		if !candidate.IsActive {
			continue
		}

		content, reasons := contentScore(input.ReferencePet, candidate, input.StaticPrefs)
		collaborative := collaborativeScore(candidate.ID, input.SimilarUsers)
		hybrid := contentBlend*content + collaborativeBlend*collaborative

		score := int(math.Round(clamp(hybrid, 0, 100)))
		recommendations = append(recommendations, Recommendation{
			PetID:    candidate.ID,
			Score:    score,
			Reasons:  pickReasons(reasons),
			Category: categoryFor(score),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Score != recommendations[j].Score {
			return recommendations[i].Score > recommendations[j].Score
		}
		return recommendations[i].PetID < recommendations[j].PetID
	})
	return recommendations
}

func categoryFor(score int) string {
	switch {
	case score >= 85:
		return CategoryPerfectMatch
	case score >= 70:
		return CategoryGreatFit
	case score >= 55:
		return CategoryGoodPotential
	default:
		return CategoryWorthExploring
	}
}

// pickReasons keeps the strongest reasons (content factors emit them in
// weight order) and falls back to a generic note when nothing triggered.
func pickReasons(reasons []domain.Text) []domain.Text {
	if len(reasons) == 0 {
		return []domain.Text{{
			EN: "Worth getting to know",
			BG: "Заслужава си да се опознаете",
		}}
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}
