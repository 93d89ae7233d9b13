package recommend

import (
	"fmt"
	"testing"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browseDog(id string) *domain.PetProfile {
	return &domain.PetProfile{
		ID:        id,
		Species:   domain.SpeciesDog,
		BreedID:   "golden-retriever",
		AgeMonths: 36,
		Size:      domain.SizeLarge,
		Temperament: domain.Temperament{
			Energy: 3,
			Traits: []string{"friendly", "playful"},
		},
		Interests: []string{"fetch", "walking"},
		Location:  domain.Location{Lat: 42.70, Lng: 23.32},
		IsActive:  true,
	}
}

func TestRankExcludesViewedAndSelf(t *testing.T) {
	ref := browseDog("ref")
	candidates := []*domain.PetProfile{
		browseDog("ref"), // self
		browseDog("seen"),
		browseDog("fresh"),
	}

	results := Rank(RankInput{
		ReferencePet: ref,
		Candidates:   candidates,
		ViewedIDs:    []string{"seen"},
	})

	require.Len(t, results, 1)
	assert.Equal(t, "fresh", results[0].PetID)
}

func TestRankExcludesInactive(t *testing.T) {
	ref := browseDog("ref")
	retired := browseDog("retired")
	retired.IsActive = false

	results := Rank(RankInput{
		ReferencePet: ref,
		Candidates:   []*domain.PetProfile{retired, browseDog("active")},
	})

	require.Len(t, results, 1)
	assert.Equal(t, "active", results[0].PetID)
}

func TestRankSortedDescending(t *testing.T) {
	ref := browseDog("ref")

	similar := browseDog("twin")
	distant := browseDog("distant")
	distant.Temperament.Traits = []string{"lazy"}
	distant.Interests = []string{"napping"}
	distant.AgeMonths = 120
	distant.Size = domain.SizeToy

	results := Rank(RankInput{
		ReferencePet: ref,
		Candidates:   []*domain.PetProfile{distant, similar},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "twin", results[0].PetID)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestRankScoreRangeAndReasons(t *testing.T) {
	ref := browseDog("ref")
	var candidates []*domain.PetProfile
	for i := 0; i < 10; i++ {
		c := browseDog(fmt.Sprintf("c-%d", i))
		c.AgeMonths = 12 * (i + 1)
		candidates = append(candidates, c)
	}

	results := Rank(RankInput{ReferencePet: ref, Candidates: candidates})

	require.Len(t, results, 10)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
		assert.NotEmpty(t, r.Reasons)
		assert.LessOrEqual(t, len(r.Reasons), 3)
		for _, reason := range r.Reasons {
			assert.NotEmpty(t, reason.EN)
			assert.NotEmpty(t, reason.BG)
		}
	}
}

func TestCategoryBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{85, CategoryPerfectMatch},
		{84, CategoryGreatFit},
		{70, CategoryGreatFit},
		{69, CategoryGoodPotential},
		{55, CategoryGoodPotential},
		{54, CategoryWorthExploring},
		{0, CategoryWorthExploring},
		{100, CategoryPerfectMatch},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categoryFor(tt.score), "score %d", tt.score)
	}
}

func TestCollaborativeScore(t *testing.T) {
	// No similar users: neutral.
	assert.Equal(t, 50.0, collaborativeScore("pet-1", nil))

	// No opinions on this candidate: neutral.
	peers := []domain.SimilarUser{
		{UserID: "u1", Similarity: 0.9, CommonLikes: []string{"other"}},
	}
	assert.Equal(t, 50.0, collaborativeScore("pet-1", peers))

	// A strong peer liked it.
	peers = []domain.SimilarUser{
		{UserID: "u1", Similarity: 0.8, CommonLikes: []string{"pet-1"}},
	}
	assert.InDelta(t, 100, collaborativeScore("pet-1", peers), 0.001)

	// Mixed verdicts are similarity-weighted.
	peers = []domain.SimilarUser{
		{UserID: "u1", Similarity: 0.5, CommonLikes: []string{"pet-1"}},
		{UserID: "u2", Similarity: 0.5, CommonPasses: []string{"pet-1"}},
	}
	assert.InDelta(t, 60, collaborativeScore("pet-1", peers), 0.001)
}

func TestCollaborativeSignalShiftsRanking(t *testing.T) {
	ref := browseDog("ref")
	a := browseDog("pet-a")
	b := browseDog("pet-b")

	peers := []domain.SimilarUser{
		{UserID: "u1", Similarity: 1.0, CommonLikes: []string{"pet-a"}, CommonPasses: []string{"pet-b"}},
	}

	results := Rank(RankInput{
		ReferencePet: ref,
		Candidates:   []*domain.PetProfile{a, b},
		SimilarUsers: peers,
	})

	require.Len(t, results, 2)
	assert.Equal(t, "pet-a", results[0].PetID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestContentScoreNeutralFallbacks(t *testing.T) {
	ref := browseDog("ref")
	ref.Temperament.Traits = nil
	ref.Interests = nil
	candidate := browseDog("c")
	candidate.Temperament.Traits = nil
	candidate.Interests = nil

	score, _ := contentScore(ref, candidate, nil)

	// Personality and interests neutral, size/age/activity identical.
	assert.Greater(t, score, 50.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestStaticPreferencesBoost(t *testing.T) {
	ref := browseDog("ref")
	candidate := browseDog("c")

	without, _ := contentScore(ref, candidate, nil)
	with, _ := contentScore(ref, candidate, &domain.StaticPreferences{
		FavoriteBreeds: []string{"golden-retriever"},
	})

	assert.Greater(t, with, without)
}

func TestActivityLevelKeywords(t *testing.T) {
	energetic := browseDog("e")
	energetic.Temperament.Traits = []string{"energetic"}
	energetic.Interests = []string{"running"}
	assert.Equal(t, 5, activityLevel(energetic))

	blank := browseDog("b")
	blank.Temperament.Traits = []string{"mysterious"}
	blank.Interests = nil
	assert.Equal(t, 3, activityLevel(blank))
}
