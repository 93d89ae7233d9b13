package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifeStage(t *testing.T) {
	tests := []struct {
		name      string
		species   Species
		ageMonths int
		want      LifeStage
	}{
		{"young dog", SpeciesDog, 6, LifeStagePuppy},
		{"adult dog", SpeciesDog, 36, LifeStageAdult},
		{"dog at senior boundary", SpeciesDog, 84, LifeStageSenior},
		{"dog just under senior", SpeciesDog, 83, LifeStageAdult},
		{"young cat", SpeciesCat, 11, LifeStageKitten},
		{"adult cat", SpeciesCat, 84, LifeStageAdult},
		{"cat at senior boundary", SpeciesCat, 120, LifeStageSenior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pet := &PetProfile{Species: tt.species, AgeMonths: tt.ageMonths}
			assert.Equal(t, tt.want, pet.LifeStage())
		})
	}
}

func TestHasBlocked(t *testing.T) {
	pet := &PetProfile{BlockedIDs: []string{"a", "b"}}
	assert.True(t, pet.HasBlocked("a"))
	assert.False(t, pet.HasBlocked("c"))

	empty := &PetProfile{}
	assert.False(t, empty.HasBlocked("a"))
}

func TestHasApprovedMedia(t *testing.T) {
	pet := &PetProfile{Media: []MediaItem{
		{ID: "m1", Moderation: ModerationPending},
		{ID: "m2", Moderation: ModerationRejected},
	}}
	assert.False(t, pet.HasApprovedMedia())

	pet.Media = append(pet.Media, MediaItem{ID: "m3", Moderation: ModerationApproved})
	assert.True(t, pet.HasApprovedMedia())
}

func TestMatchingWeightsOfSetRoundTrip(t *testing.T) {
	var w MatchingWeights
	for i, f := range Factors {
		w.Set(f, float64(i+1))
	}
	for i, f := range Factors {
		assert.InDelta(t, float64(i+1), w.Of(f), 1e-9)
	}
	assert.InDelta(t, 45, w.Sum(), 1e-9)
}

func TestDefaultMatchingWeightsSumTo100(t *testing.T) {
	assert.InDelta(t, 100, DefaultMatchingWeights().Sum(), 1e-9)
}
