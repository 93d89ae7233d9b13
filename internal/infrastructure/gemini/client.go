package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.7)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// SuggestProfileHints asks the model for trait suggestions and a short bio
// summary for a pet profile. Falls back to a heuristic result when the API
// is unavailable so onboarding never blocks on it.
func (c *Client) SuggestProfileHints(ctx context.Context, pet *domain.PetProfile) (*domain.AIHints, error) {
	prompt := fmt.Sprintf(`
		A pet owner is creating a profile for their %s (breed: %s, age: %d months).
		Declared personality traits: %s.

		Task: suggest up to 3 additional one-word personality traits that commonly
		fit this kind of pet, and write a one-sentence friendly bio summary.
		Output strict JSON: {"suggested_traits": ["..."], "bio_summary": "..."}
	`, pet.Species, pet.BreedID, pet.AgeMonths, strings.Join(pet.Temperament.Traits, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("gemini unavailable, using fallback hints: %v", err)
		return fallbackHints(pet), nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fallbackHints(pet), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	hints, err := parseHints(sb.String())
	if err != nil {
		log.Printf("gemini returned unparseable hints: %v", err)
		return fallbackHints(pet), nil
	}
	return hints, nil
}

func parseHints(raw string) (*domain.AIHints, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var hints domain.AIHints
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &hints); err != nil {
		return nil, err
	}
	if len(hints.SuggestedTraits) > 3 {
		hints.SuggestedTraits = hints.SuggestedTraits[:3]
	}
	return &hints, nil
}

func fallbackHints(pet *domain.PetProfile) *domain.AIHints {
	suggested := []string{"friendly"}
	if pet.Species == domain.SpeciesCat {
		suggested = append(suggested, "independent")
	} else {
		suggested = append(suggested, "loyal")
	}

	name := pet.Name
	if name == "" {
		name = "This pet"
	}
	return &domain.AIHints{
		SuggestedTraits: suggested,
		BioSummary:      fmt.Sprintf("%s is looking for new friends nearby!", name),
	}
}
