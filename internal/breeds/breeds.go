// Package breeds ships the static breed reference table used for coarse
// species/breed compatibility heuristics. The dataset is embedded; unknown
// breed ids resolve to nothing and callers fall back to a neutral score.
package breeds

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

//go:embed breeds.json
var rawBreeds []byte

// Breed is one reference entry: a broad family ("sporting", "herding") plus
// descriptive tags.
type Breed struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Species domain.Species `json:"species"`
	Family  string         `json:"family"`
	Tags    []string       `json:"tags"`
}

// Table is the in-memory breed index, keyed by normalized breed id.
type Table struct {
	byID map[string]Breed
}

// Load parses the embedded dataset into a Table.
func Load() (*Table, error) {
	var entries []Breed
	if err := json.Unmarshal(rawBreeds, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse breed dataset: %w", err)
	}
	byID := make(map[string]Breed, len(entries))
	for _, b := range entries {
		byID[normalize(b.ID)] = b
	}
	return &Table{byID: byID}, nil
}

// Resolve looks up a breed by id. The second return is false for unknown or
// empty ids.
func (t *Table) Resolve(id string) (Breed, bool) {
	b, ok := t.byID[normalize(id)]
	return b, ok
}

// SameFamily reports whether two breed ids resolve to the same family.
// Either id being unknown yields false.
func (t *Table) SameFamily(idA, idB string) bool {
	a, okA := t.Resolve(idA)
	b, okB := t.Resolve(idB)
	return okA && okB && a.Family == b.Family
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.byID)
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
