package breeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

func TestLoad(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	assert.Greater(t, table.Len(), 30)
}

func TestResolve(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	golden, ok := table.Resolve("golden-retriever")
	require.True(t, ok)
	assert.Equal(t, domain.SpeciesDog, golden.Species)
	assert.Equal(t, "sporting", golden.Family)

	_, ok = table.Resolve("unknown-breed")
	assert.False(t, ok)

	_, ok = table.Resolve("")
	assert.False(t, ok)
}

func TestResolveNormalizesID(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	_, ok := table.Resolve("  Golden-Retriever ")
	assert.True(t, ok)
}

func TestSameFamily(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	assert.True(t, table.SameFamily("golden-retriever", "labrador-retriever"))
	assert.False(t, table.SameFamily("golden-retriever", "german-shepherd"))
	assert.False(t, table.SameFamily("golden-retriever", "unknown-breed"))
}
