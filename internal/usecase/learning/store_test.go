package learning

import (
	"context"
	"sync"
	"testing"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	learned := &domain.LearnedWeights{
		UserID:     "user-1",
		Weights:    domain.DefaultMatchingWeights(),
		Confidence: 0.7,
		SampleSize: 25,
	}
	require.NoError(t, store.Put(ctx, learned))

	got, err = store.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0.7, got.Confidence)

	// Put overwrites; there is no versioning.
	learned.Confidence = 0.9
	require.NoError(t, store.Put(ctx, learned))
	got, err = store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0.9, got.Confidence)

	require.NoError(t, store.Delete(ctx, "user-1"))
	got, err = store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.LearnedWeights{UserID: "user-1", Confidence: 0.5}))

	got, _ := store.Get(ctx, "user-1")
	got.Confidence = 0.99

	again, _ := store.Get(ctx, "user-1")
	assert.Equal(t, 0.5, again.Confidence)
}

func TestMemoryStoreConcurrentWriters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Put(ctx, &domain.LearnedWeights{UserID: "user-1", SampleSize: n})
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.GreaterOrEqual(t, got.SampleSize, 0)
	assert.Less(t, got.SampleSize, 20)
}
