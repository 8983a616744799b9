package rag_test

import (
	"context"
	"errors"
	"testing"

	"github.com/limbo/fittrack/internal/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// EmbedderMock maps known texts to fixed vectors so similarity ranking is
// deterministic.
type EmbedderMock struct {
	vectors map[string][]float64
	err     error
}

func (m *EmbedderMock) Embed(ctx context.Context, input []string) ([][]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float64, len(input))
	for i, text := range input {
		vec, ok := m.vectors[text]
		if !ok {
			vec = []float64{0, 0, 1}
		}
		out[i] = vec
	}
	return out, nil
}

func TestStoreRetrieveRanksBySimilarity(t *testing.T) {
	embedder := &EmbedderMock{vectors: map[string][]float64{
		"cardio doc":   {1, 0, 0},
		"strength doc": {0, 1, 0},
		"sleep doc":    {0.1, 0.1, 1},
		"cardio query": {0.9, 0.1, 0},
	}}
	store := rag.NewStore(embedder)
	ctx := context.Background()
	require.NoError(t, store.Index(ctx, []string{"cardio doc", "strength doc", "sleep doc"}))

	chunks, err := store.Retrieve(ctx, "cardio query", 2)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "cardio doc", chunks[0])
}

func TestStoreRetrieveEmptyStore(t *testing.T) {
	store := rag.NewStore(&EmbedderMock{})
	chunks, err := store.Retrieve(context.Background(), "anything", 3)
	assert.NoError(t, err)
	assert.Nil(t, chunks)
}

func TestStoreRetrieveKLargerThanStore(t *testing.T) {
	embedder := &EmbedderMock{vectors: map[string][]float64{}}
	store := rag.NewStore(embedder)
	ctx := context.Background()
	require.NoError(t, store.Index(ctx, []string{"only doc"}))
	chunks, err := store.Retrieve(ctx, "query", 10)
	require.NoError(t, err)
	assert.Len(t, chunks, 1)
}

func TestStoreIndexErrors(t *testing.T) {
	t.Run("no documents", func(t *testing.T) {
		store := rag.NewStore(&EmbedderMock{})
		assert.Error(t, store.Index(context.Background(), nil))
	})
	t.Run("embedder failure", func(t *testing.T) {
		store := rag.NewStore(&EmbedderMock{err: errors.New("provider down")})
		assert.Error(t, store.Index(context.Background(), []string{"doc"}))
	})
	t.Run("no embedder", func(t *testing.T) {
		store := rag.NewStore(nil)
		assert.Error(t, store.Index(context.Background(), []string{"doc"}))
	})
}

func TestKnowledgeChunksNotEmpty(t *testing.T) {
	chunks := rag.KnowledgeChunks()
	assert.Greater(t, len(chunks), 10)
	for _, c := range chunks {
		assert.NotEmpty(t, c)
	}
}
