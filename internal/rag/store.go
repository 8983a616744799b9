// Package rag holds the fitness knowledge base and an in-memory vector
// store used to ground chat answers.
package rag

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
)

type Embedder interface {
	Embed(ctx context.Context, input []string) ([][]float64, error)
}

type chunk struct {
	text string
	vec  []float64
}

type Store struct {
	embedder Embedder

	mu     sync.RWMutex
	chunks []chunk
}

func NewStore(embedder Embedder) *Store {
	return &Store{
		embedder: embedder,
	}
}

// Index embeds the documents and replaces the store contents.
func (s *Store) Index(ctx context.Context, docs []string) error {
	if s.embedder == nil {
		return errors.New("store has no embedder")
	}
	if len(docs) == 0 {
		return errors.New("nothing to index")
	}
	vectors, err := s.embedder.Embed(ctx, docs)
	if err != nil {
		return errors.New("embedding documents error: " + err.Error())
	}
	chunks := make([]chunk, len(docs))
	for i, doc := range docs {
		chunks[i] = chunk{text: doc, vec: vectors[i]}
	}
	s.mu.Lock()
	s.chunks = chunks
	s.mu.Unlock()
	return nil
}

// Retrieve returns up to k chunks most similar to the query. An empty store
// yields no chunks and no error.
func (s *Store) Retrieve(ctx context.Context, query string, k int) ([]string, error) {
	s.mu.RLock()
	chunks := s.chunks
	s.mu.RUnlock()
	if len(chunks) == 0 || k < 1 {
		return nil, nil
	}
	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, errors.New("embedding query error: " + err.Error())
	}
	queryVec := vectors[0]

	type scored struct {
		text  string
		score float64
	}
	ranked := make([]scored, 0, len(chunks))
	for _, c := range chunks {
		ranked = append(ranked, scored{text: c.text, score: cosine(queryVec, c.vec)})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if k > len(ranked) {
		k = len(ranked)
	}
	result := make([]string, 0, k)
	for _, r := range ranked[:k] {
		result = append(result, r.text)
	}
	return result, nil
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
