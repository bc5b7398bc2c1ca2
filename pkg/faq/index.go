package faq

import (
	"fmt"
	"math"
	"sort"

	"screenprint-chatbot-be/pkg/embedding"
)

// Match is one scored retrieval result.
type Match struct {
	Entry      Entry
	Similarity float64
}

// Index holds embedded FAQ questions for nearest-neighbour lookup.
type Index struct {
	provider embedding.EmbeddingProvider
	entries  []Entry
	vectors  [][]float32
}

// BuildIndex embeds every FAQ question up front. The corpus is small and
// static, so the whole index lives in memory.
func BuildIndex(provider embedding.EmbeddingProvider, entries []Entry) (*Index, error) {
	idx := &Index{
		provider: provider,
		entries:  entries,
		vectors:  make([][]float32, 0, len(entries)),
	}
	for _, e := range entries {
		resp, err := provider.Generate(e.Question, "RETRIEVAL_DOCUMENT")
		if err != nil {
			return nil, fmt.Errorf("embed faq question %q: %w", e.Question, err)
		}
		idx.vectors = append(idx.vectors, normalize(resp.Embedding.Values))
	}
	return idx, nil
}

// Search returns the top K entries most similar to the query, best first.
func (idx *Index) Search(query string, k int) ([]Match, error) {
	resp, err := idx.provider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	qv := normalize(resp.Embedding.Values)

	matches := make([]Match, 0, len(idx.entries))
	for i, e := range idx.entries {
		matches = append(matches, Match{
			Entry:      e,
			Similarity: cosine(qv, idx.vectors[i]),
		})
	}
	sort.Slice(matches, func(a, b int) bool {
		return matches[a].Similarity > matches[b].Similarity
	})
	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

// normalize scales a vector to unit length so a dot product is a cosine
// similarity.
func normalize(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude == 0 {
		return vec
	}
	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = float32(float64(v) / magnitude)
	}
	return out
}
