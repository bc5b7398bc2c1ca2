package faq

import (
	"context"
	"strings"
	"testing"

	"screenprint-chatbot-be/pkg/embedding"
)

// fakeProvider embeds text as a fixed bag-of-words vector so similarity is
// deterministic in tests.
type fakeProvider struct {
	vocab []string
}

func (f *fakeProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	lower := strings.ToLower(text)
	values := make([]float32, len(f.vocab))
	for i, w := range f.vocab {
		if strings.Contains(lower, w) {
			values[i] = 1
		}
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: values},
	}, nil
}

func newFakeIndex(t *testing.T) *Retriever {
	t.Helper()
	provider := &fakeProvider{vocab: []string{"minimum", "order", "turnaround", "time", "shipping", "zebra"}}
	entries := []Entry{
		{Question: "What is your minimum order quantity?", Answer: "Our minimum is 12 pieces."},
		{Question: "What is the turnaround time?", Answer: "7 to 10 business days."},
		{Question: "Do you offer shipping?", Answer: "Yes, nationwide."},
	}
	index, err := BuildIndex(provider, entries)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return &Retriever{index: index}
}

func TestSearchRanksBestMatchFirst(t *testing.T) {
	r := newFakeIndex(t)
	matches, err := r.index.Search("what is the minimum order", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Entry.Answer != "Our minimum is 12 pieces." {
		t.Errorf("best match = %q", matches[0].Entry.Question)
	}
	if matches[0].Similarity <= matches[1].Similarity {
		t.Errorf("matches not sorted: %v >= %v wanted", matches[0].Similarity, matches[1].Similarity)
	}
}

func TestRetrieveHedgesOnWeakMatch(t *testing.T) {
	r := newFakeIndex(t)
	answer, err := r.Retrieve(context.Background(), "zebra")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if !strings.Contains(answer, "not completely sure") {
		t.Errorf("weak match should hedge, got %q", answer)
	}
}

func TestRetrieveAppendsStrongSecondMatch(t *testing.T) {
	r := newFakeIndex(t)
	answer, err := r.Retrieve(context.Background(), "minimum order turnaround time")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if !strings.Contains(answer, "Our minimum is 12 pieces.") {
		t.Errorf("missing best answer: %q", answer)
	}
	if !strings.Contains(answer, "Related:") {
		t.Errorf("strong second match should be appended: %q", answer)
	}
}
