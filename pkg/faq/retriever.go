package faq

import (
	"context"
	"fmt"
	"os"

	"screenprint-chatbot-be/pkg/embedding"
)

// minSimilarity is the score below which a match is treated as a guess
// rather than an answer.
const minSimilarity = 0.3

// Retriever answers free-form product questions from the FAQ index.
type Retriever struct {
	index *Index
}

// NewRetriever loads the FAQ corpus from filePath (falling back to the
// built-in corpus when the path is empty or unreadable) and embeds it.
func NewRetriever(provider embedding.EmbeddingProvider, filePath string) (*Retriever, error) {
	text := DefaultCorpus
	if filePath != "" {
		if data, err := os.ReadFile(filePath); err == nil {
			text = string(data)
		}
	}
	entries := Parse(text)
	if len(entries) == 0 {
		return nil, fmt.Errorf("faq corpus is empty")
	}
	index, err := BuildIndex(provider, entries)
	if err != nil {
		return nil, err
	}
	return &Retriever{index: index}, nil
}

// Retrieve composes an answer from the two best matches. A weak best match
// produces a hedged answer, and a strong second match is appended as
// related information.
func (r *Retriever) Retrieve(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	matches, err := r.index.Search(question, 2)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no faq matches")
	}

	best := matches[0]
	if best.Similarity < minSimilarity {
		return "I'm not completely sure, but this might help: " + best.Entry.Answer +
			"\n\nFor anything specific, our team at 425.303.3381 can give you a definitive answer.", nil
	}

	answer := best.Entry.Answer
	if len(matches) > 1 && matches[1].Similarity >= minSimilarity {
		answer += "\n\nRelated: " + matches[1].Entry.Answer
	}
	return answer, nil
}
