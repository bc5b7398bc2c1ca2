package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/llm"
	"screenprint-chatbot-be/pkg/store"
)

// Result is a classified user message.
type Result struct {
	Intent     store.Intent `json:"intent"`
	Confidence float64      `json:"confidence"`
	Reasoning  string       `json:"reasoning"`
}

// Classifier labels user messages with one intent from the closed set.
// A model does the labeling; keyword matching covers model failures.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewClassifier(llmProvider llm.LLMProvider, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Classify labels one user message. It never fails: when the model call or
// parse goes wrong the keyword fallback decides.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	prompt := fmt.Sprintf("%s\n\nUser message: %q", constant.IntentClassifierPrompt, text)

	response, err := c.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		c.logger.Printf("[WARN] intent model call failed, using keywords: %v", err)
		return KeywordFallback(text)
	}

	result, err := parseResult(response)
	if err != nil {
		c.logger.Printf("[WARN] intent parse failed, using keywords: %v", err)
		return KeywordFallback(text)
	}

	c.logger.Printf("[INTENT] %s (confidence %.2f): %s", result.Intent, result.Confidence, result.Reasoning)
	return result
}

var validIntents = map[store.Intent]bool{
	store.IntentGreeting:   true,
	store.IntentQuestions:  true,
	store.IntentPlaceOrder: true,
	store.IntentEnd:        true,
	store.IntentWantsHuman: true,
	store.IntentNoMatch:    true,
	store.IntentYes:        true,
	store.IntentNo:         true,
}

func parseResult(response string) (Result, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return Result{}, fmt.Errorf("no JSON found in response")
	}

	var raw struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(jsonContent), &raw); err != nil {
		return Result{}, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	labeled := store.Intent(strings.TrimSpace(raw.Intent))
	if !validIntents[labeled] {
		return Result{}, fmt.Errorf("model produced unknown intent %q", raw.Intent)
	}

	return Result{
		Intent:     labeled,
		Confidence: raw.Confidence,
		Reasoning:  raw.Reasoning,
	}, nil
}

// KeywordFallback classifies by keyword groups. Product questions win over
// order requests, which win over human and end requests.
func KeywordFallback(text string) Result {
	lower := strings.ToLower(text)

	contains := func(keywords []string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}

	result := func(in store.Intent, reason string) Result {
		return Result{Intent: in, Confidence: 0.5, Reasoning: reason}
	}

	switch {
	case contains(constant.ProductKeywords):
		return result(store.IntentQuestions, "keyword fallback: product terms")
	case contains([]string{"order", "quote", "buy", "purchase"}):
		return result(store.IntentPlaceOrder, "keyword fallback: order terms")
	case contains(constant.HumanKeywords):
		return result(store.IntentWantsHuman, "keyword fallback: human terms")
	case contains(constant.EndKeywords):
		return result(store.IntentEnd, "keyword fallback: end terms")
	case contains([]string{"hello", "hi", "hey", "good morning", "good afternoon"}):
		return result(store.IntentGreeting, "keyword fallback: greeting terms")
	default:
		return result(store.IntentNoMatch, "keyword fallback: no terms matched")
	}
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
