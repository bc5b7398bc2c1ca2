package intent

import (
	"testing"

	"screenprint-chatbot-be/pkg/store"
)

func TestKeywordFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  store.Intent
	}{
		{name: "product terms", input: "how much does a shirt cost", want: store.IntentQuestions},
		{name: "order terms", input: "I want to order some apparel", want: store.IntentPlaceOrder},
		{name: "human terms", input: "can I talk to a person", want: store.IntentWantsHuman},
		{name: "end terms", input: "goodbye", want: store.IntentEnd},
		{name: "greeting terms", input: "hello there", want: store.IntentGreeting},
		{name: "no match", input: "what is the weather", want: store.IntentNoMatch},
		{name: "product beats order", input: "I want to order, what is the price", want: store.IntentQuestions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeywordFallback(tt.input)
			if got.Intent != tt.want {
				t.Errorf("KeywordFallback(%q) = %s, want %s", tt.input, got.Intent, tt.want)
			}
		})
	}
}

func TestParseResult(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     store.Intent
		wantErr  bool
	}{
		{
			name:     "plain json",
			response: `{"intent": "Place order", "confidence": 0.92, "reasoning": "wants a quote"}`,
			want:     store.IntentPlaceOrder,
		},
		{
			name:     "fenced json",
			response: "```json\n{\"intent\": \"Greeting\", \"confidence\": 0.8, \"reasoning\": \"says hi\"}\n```",
			want:     store.IntentGreeting,
		},
		{
			name:     "unknown intent rejected",
			response: `{"intent": "Buy stocks", "confidence": 0.9, "reasoning": ""}`,
			wantErr:  true,
		},
		{
			name:     "no json at all",
			response: "I think the user wants to order.",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResult(tt.response)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseResult(%q) expected error, got %+v", tt.response, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseResult(%q): %v", tt.response, err)
			}
			if got.Intent != tt.want {
				t.Errorf("intent = %s, want %s", got.Intent, tt.want)
			}
		})
	}
}
