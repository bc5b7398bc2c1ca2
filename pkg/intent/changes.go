package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/llm"
)

// EditableFields are the order fields a customer may change at the summary.
var EditableFields = map[string]bool{
	"first_name": true, "last_name": true, "email": true, "phone": true,
	"organization": true, "order_type": true, "budget": true, "service": true,
	"apparel": true, "color": true, "decoration_location": true,
	"decoration_colors": true, "quantity": true, "sizes": true,
	"delivery_option": true, "delivery_address": true, "notes": true,
}

// ChangeRequest is one extracted field edit.
type ChangeRequest struct {
	Field    string `json:"field"`
	NewValue string `json:"new_value"`
}

// ChangeParser pulls field edits out of free text at the order summary.
type ChangeParser struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewChangeParser(llmProvider llm.LLMProvider, logger *log.Logger) *ChangeParser {
	return &ChangeParser{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Parse extracts the change requests from the message, one per edited
// field. ok is false when the message does not ask for a change.
func (p *ChangeParser) Parse(ctx context.Context, text string) ([]ChangeRequest, bool) {
	prompt := fmt.Sprintf("%s\n\nUser message: %q", constant.ChangeRequestPrompt, text)

	response, err := p.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		p.logger.Printf("[WARN] change model call failed, using pattern fallback: %v", err)
		reqs := PatternChange(text)
		return reqs, len(reqs) > 0
	}

	raw := parseChangeJSON(response)
	if raw == nil {
		reqs := PatternChange(text)
		return reqs, len(reqs) > 0
	}

	var reqs []ChangeRequest
	for _, req := range raw {
		req.Field = strings.ToLower(strings.TrimSpace(req.Field))
		req.NewValue = strings.TrimSpace(req.NewValue)
		if !EditableFields[req.Field] || req.NewValue == "" {
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, len(reqs) > 0
}

// parseChangeJSON reads the model response as an array, tolerating a bare
// object for models that ignore the list instruction. nil means the
// response was unusable, as opposed to an empty no-change answer.
func parseChangeJSON(response string) []ChangeRequest {
	if start, end := strings.Index(response, "["), strings.LastIndex(response, "]"); start != -1 && end > start {
		var reqs []ChangeRequest
		if err := json.Unmarshal([]byte(response[start:end+1]), &reqs); err == nil {
			return reqs
		}
	}
	if content := extractJSON(response); content != "" {
		var req ChangeRequest
		if err := json.Unmarshal([]byte(content), &req); err == nil {
			return []ChangeRequest{req}
		}
	}
	return nil
}

var changeRe = regexp.MustCompile(`(?i)\b(?:change|update|set|make)\s+(?:the\s+|my\s+)?([a-z_ ]+?)\s+to\s+(.+)$`)

// fieldAliases maps spoken field names to their canonical keys.
var fieldAliases = map[string]string{
	"first name": "first_name", "last name": "last_name", "name": "first_name",
	"email": "email", "email address": "email", "phone": "phone",
	"phone number": "phone", "organization": "organization",
	"company": "organization", "order type": "order_type", "budget": "budget",
	"service": "service", "apparel": "apparel", "product": "apparel",
	"color": "color", "colour": "color", "decoration location": "decoration_location",
	"location": "decoration_location", "decoration colors": "decoration_colors",
	"quantity": "quantity", "amount": "quantity", "sizes": "sizes",
	"size": "sizes", "delivery": "delivery_option",
	"delivery option": "delivery_option", "address": "delivery_address",
	"delivery address": "delivery_address", "notes": "notes",
}

// nextPairRe finds where a further "<field> to <value>" clause starts, so
// "change color to black and quantity to 50" splits into two edits.
var nextPairRe = regexp.MustCompile(`(?i)(?:,\s*(?:and\s+)?|\band\s+)(?:(?:change|update|set|make)\s+)?(?:(?:the|my)\s+)?([a-z_ ]+?)\s+to\s+`)

// PatternChange recognizes "change X to Y" style requests without a model.
// A message may chain several edits with "and" or commas.
func PatternChange(text string) []ChangeRequest {
	m := changeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var reqs []ChangeRequest
	fieldText, rest := m[1], m[2]
	for {
		value := rest
		nextFieldText, nextRest := "", ""
		// A clause boundary only counts when it names an editable field,
		// so values like "black and white" stay whole.
		for _, loc := range nextPairRe.FindAllStringSubmatchIndex(rest, -1) {
			alias := strings.ToLower(strings.TrimSpace(rest[loc[2]:loc[3]]))
			if _, known := fieldAliases[alias]; known {
				value = rest[:loc[0]]
				nextFieldText = alias
				nextRest = rest[loc[1]:]
				break
			}
		}

		if field, ok := fieldAliases[strings.ToLower(strings.TrimSpace(fieldText))]; ok {
			if v := strings.TrimSpace(strings.TrimRight(value, " ,.")); v != "" {
				reqs = append(reqs, ChangeRequest{Field: field, NewValue: v})
			}
		}
		if nextFieldText == "" {
			return reqs
		}
		fieldText, rest = nextFieldText, nextRest
	}
}
