package parse

import (
	"strings"

	"screenprint-chatbot-be/internal/constant"
)

// Apparel matches a product type from the catalog inside free text.
// Returns the canonical catalog key, or "" when nothing matches.
func Apparel(text string) string {
	lower := strings.ToLower(text)
	// Specific aliases first, bare "shirt"/"tee" only as a fallback so
	// "polo shirts" resolves to polo.
	aliases := []struct{ alias, canonical string }{
		{"sweatshirt", "hoodie"},
		{"hoodie", "hoodie"},
		{"hoody", "hoodie"},
		{"polo", "polo"},
		{"cap", "cap"},
		{"hat", "cap"},
		{"t-shirt", "t-shirt"},
		{"tshirt", "t-shirt"},
		{"t shirt", "t-shirt"},
		{"tee", "t-shirt"},
		{"shirt", "t-shirt"},
	}
	for _, a := range aliases {
		if strings.Contains(lower, a.alias) {
			return a.canonical
		}
	}
	return ""
}

// Color finds a garment color valid for the given apparel type.
func Color(text, apparel string) string {
	colors, ok := constant.ProductCatalog[apparel]
	if !ok {
		return ""
	}
	lower := strings.ToLower(text)
	for _, c := range colors {
		if strings.Contains(lower, c) {
			return c
		}
	}
	return ""
}

// Choice matches one option from a fixed list, by number ("2"), by full
// name, or by a distinctive word of the option.
func Choice(text string, options []string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for i, opt := range options {
		if trimmed == string(rune('1'+i)) {
			return opt
		}
		if strings.Contains(lower, strings.ToLower(opt)) {
			return opt
		}
	}
	// Word-level match, e.g. "sports" for "Sports team".
	for _, opt := range options {
		for _, w := range strings.Fields(strings.ToLower(opt)) {
			if len(w) > 3 && strings.Contains(lower, strings.TrimSuffix(w, "/")) {
				return opt
			}
		}
	}
	return ""
}

// YesNo reports an affirmative or negative answer. ok is false when the
// text is neither.
func YesNo(text string) (yes bool, ok bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, w := range []string{"yes", "yeah", "yep", "sure", "ok", "okay", "correct", "y"} {
		if lower == w || strings.HasPrefix(lower, w+" ") {
			return true, true
		}
	}
	for _, w := range []string{"no", "nope", "nah", "n"} {
		if lower == w || strings.HasPrefix(lower, w+" ") {
			return false, true
		}
	}
	return false, false
}

// HasKeyword matches keywords on word boundaries so "end" does not fire
// inside "recommend". Multi-word keywords match as phrases.
func HasKeyword(text string, keywords []string) bool {
	words := map[string]bool{}
	lower := strings.ToLower(text)
	for _, w := range wordRe.FindAllString(lower, -1) {
		words[w] = true
		// Plurals count as their singular.
		if strings.HasSuffix(w, "s") {
			words[strings.TrimSuffix(w, "s")] = true
		}
	}
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		if words[kw] {
			return true
		}
	}
	return false
}
