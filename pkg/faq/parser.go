package faq

import (
	"regexp"
	"strings"
)

// Entry is one question/answer pair from the knowledge base.
type Entry struct {
	Question string
	Answer   string
}

var questionLineRe = regexp.MustCompile(`^\s*(\d+)[\.\)]\s*(.+?)\s*$`)

// Parse reads a numbered Q/A document. Each entry starts with a line like
// "12. How long does printing take?" followed by answer lines until the
// next numbered question.
func Parse(text string) []Entry {
	var entries []Entry
	var current *Entry

	for _, line := range strings.Split(text, "\n") {
		if m := questionLineRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				current.Answer = strings.TrimSpace(current.Answer)
				entries = append(entries, *current)
			}
			current = &Entry{Question: m[2]}
			continue
		}
		if current != nil {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if current.Answer != "" {
				current.Answer += " "
			}
			current.Answer += trimmed
		}
	}
	if current != nil {
		current.Answer = strings.TrimSpace(current.Answer)
		entries = append(entries, *current)
	}

	// Entries without an answer body are headings, not FAQs.
	var out []Entry
	for _, e := range entries {
		if e.Answer != "" {
			out = append(out, e)
		}
	}
	return out
}
