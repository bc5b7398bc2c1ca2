package faq

import "testing"

func TestParse(t *testing.T) {
	doc := `Frequently Asked Questions

1. What is your minimum order?
Our minimum is 12 pieces for screen printing.

2) How long does it take?
Standard turnaround is 7 to 10 business days
after art approval.

3. Empty heading question?
`
	entries := Parse(doc)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Question != "What is your minimum order?" {
		t.Errorf("question = %q", entries[0].Question)
	}
	if entries[0].Answer != "Our minimum is 12 pieces for screen printing." {
		t.Errorf("answer = %q", entries[0].Answer)
	}
	if entries[1].Answer != "Standard turnaround is 7 to 10 business days after art approval." {
		t.Errorf("multiline answer not joined: %q", entries[1].Answer)
	}
}

func TestParseDefaultCorpus(t *testing.T) {
	entries := Parse(DefaultCorpus)
	if len(entries) != 10 {
		t.Fatalf("got %d entries, want 10", len(entries))
	}
	for _, e := range entries {
		if e.Question == "" || e.Answer == "" {
			t.Errorf("incomplete entry: %+v", e)
		}
	}
}
