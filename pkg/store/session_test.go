package store

import "testing"

func TestMessagesCarryTimestamps(t *testing.T) {
	sess := NewSession("ts")
	sess.AddUserMessage("hello")
	sess.AddAssistantMessage("hi there")

	for i, msg := range sess.History {
		if msg.Timestamp.IsZero() {
			t.Errorf("history[%d] has no timestamp", i)
		}
	}
	if sess.History[0].Role != "user" || sess.History[1].Role != "assistant" {
		t.Errorf("roles = %q, %q", sess.History[0].Role, sess.History[1].Role)
	}
}

func TestCloneIsolation(t *testing.T) {
	orig := NewSession("clone")
	orig.AddUserMessage("hello")
	orig.Order.FirstName = "Jane"
	orig.Order.Sizes = map[string]int{"m": 10}
	orig.Flags.PendingSizes = map[string]int{"s": 5}
	sent := true
	orig.Flags.QuoteEmailSent = &sent

	c := orig.Clone()
	c.AddUserMessage("second")
	c.AddAssistantMessage("reply")
	c.Order.FirstName = "Janet"
	c.Order.Sizes["m"] = 99
	c.Flags.PendingSizes["s"] = 99
	*c.Flags.QuoteEmailSent = false
	c.State = StateOrderSizes
	c.Ended = true

	if len(orig.History) != 1 {
		t.Errorf("history leaked, len = %d", len(orig.History))
	}
	if orig.Order.FirstName != "Jane" {
		t.Errorf("FirstName = %q", orig.Order.FirstName)
	}
	if orig.Order.Sizes["m"] != 10 {
		t.Errorf("Sizes[m] = %d", orig.Order.Sizes["m"])
	}
	if orig.Flags.PendingSizes["s"] != 5 {
		t.Errorf("PendingSizes[s] = %d", orig.Flags.PendingSizes["s"])
	}
	if !*orig.Flags.QuoteEmailSent {
		t.Error("QuoteEmailSent flag leaked through the clone")
	}
	if orig.State != StateWelcome || orig.Ended {
		t.Errorf("state leaked: %s ended=%v", orig.State, orig.Ended)
	}
}
