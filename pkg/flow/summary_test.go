package flow

import (
	"strings"
	"testing"

	"screenprint-chatbot-be/pkg/store"
)

func TestSummaryChangeColor(t *testing.T) {
	h := newHarness(t)
	h.walkToSummary()

	reply := h.sayExpect("change the color to red", "I've updated that")
	if !strings.Contains(reply, "**Color:** red") {
		t.Errorf("summary not re-rendered with new color: %q", reply)
	}
	if h.sess.Order.Color != "red" {
		t.Errorf("color = %q, want red", h.sess.Order.Color)
	}
}

func TestSummaryChangeMultipleFields(t *testing.T) {
	h := newHarness(t)
	h.walkToSummary()

	reply := h.sayExpect("change the color to red and quantity to 50", "**Color:** red")
	if h.sess.Order.Color != "red" {
		t.Errorf("color = %q, want red", h.sess.Order.Color)
	}
	if h.sess.Order.Quantity != "50" {
		t.Errorf("quantity = %q, want 50", h.sess.Order.Quantity)
	}
	if !strings.Contains(reply, "**Quantity:** 50") {
		t.Errorf("summary not re-rendered with new quantity: %q", reply)
	}
}

func TestSummaryChangeInvalidColorDropped(t *testing.T) {
	h := newHarness(t)
	h.walkToSummary()

	reply := h.sayExpect("change the color to purple", "I've kept navy")
	if h.sess.Order.Color != "navy" {
		t.Errorf("color = %q, want navy preserved", h.sess.Order.Color)
	}
	if !strings.Contains(reply, "**Color:** navy") {
		t.Errorf("summary should re-render unchanged: %q", reply)
	}
}

func TestSummaryChangeApparelInvalidatesColor(t *testing.T) {
	h := newHarness(t)
	h.walkToSummary()

	// Red t-shirts exist; red caps don't, so the color step reopens.
	h.sayExpect("change the color to red", "I've updated that")
	h.sayExpect("change the apparel to caps", "pick a new one")
	if h.sess.Order.Color != "" {
		t.Fatalf("color should be cleared, got %q", h.sess.Order.Color)
	}
	h.sayExpect("khaki", "quote request summary")
	if h.sess.Order.Color != "khaki" {
		t.Errorf("color = %q, want khaki", h.sess.Order.Color)
	}
}

func TestSummaryCancelDiscardsOrder(t *testing.T) {
	h := newHarness(t)
	h.walkToSummary()

	h.sayExpect("cancel", "discarded")
	if h.sess.Order.FirstName != "" {
		t.Errorf("order not cleared: %+v", h.sess.Order)
	}
	if h.sess.State != store.StateMainMenu {
		t.Errorf("state = %s, want %s", h.sess.State, store.StateMainMenu)
	}
}

func TestSummaryUnrecognizedInput(t *testing.T) {
	h := newHarness(t)
	h.walkToSummary()

	h.sayExpect("hmmm interesting", "confirm")
	if h.sess.Flags.OrderConfirmed {
		t.Error("order must not confirm on unrecognized input")
	}
}

func TestConfirmWithFailingMailer(t *testing.T) {
	h := newHarness(t)
	h.mailer.fail = true
	h.walkToSummary()

	reply := h.sayExpect("confirm", "has been submitted")
	if !strings.Contains(reply, "couldn't send the summary email") {
		t.Errorf("failed email should be surfaced, got %q", reply)
	}
	// The failure is recorded, not retried on the next confirm attempt.
	h.say("confirm")
	if h.sess.Flags.QuoteEmailSent == nil || *h.sess.Flags.QuoteEmailSent {
		t.Error("email outcome should be recorded as failed")
	}

	// The shop inbox copy is independent of the customer send.
	if len(h.mailer.notified) != 1 {
		t.Errorf("shop inbox notified %d times, want 1", len(h.mailer.notified))
	}
	if h.sess.Flags.QuoteNotificationSent == nil || !*h.sess.Flags.QuoteNotificationSent {
		t.Error("notification outcome should be recorded as sent")
	}
}

func TestPostConfirmStartsAnotherQuote(t *testing.T) {
	h := newHarness(t)
	h.walkToSummary()
	h.say("confirm")

	h.sayExpect("another one please", "What's your name")
	if h.sess.Order.FirstName != "" {
		t.Errorf("new quote should start clean, got %+v", h.sess.Order)
	}
	if h.sess.Flags.OrderConfirmed {
		t.Error("flags should reset for the new quote")
	}
}

func TestEmailBody(t *testing.T) {
	in := "**Name:** John Doe\n**Logo:** [View](https://cdn.example.com/logo.png)\n"
	got := EmailBody(in)
	want := "Name: John Doe\nLogo: View: https://cdn.example.com/logo.png\n"
	if got != want {
		t.Errorf("EmailBody = %q, want %q", got, want)
	}
}

func TestRenderSummaryPlaceholders(t *testing.T) {
	sess := store.NewSession("render")
	sess.Order.FirstName = "Jane"
	out := RenderSummary(sess)
	if !strings.Contains(out, "**Name:** Jane") {
		t.Errorf("missing name: %q", out)
	}
	if !strings.Contains(out, "**Email:** —") {
		t.Errorf("missing dash placeholder: %q", out)
	}
	if strings.Contains(out, "**Delivery Address:**") {
		t.Errorf("address line should be hidden for non-delivery orders: %q", out)
	}
}
