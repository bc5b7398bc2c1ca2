package flow

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"screenprint-chatbot-be/pkg/intent"
	"screenprint-chatbot-be/pkg/store"
)

// Test doubles use the deterministic keyword and pattern fallbacks so the
// dialogue runs without a model.

type fakeClassifier struct{}

func (fakeClassifier) Classify(_ context.Context, text string) intent.Result {
	return intent.KeywordFallback(text)
}

type fakeRetriever struct {
	answer string
	calls  int
}

func (r *fakeRetriever) Retrieve(_ context.Context, question string) (string, error) {
	r.calls++
	return r.answer, nil
}

type fakeChanges struct{}

func (fakeChanges) Parse(_ context.Context, text string) ([]intent.ChangeRequest, bool) {
	reqs := intent.PatternChange(text)
	return reqs, len(reqs) > 0
}

type fakeMailer struct {
	sent       []string
	notified   []string
	fail       bool
	failNotify bool
}

func (m *fakeMailer) Send(to, subject, body string) bool {
	if m.fail {
		return false
	}
	m.sent = append(m.sent, to)
	return true
}

func (m *fakeMailer) Notify(customerEmail, body string) bool {
	if m.failNotify {
		return false
	}
	m.notified = append(m.notified, customerEmail)
	return true
}

type fakePublisher struct {
	events int
}

func (p *fakePublisher) QuoteConfirmed(_ context.Context, sessionID string, order store.Order) error {
	p.events++
	return nil
}

type harness struct {
	engine    *Engine
	sess      *store.Session
	mailer    *fakeMailer
	publisher *fakePublisher
	retriever *fakeRetriever
	t         *testing.T
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mailer := &fakeMailer{}
	publisher := &fakePublisher{}
	retriever := &fakeRetriever{answer: "Our minimum is 12 pieces."}
	engine := NewEngine(
		fakeClassifier{},
		retriever,
		fakeChanges{},
		mailer,
		publisher,
		log.New(io.Discard, "", 0),
	)
	return &harness{
		engine:    engine,
		sess:      store.NewSession("test-session"),
		mailer:    mailer,
		publisher: publisher,
		retriever: retriever,
		t:         t,
	}
}

func (h *harness) say(text string) string {
	h.t.Helper()
	reply, err := h.engine.Step(context.Background(), h.sess, text)
	if err != nil {
		h.t.Fatalf("Step(%q): %v", text, err)
	}
	return reply
}

func (h *harness) sayExpect(text, want string) string {
	h.t.Helper()
	reply := h.say(text)
	if !strings.Contains(reply, want) {
		h.t.Fatalf("Step(%q) = %q, want it to contain %q", text, reply, want)
	}
	return reply
}

// walkToSummary drives a complete order so tests can start at the review.
func (h *harness) walkToSummary() {
	h.t.Helper()
	h.sayExpect("hello", "Welcome to Screen Printing NW")
	h.sayExpect("I'd like a quote", "What's your name")
	h.sayExpect("John Doe, john@example.com, +1-206-555-0100", "organization")
	h.sayExpect("Acme Corp", "kind of order")
	h.sayExpect("corporate", "Premium quality or Value")
	h.sayExpect("value", "Screen Printing or Embroidery")
	h.sayExpect("screen printing", "What would you like to customize")
	h.sayExpect("t-shirts", "What garment color")
	h.sayExpect("navy", "upload your logo")
	h.sayExpect("skip", "Where should the design go")
	h.sayExpect("left chest", "What colors are in your design")
	h.sayExpect("2 colors, red and white", "How many pieces")
	h.sayExpect("around 30", "break down by size")
	h.sayExpect("S:10, M:15, L:5", "Delivery, or will you Pick Up")
	h.sayExpect("pickup", "Anything else we should know")
	h.sayExpect("no", "quote request summary")
}

func TestFullQuoteFlow(t *testing.T) {
	h := newHarness(t)
	h.walkToSummary()

	if h.sess.State != store.StateOrderSummary {
		t.Fatalf("state = %s, want %s", h.sess.State, store.StateOrderSummary)
	}
	o := h.sess.Order
	if o.FirstName != "John" || o.LastName != "Doe" {
		t.Errorf("name = %q %q", o.FirstName, o.LastName)
	}
	if o.Email != "john@example.com" {
		t.Errorf("email = %q", o.Email)
	}
	if o.Apparel != "t-shirt" || o.Color != "navy" {
		t.Errorf("apparel/color = %q/%q", o.Apparel, o.Color)
	}
	if o.Quantity != "30" {
		t.Errorf("quantity = %q", o.Quantity)
	}
	if o.DeliveryOption != "Pick Up" || o.DeliveryAddress != "" {
		t.Errorf("delivery = %q addr %q", o.DeliveryOption, o.DeliveryAddress)
	}

	reply := h.sayExpect("confirm", "has been submitted")
	if !strings.Contains(reply, "john@example.com") {
		t.Errorf("confirmation should mention the email, got %q", reply)
	}
	if len(h.mailer.sent) != 1 {
		t.Fatalf("mailer sent %d emails, want 1", len(h.mailer.sent))
	}
	if h.publisher.events != 1 {
		t.Fatalf("published %d events, want 1", h.publisher.events)
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.walkToSummary()
	h.say("confirm")

	// A second confirm lands in the post-confirm question and must not
	// resend anything.
	h.sayExpect("confirm", "another quote, or end")
	if len(h.mailer.sent) != 1 {
		t.Errorf("mailer sent %d emails, want 1", len(h.mailer.sent))
	}
	if len(h.mailer.notified) != 1 {
		t.Errorf("shop inbox notified %d times, want 1", len(h.mailer.notified))
	}
	if h.publisher.events != 1 {
		t.Errorf("published %d events, want 1", h.publisher.events)
	}
}

func TestDeliveryCollectsAddress(t *testing.T) {
	h := newHarness(t)
	h.sayExpect("hello", "Welcome")
	h.say("I'd like a quote")
	h.say("John Doe, john@example.com, +1-206-555-0100")
	h.say("Acme Corp")
	h.say("corporate")
	h.say("value")
	h.say("screen printing")
	h.say("t-shirts")
	h.say("navy")
	h.say("skip")
	h.say("left chest")
	h.say("2 colors")
	h.say("around 30")
	h.sayExpect("S:10, M:15, L:5", "Delivery, or will you Pick Up")
	h.sayExpect("delivery please", "What address")
	h.sayExpect("123 Main St, Everett WA", "Anything else")
	if h.sess.Order.DeliveryAddress != "123 Main St, Everett WA" {
		t.Errorf("address = %q", h.sess.Order.DeliveryAddress)
	}
}

func TestSizesMismatchUsesSizesTotal(t *testing.T) {
	h := newHarness(t)
	h.say("hello")
	h.say("I'd like a quote")
	h.say("John Doe, john@example.com, +1-206-555-0100")
	h.say("Acme Corp")
	h.say("corporate")
	h.say("value")
	h.say("screen printing")
	h.say("t-shirts")
	h.say("navy")
	h.say("skip")
	h.say("left chest")
	h.say("2 colors")
	h.say("around 30")

	h.sayExpect("S:10, M:15", "add up to 25")
	h.sayExpect("use sizes total", "updated the quantity to 25")
	if h.sess.Order.Quantity != "25" {
		t.Errorf("quantity = %q, want 25", h.sess.Order.Quantity)
	}
	if got := h.sess.Order.Sizes["m"]; got != 15 {
		t.Errorf("sizes[m] = %d, want 15", got)
	}
}

func TestInterruptAndResume(t *testing.T) {
	h := newHarness(t)
	h.say("hello")
	h.say("I'd like a quote")
	h.say("John Doe, john@example.com, +1-206-555-0100")
	h.sayExpect("Acme Corp", "kind of order")

	// A product question diverts mid-order and rides along as the query.
	reply := h.sayExpect("what is the price of hoodies", "Our minimum is 12 pieces.")
	if !strings.Contains(reply, "back to your quote") {
		t.Errorf("interrupted answer should point back to the order, got %q", reply)
	}
	if h.retriever.calls != 1 {
		t.Errorf("retriever calls = %d, want 1", h.retriever.calls)
	}

	h.sayExpect("done", "continue your quote")
	h.sayExpect("yes", "kind of order")
	if h.sess.State != store.StateOrderType {
		t.Errorf("state = %s, want %s", h.sess.State, store.StateOrderType)
	}
	if h.sess.Order.Organization != "Acme Corp" {
		t.Errorf("collected data lost on resume: %q", h.sess.Order.Organization)
	}
}

func TestResumeDeclinedKeepsData(t *testing.T) {
	h := newHarness(t)
	h.say("hello")
	h.say("I'd like a quote")
	h.say("John Doe, john@example.com, +1-206-555-0100")
	h.say("Acme Corp")
	h.say("what is the price of hoodies")
	h.say("done")
	h.sayExpect("no", "answers are saved")

	// Asking to order again resumes at the first incomplete step.
	h.sayExpect("let's finish my order", "kind of order")
	if h.sess.Order.FirstName != "John" {
		t.Errorf("contact data lost: %q", h.sess.Order.FirstName)
	}
}

func TestEndAndReopen(t *testing.T) {
	h := newHarness(t)
	h.say("hello")
	h.sayExpect("goodbye", "Have a great day")
	if !h.sess.Ended {
		t.Fatal("session should be ended")
	}

	h.sayExpect("anything there?", "conversation has ended")
	h.sayExpect("start a new quote", "What's your name")
}

func TestCancelMidOrderThenReopen(t *testing.T) {
	h := newHarness(t)
	h.say("hello")
	h.say("I'd like a quote")
	h.sayExpect("John Doe, john@example.com, +1-206-555-0100", "organization")

	// Cancelling mid-order ends the conversation and settles the
	// interrupt, so a later order keyword starts clean.
	h.sayExpect("cancel", "Have a great day")
	if h.sess.Flags.OrderInterrupted {
		t.Fatal("interrupt flag should clear when the conversation ends")
	}

	h.sayExpect("start a new quote", "organization")
	if h.sess.Ended {
		t.Error("session should be reopened")
	}
	if h.sess.State == store.StateEnd {
		t.Errorf("state = %s after reopening", h.sess.State)
	}
}

func TestEmptyMessageDoesNotRepeatPrompt(t *testing.T) {
	h := newHarness(t)
	h.say("hello")
	h.sayExpect("I'd like a quote", "What's your name")

	reply := h.say("")
	if strings.Contains(reply, "What's your name") {
		t.Errorf("prompt repeated on empty input: %q", reply)
	}
}

func TestHumanHandoff(t *testing.T) {
	h := newHarness(t)
	h.say("hello")
	reply := h.sayExpect("I want to talk to a person", "425.303.3381")
	if !strings.Contains(reply, "info@screenprintingnw.com") {
		t.Errorf("handoff should include the email, got %q", reply)
	}
	if !strings.Contains(reply, "continue chatting, or end") {
		t.Errorf("handoff should offer the two choices, got %q", reply)
	}

	// Only the two offered choices are understood; anything else re-asks.
	h.sayExpect("what about hoodies", "Please reply \"continue\"")
	h.sayExpect("continue", "What would you like to do")
	h.sayExpect("I'd like a quote", "What's your name")
}

func TestHumanHandoffEnds(t *testing.T) {
	h := newHarness(t)
	h.say("hello")
	h.sayExpect("talk to a human", "continue chatting, or end")
	h.sayExpect("end it please", "Have a great day")
	if !h.sess.Ended {
		t.Error("session should be ended")
	}
}

func TestHumanHandoffMidOrderResumes(t *testing.T) {
	h := newHarness(t)
	h.say("hello")
	h.say("I'd like a quote")
	h.sayExpect("John Doe, john@example.com, +1-206-555-0100", "organization")

	reply := h.sayExpect("can I talk to a human", "425.303.3381")
	if !strings.Contains(reply, "continue your quote") {
		t.Errorf("interrupted handoff should offer to resume the quote, got %q", reply)
	}

	h.sayExpect("hmm", "Please reply \"continue\"")
	h.sayExpect("continue", "organization")
	if h.sess.Flags.OrderInterrupted {
		t.Error("interrupt flag should clear on resume")
	}
	if h.sess.Order.FirstName != "John" {
		t.Errorf("collected data lost on resume: %q", h.sess.Order.FirstName)
	}
}

func TestHopGuard(t *testing.T) {
	// A step whose flag pointer never completes would loop; the engine
	// must cut it off rather than spin.
	e := NewEngine(fakeClassifier{}, &fakeRetriever{}, fakeChanges{}, &fakeMailer{}, &fakePublisher{}, log.New(io.Discard, "", 0))
	e.steps = []StepConfig{{
		ID:    NodeID("broken"),
		State: store.StateOrderOrganization,
		// A fresh flag every call means the step never registers as
		// complete, and re-injecting the text keeps it runnable.
		Flag:   func(f *store.Flags) *store.StepFlag { return &store.StepFlag{Shown: true} },
		Prompt: func(*store.Session) string { return "" },
		Handle: func(sess *store.Session, text string) (string, bool) {
			sess.PendingUserText = text
			return "", true
		},
	}}

	sess := store.NewSession("hop")
	sess.State = store.StateOrderOrganization
	_, err := e.Step(context.Background(), sess, "text")
	if err == nil {
		t.Fatal("expected hop guard error")
	}
	if !strings.Contains(err.Error(), fmt.Sprintf("%d hops", maxHops)) {
		t.Errorf("unexpected error: %v", err)
	}
}
