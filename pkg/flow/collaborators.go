package flow

import (
	"context"

	"screenprint-chatbot-be/pkg/intent"
	"screenprint-chatbot-be/pkg/store"
)

// IntentClassifier labels a user message with one intent.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) intent.Result
}

// AnswerRetriever answers a free-form product question.
type AnswerRetriever interface {
	Retrieve(ctx context.Context, question string) (string, error)
}

// ChangeParser extracts the field edits requested at the order summary.
// One message may edit several fields.
type ChangeParser interface {
	Parse(ctx context.Context, text string) ([]intent.ChangeRequest, bool)
}

// Mailer delivers the quote emails. Send mails the summary to the
// customer; Notify copies the shop inbox. Each return value reports
// whether that delivery succeeded.
type Mailer interface {
	Send(to, subject, body string) bool
	Notify(customerEmail, body string) bool
}

// EventPublisher broadcasts a confirmed quote to downstream consumers.
type EventPublisher interface {
	QuoteConfirmed(ctx context.Context, sessionID string, order store.Order) error
}
