package flow

import (
	"screenprint-chatbot-be/pkg/store"
)

// routeOrder decides which order node runs next. It is a pure function of
// the session flags: interrupts divert, a finished order reviews, and
// otherwise the first incomplete step runs.
func (e *Engine) routeOrder(sess *store.Session) NodeID {
	f := &sess.Flags

	if f.OrderInterrupted {
		switch f.InterruptReason {
		case "product":
			return NodeQuestions
		case "human":
			return NodeHuman
		default:
			return NodeEnd
		}
	}

	if f.JustResumed {
		f.JustResumed = false
		sess.PendingUserText = store.ResumeSentinel
	}

	// Pickup orders have no address to collect.
	if sess.Order.DeliveryOption != "" && sess.Order.DeliveryOption != "Delivery" {
		f.Address.Complete = true
	}

	if f.SummaryShown || f.OrderConfirmed {
		return NodeSummary
	}

	for _, cfg := range e.steps {
		if cfg.Flag(f).Complete {
			continue
		}
		return cfg.ID
	}
	return NodeSummary
}
