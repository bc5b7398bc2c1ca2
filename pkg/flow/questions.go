package flow

import (
	"context"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/flow/parse"
	"screenprint-chatbot-be/pkg/store"
)

const retrieverDownMessage = "I'm having trouble looking that up right now. Our team at 425.303.3381 or info@screenprintingnw.com can help directly."

// runQuestions answers product questions until the customer backs out.
func (e *Engine) runQuestions(ctx context.Context, sess *store.Session, out *reply) NodeID {
	sess.State = store.StateProductQuestions
	text := sess.PendingUserText
	if text == store.ResumeSentinel {
		sess.PendingUserText = ""
		text = ""
	}

	if text == "" {
		if !sess.Flags.QuestionPrompted {
			sess.Flags.QuestionPrompted = true
			out.say(constant.QuestionIntroMessage)
		}
		return NodePause
	}
	sess.PendingUserText = ""

	if sess.Flags.AwaitingResumeDecision {
		return e.handleResumeDecision(ctx, sess, text, out)
	}

	if parse.HasKeyword(text, constant.QAExitKeywords) {
		sess.Flags.QuestionPrompted = false
		if sess.Flags.OrderInterrupted {
			sess.Flags.AwaitingResumeDecision = true
			out.say("Would you like to continue your quote where we left off?")
			return NodePause
		}
		sess.State = store.StateMainMenu
		out.say(constant.MainMenuMessage)
		return NodePause
	}

	sess.Flags.QuestionPrompted = true
	answer, err := e.retriever.Retrieve(ctx, text)
	if err != nil {
		e.logger.Printf("[WARN] faq retrieval failed: %v", err)
		out.say(retrieverDownMessage)
	} else {
		out.say(answer)
	}
	if sess.Flags.OrderInterrupted {
		out.say("Say \"done\" when you're ready to get back to your quote.")
	} else {
		out.say("Anything else? Say \"done\" to go back to the menu.")
	}
	return NodePause
}

// handleResumeDecision resolves the "continue your quote?" question asked
// after an interrupted order's side trip.
func (e *Engine) handleResumeDecision(ctx context.Context, sess *store.Session, text string, out *reply) NodeID {
	yes, ok := parse.YesNo(text)
	if !ok {
		res := e.classifier.Classify(ctx, text)
		switch res.Intent {
		case store.IntentYes, store.IntentPlaceOrder:
			yes, ok = true, true
		case store.IntentNo, store.IntentEnd:
			yes, ok = false, true
		}
	}
	if !ok {
		out.say("Sorry, should I continue your quote? Yes or no.")
		return NodePause
	}

	sess.Flags.AwaitingResumeDecision = false
	sess.Flags.OrderInterrupted = false
	sess.Flags.InterruptReason = ""

	if yes {
		sess.Flags.JustResumed = true
		return NodeOrderRouter
	}

	// The collected answers stay on the session, so a later "place order"
	// picks up where this one stopped.
	sess.State = store.StateMainMenu
	out.say("No problem, your answers are saved if you change your mind.")
	out.say(constant.MainMenuMessage)
	return NodePause
}
