package flow

import (
	"context"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/flow/parse"
	"screenprint-chatbot-be/pkg/store"
)

// Replies accepted after the handoff details. The question offers exactly
// two choices, so nothing here routes through the intent classifier.
var (
	handoffContinueKeywords = []string{"continue", "resume", "yes", "order", "quote", "left off", "chat", "question", "menu"}
	handoffEndKeywords      = []string{"end", "bye", "goodbye", "done", "finish", "no"}
)

// runHuman shows the handoff contact details, then asks whether to
// continue or end. Unrecognized replies re-ask the same two choices.
func (e *Engine) runHuman(ctx context.Context, sess *store.Session, out *reply) NodeID {
	sess.State = store.StateWantsHuman
	text := sess.PendingUserText
	if text == store.ResumeSentinel {
		sess.PendingUserText = ""
		text = ""
	}

	if !sess.Flags.HumanContactShown {
		sess.Flags.HumanContactShown = true
		sess.PendingUserText = ""
		out.say(constant.HumanContactMessage)
		if sess.Flags.OrderInterrupted {
			out.say("Would you like to continue your quote where we left off, or end the conversation?")
		} else {
			out.say("Would you like to continue chatting, or end the conversation?")
		}
		return NodePause
	}

	if text == "" {
		return NodePause
	}
	sess.PendingUserText = ""

	switch {
	case parse.HasKeyword(text, handoffContinueKeywords):
		sess.Flags.HumanContactShown = false
		if sess.Flags.OrderInterrupted {
			sess.Flags.OrderInterrupted = false
			sess.Flags.InterruptReason = ""
			sess.Flags.JustResumed = true
			return NodeOrderRouter
		}
		sess.State = store.StateMainMenu
		sess.Flags.MainMenuPrompted = true
		out.say(constant.MainMenuMessage)
		return NodePause

	case parse.HasKeyword(text, handoffEndKeywords):
		sess.Flags.HumanContactShown = false
		return NodeEnd

	default:
		if sess.Flags.OrderInterrupted {
			out.say("Please reply \"continue\" to resume your quote, or \"end\" to finish our conversation.")
		} else {
			out.say("Please reply \"continue\" to keep chatting, or \"end\" to finish our conversation.")
		}
		return NodePause
	}
}
