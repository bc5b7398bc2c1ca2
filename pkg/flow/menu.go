package flow

import (
	"context"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/store"
)

// runMainMenu greets, shows the menu, and routes by classified intent.
func (e *Engine) runMainMenu(ctx context.Context, sess *store.Session, out *reply) NodeID {
	text := sess.PendingUserText
	if text == store.ResumeSentinel {
		sess.PendingUserText = ""
		text = ""
	}

	if text == "" {
		if sess.State == store.StateWelcome {
			out.say(constant.WelcomeMessage)
		} else {
			out.say(constant.MainMenuMessage)
		}
		sess.State = store.StateMainMenu
		sess.Flags.MainMenuPrompted = true
		return NodePause
	}

	res := e.classifier.Classify(ctx, text)
	sess.Intent = res.Intent
	sess.Flags.LastIntentConfidence = res.Confidence
	sess.Flags.LastIntentReasoning = res.Reasoning

	switch res.Intent {
	case store.IntentPlaceOrder:
		sess.PendingUserText = ""
		return NodeOrderRouter

	case store.IntentQuestions:
		// The message itself is usually the question, so it rides along.
		sess.State = store.StateProductQuestions
		return NodeQuestions

	case store.IntentWantsHuman:
		sess.PendingUserText = ""
		sess.State = store.StateWantsHuman
		sess.Flags.HumanContactShown = false
		return NodeHuman

	case store.IntentEnd:
		sess.PendingUserText = ""
		return NodeEnd

	case store.IntentGreeting:
		sess.PendingUserText = ""
		if sess.State == store.StateWelcome {
			out.say(constant.WelcomeMessage)
		} else {
			out.say(constant.MainMenuMessage)
		}
		sess.State = store.StateMainMenu
		sess.Flags.MainMenuPrompted = true
		return NodePause

	default:
		sess.PendingUserText = ""
		out.say("Sorry, I didn't quite catch that.")
		out.say(constant.MainMenuMessage)
		sess.State = store.StateMainMenu
		sess.Flags.MainMenuPrompted = true
		return NodePause
	}
}
