package flow

import (
	"context"
	"strings"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/flow/parse"
	"screenprint-chatbot-be/pkg/store"
)

// StepConfig describes one order collection step. Every step shares the
// same lifecycle: divert on interrupt, re-prompt after resume, prompt once,
// then parse input until it completes.
type StepConfig struct {
	ID     NodeID
	State  store.ConversationState
	Flag   func(*store.Flags) *store.StepFlag
	Prompt func(*store.Session) string

	// Handle consumes one user message. reply is shown either way; done
	// marks the step complete.
	Handle func(sess *store.Session, text string) (reply string, done bool)

	// ProductAnswers marks steps whose valid answers contain product
	// terms, so those terms must not divert to the question flow.
	ProductAnswers bool
}

// runStep drives one step through its lifecycle and returns the next node.
func (e *Engine) runStep(ctx context.Context, sess *store.Session, cfg StepConfig, out *reply) NodeID {
	flag := cfg.Flag(&sess.Flags)
	text := sess.PendingUserText

	// Mid-order keywords divert to the interrupt flows.
	if text != "" && text != store.ResumeSentinel {
		if reason := interruptReason(text); reason != "" && !(reason == "product" && cfg.ProductAnswers) {
			sess.Flags.OrderInterrupted = true
			sess.Flags.InterruptReason = reason
			flag.Shown = false
			return NodeOrderRouter
		}
	}

	// Waking up after an interrupt re-asks the question.
	if text == store.ResumeSentinel {
		sess.PendingUserText = ""
		flag.Shown = false
		text = ""
	}

	if !flag.Shown {
		flag.Shown = true
		sess.State = cfg.State
		out.say(cfg.Prompt(sess))
		return NodePause
	}

	if text == "" {
		return NodePause
	}

	sess.PendingUserText = ""
	replyText, done := cfg.Handle(sess, text)
	if replyText != "" {
		out.say(replyText)
	}
	if !done {
		return NodePause
	}
	flag.Complete = true
	return NodeOrderRouter
}

// interruptReason matches mid-order diversion keywords. Product questions
// take precedence over human handoff, which takes precedence over ending.
func interruptReason(text string) string {
	lower := strings.ToLower(text)
	switch {
	case parse.HasKeyword(lower, constant.ProductKeywords):
		return "product"
	case parse.HasKeyword(lower, constant.HumanKeywords):
		return "human"
	case parse.HasKeyword(lower, constant.EndKeywords):
		return "end"
	}
	return ""
}
