package flow

import (
	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/store"
)

// runEnd closes the conversation. A later message with an order keyword
// reopens it through the entry router.
func (e *Engine) runEnd(sess *store.Session, out *reply) NodeID {
	sess.State = store.StateEnd
	sess.Ended = true
	sess.PendingUserText = ""
	// Ending resolves any pending interrupt, otherwise a reopened
	// session's order router would divert straight back here.
	sess.Flags.OrderInterrupted = false
	sess.Flags.InterruptReason = ""
	sess.Flags.AwaitingResumeDecision = false
	sess.Flags.JustResumed = false
	out.say(constant.GoodbyeMessage)
	return NodePause
}
