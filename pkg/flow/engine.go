package flow

import (
	"context"
	"fmt"
	"log"
	"strings"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/flow/parse"
	"screenprint-chatbot-be/pkg/store"
)

// NodeID identifies one node of the dialogue graph.
type NodeID string

const (
	NodeMainMenu    NodeID = "main_menu"
	NodeQuestions   NodeID = "product_questions"
	NodeHuman       NodeID = "human_handoff"
	NodeEnd         NodeID = "end"
	NodeOrderRouter NodeID = "order_router"
	NodeSummary     NodeID = "order_summary"

	// NodePause stops the hop loop and waits for the next user message.
	NodePause NodeID = "pause"
)

// maxHops bounds one engine run so a routing bug cannot spin forever.
const maxHops = 50

// reply accumulates the assistant messages produced during one run.
type reply struct {
	parts []string
}

func (r *reply) say(text string) {
	if text != "" {
		r.parts = append(r.parts, text)
	}
}

func (r *reply) String() string {
	return strings.Join(r.parts, "\n\n")
}

// Engine walks a session through the dialogue graph one user message at a
// time. All conversation state lives on the session, so the engine itself
// is stateless and shared across sessions.
type Engine struct {
	classifier IntentClassifier
	retriever  AnswerRetriever
	changes    ChangeParser
	mailer     Mailer
	publisher  EventPublisher
	logger     *log.Logger

	steps []StepConfig
}

func NewEngine(
	classifier IntentClassifier,
	retriever AnswerRetriever,
	changes ChangeParser,
	mailer Mailer,
	publisher EventPublisher,
	logger *log.Logger,
) *Engine {
	e := &Engine{
		classifier: classifier,
		retriever:  retriever,
		changes:    changes,
		mailer:     mailer,
		publisher:  publisher,
		logger:     logger,
	}
	e.steps = orderSteps()
	return e
}

// Step feeds one user message into the session's dialogue and returns the
// assistant reply.
func (e *Engine) Step(ctx context.Context, sess *store.Session, userText string) (string, error) {
	userText = strings.TrimSpace(userText)
	if userText != "" && userText != store.ResumeSentinel {
		sess.AddUserMessage(userText)
	}
	sess.PendingUserText = userText

	out := &reply{}
	node := e.routeEntry(sess, out)

	for hops := 0; node != NodePause; hops++ {
		if hops >= maxHops {
			return "", fmt.Errorf("dialogue did not settle after %d hops (state %s)", maxHops, sess.State)
		}
		node = e.runNode(ctx, sess, node, out)
	}

	response := out.String()
	if response != "" {
		sess.AddAssistantMessage(response)
	}
	return response, nil
}

func (e *Engine) runNode(ctx context.Context, sess *store.Session, node NodeID, out *reply) NodeID {
	switch node {
	case NodeMainMenu:
		return e.runMainMenu(ctx, sess, out)
	case NodeQuestions:
		return e.runQuestions(ctx, sess, out)
	case NodeHuman:
		return e.runHuman(ctx, sess, out)
	case NodeEnd:
		return e.runEnd(sess, out)
	case NodeOrderRouter:
		return e.routeOrder(sess)
	case NodeSummary:
		return e.runSummary(ctx, sess, out)
	}
	for _, cfg := range e.steps {
		if cfg.ID == node {
			return e.runStep(ctx, sess, cfg, out)
		}
	}
	e.logger.Printf("[ERROR] unknown node %q, falling back to main menu", node)
	return NodeMainMenu
}

// routeEntry picks the node to wake up in from the session state.
func (e *Engine) routeEntry(sess *store.Session, out *reply) NodeID {
	if sess.Ended || sess.State == store.StateEnd {
		if parse.HasKeyword(sess.PendingUserText, constant.OrderKeywords) {
			sess.Ended = false
			sess.State = store.StateMainMenu
			sess.Flags.MainMenuPrompted = false
			if sess.Flags.OrderConfirmed {
				sess.ResetOrder()
			}
			return NodeMainMenu
		}
		out.say("This conversation has ended. Say \"start\" or \"quote\" to begin a new one.")
		return NodePause
	}

	switch sess.State {
	case store.StateWelcome, store.StateMainMenu:
		return NodeMainMenu
	case store.StateProductQuestions:
		return NodeQuestions
	case store.StateWantsHuman:
		return NodeHuman
	case store.StateOrderSummary:
		return NodeSummary
	default:
		// Any ORDER_* state resumes through the order router.
		return NodeOrderRouter
	}
}
