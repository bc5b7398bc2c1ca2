package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"screenprint-chatbot-be/internal/config"
	"screenprint-chatbot-be/pkg/faq"
	"screenprint-chatbot-be/pkg/flow"
	"screenprint-chatbot-be/pkg/intent"
	"screenprint-chatbot-be/pkg/llm/factory"
	"screenprint-chatbot-be/pkg/store"

	"screenprint-chatbot-be/pkg/embedding"
	"screenprint-chatbot-be/pkg/embedding/jina"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// consoleMailer prints the quote email instead of sending it.
type consoleMailer struct{}

func (consoleMailer) Send(to, subject, body string) bool {
	color.Magenta("\n--- EMAIL to %s ---\n%s\n%s\n--- END EMAIL ---\n", to, subject, body)
	return true
}

func (consoleMailer) Notify(customerEmail, body string) bool {
	color.Magenta("\n--- SHOP INBOX: new quote from %s ---\n", customerEmail)
	return true
}

// consolePublisher prints confirmed quotes instead of publishing them.
type consolePublisher struct{}

func (consolePublisher) QuoteConfirmed(ctx context.Context, sessionID string, order store.Order) error {
	color.Magenta("\n[EVENT] quote confirmed for session %s (%s x %s)", sessionID, order.Quantity, order.Apparel)
	return nil
}

func main() {
	cfg := config.Load()

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		color.Red("Failed to initialize LLM provider: %v", err)
		os.Exit(1)
	}

	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	case "jina":
		embeddingProvider = jina.NewJinaProvider(cfg.Ai.JinaAPIKey)
	default:
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	retriever, err := faq.NewRetriever(embeddingProvider, cfg.Chatbot.FAQFilePath)
	if err != nil {
		color.Red("Failed to build FAQ index: %v", err)
		os.Exit(1)
	}

	dialogLogger := log.New(os.Stderr, "[DIALOG] ", log.LstdFlags)
	engine := flow.NewEngine(
		intent.NewClassifier(llmProvider, dialogLogger),
		retriever,
		intent.NewChangeParser(llmProvider, dialogLogger),
		consoleMailer{},
		consolePublisher{},
		dialogLogger,
	)

	sess := store.NewSession(uuid.New().String())
	ctx := context.Background()

	color.Cyan("🖨️  Screen Printing NW quote assistant (type 'quit' to exit)\n")

	// An empty first turn produces the welcome message.
	reply, err := engine.Step(ctx, sess, "")
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	color.Green("Bot: %s\n", reply)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.YellowString("You: "))
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "quit" || text == "exit" {
			break
		}

		reply, err := engine.Step(ctx, sess, text)
		if err != nil {
			color.Red("Error: %v", err)
			continue
		}
		color.Green("Bot: %s\n", reply)

		if sess.Ended {
			break
		}
	}
}
