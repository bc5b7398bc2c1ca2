package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"screenprint-chatbot-be/internal/config"
	"screenprint-chatbot-be/internal/controller"
	"screenprint-chatbot-be/internal/pkg/logger"
	"screenprint-chatbot-be/internal/pkg/mailer"
	"screenprint-chatbot-be/internal/repository/contract"
	"screenprint-chatbot-be/internal/repository/implementation"
	"screenprint-chatbot-be/internal/repository/memory"
	"screenprint-chatbot-be/internal/service"
	"screenprint-chatbot-be/pkg/embedding"
	"screenprint-chatbot-be/pkg/embedding/jina"
	"screenprint-chatbot-be/pkg/faq"
	"screenprint-chatbot-be/pkg/flow"
	"screenprint-chatbot-be/pkg/intent"
	"screenprint-chatbot-be/pkg/llm/factory"
	"screenprint-chatbot-be/pkg/uploader"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

// NewContainer wires every component. db may be nil; quote archiving and the
// admin quote endpoints degrade gracefully without it.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	dialogLogger := initDialogLogger()

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.SenderName,
		)
	} else {
		log.Printf("[WARN] SMTP is not configured; quote emails will be skipped")
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Ai.JinaAPIKey)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Dialogue Collaborators
	classifier := intent.NewClassifier(llmProvider, dialogLogger)
	changeParser := intent.NewChangeParser(llmProvider, dialogLogger)

	var retriever flow.AnswerRetriever
	faqRetriever, err := faq.NewRetriever(embeddingProvider, cfg.Chatbot.FAQFilePath)
	if err != nil {
		log.Printf("[WARN] FAQ index unavailable: %v", err)
		retriever = unavailableRetriever{}
	} else {
		retriever = faqRetriever
	}

	var fileStore uploader.Uploader
	if cfg.Keys.CloudinaryURL != "" {
		cloudStore, err := uploader.NewCloudinaryUploader(cfg.Keys.CloudinaryURL, cfg.Keys.CloudinaryFolder, dialogLogger)
		if err != nil {
			log.Printf("[WARN] Cloudinary unavailable: %v", err)
		} else {
			fileStore = cloudStore
		}
	} else {
		log.Printf("[WARN] Cloudinary is not configured; logo uploads are disabled")
	}

	// 5. Persistence
	var quoteRepo contract.QuoteRecordRepository
	if db != nil {
		quoteRepo = implementation.NewQuoteRecordRepository(db)
	} else {
		log.Printf("[WARN] Database is not configured; quote archiving is disabled")
	}
	sessionRepo := memory.NewSessionRepository()

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Chatbot.QuoteTopic, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Chatbot.QuoteTopic,
		quoteRepo,
		sysLogger,
	)

	quoteMailer := service.NewQuoteMailer(emailService, cfg.Chatbot.QuoteInboxAddr, sysLogger)

	engine := flow.NewEngine(
		classifier,
		retriever,
		changeParser,
		quoteMailer,
		publisherService,
		dialogLogger,
	)

	chatbotService := service.NewChatbotService(
		engine,
		sessionRepo,
		fileStore,
		sysLogger,
	)
	adminService := service.NewAdminService(quoteRepo, sysLogger)

	// 7. Controllers
	return &Container{
		ChatbotController: controller.NewChatbotController(chatbotService),
		AdminController:   controller.NewAdminController(adminService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

// unavailableRetriever stands in when the FAQ index could not be built.
type unavailableRetriever struct{}

func (unavailableRetriever) Retrieve(ctx context.Context, question string) (string, error) {
	return "", fmt.Errorf("faq index is unavailable")
}

func initDialogLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "dialogue.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[DIALOG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
