package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/internal/dto"
	"screenprint-chatbot-be/internal/pkg/logger"
	"screenprint-chatbot-be/internal/repository/memory"
	"screenprint-chatbot-be/pkg/flow"
	"screenprint-chatbot-be/pkg/store"
	"screenprint-chatbot-be/pkg/uploader"

	"github.com/google/uuid"
)

// IChatbotService drives quote-request conversations over in-memory sessions.
type IChatbotService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	NewSession(ctx context.Context) (*dto.NewSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error
	UploadLogo(ctx context.Context, sessionID, filename string, file io.Reader) (*dto.UploadResponse, error)
}

type chatbotService struct {
	engine      *flow.Engine
	sessionRepo *memory.SessionRepository
	fileStore   uploader.Uploader
	logger      logger.ILogger
}

func NewChatbotService(
	engine *flow.Engine,
	sessionRepo *memory.SessionRepository,
	fileStore uploader.Uploader,
	logger logger.ILogger,
) IChatbotService {
	return &chatbotService{
		engine:      engine,
		sessionRepo: sessionRepo,
		fileStore:   fileStore,
		logger:      logger,
	}
}

// Chat runs one dialogue turn. Unknown session ids start a fresh conversation
// so a client can open with a bare message.
func (cs *chatbotService) Chat(ctx context.Context, request *dto.ChatRequest) (response *dto.ChatResponse, err error) {
	sessionID := request.SessionId
	if sessionID == "" {
		sessionID = "session-" + uuid.New().String()
	}

	defer func() {
		if r := recover(); r != nil {
			cs.logger.Error("CHATBOT", "Dialogue turn panicked", map[string]interface{}{
				"session_id": sessionID,
				"panic":      fmt.Sprint(r),
			})
			response = &dto.ChatResponse{
				Success:   false,
				SessionId: sessionID,
				Error:     "We're having technical difficulties right now. Please try again, or call us at 425.303.3381.",
			}
			err = nil
		}
	}()

	// The turn runs on a copy. The repository hands back the cached
	// pointer, so mutating it directly would persist a half-finished
	// turn even when Save is skipped.
	stored, found := cs.sessionRepo.Get(sessionID)
	var sess *store.Session
	if found {
		sess = stored.Clone()
	} else {
		sess = store.NewSession(sessionID)
	}

	reply, err := cs.engine.Step(ctx, sess, request.Message)
	if err != nil {
		cs.logger.Error("CHATBOT", "Dialogue turn failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return &dto.ChatResponse{
			Success:   false,
			SessionId: sessionID,
			Error:     "Something went wrong on our end. Please try again, or call us at 425.303.3381.",
		}, nil
	}

	cs.sessionRepo.Save(sess)

	cs.logger.Info("CHATBOT", "Dialogue turn completed", map[string]interface{}{
		"session_id": sessionID,
		"state":      string(sess.State),
		"intent":     string(sess.Intent),
	})

	return &dto.ChatResponse{
		Success:           true,
		Response:          reply,
		SessionId:         sessionID,
		CurrentState:      string(sess.State),
		ClassifiedIntent:  string(sess.Intent),
		ConversationEnded: sess.Ended,
		ContextData:       contextData(sess),
	}, nil
}

// NewSession allocates a session and runs the opening turn so the response
// carries the welcome message.
func (cs *chatbotService) NewSession(ctx context.Context) (*dto.NewSessionResponse, error) {
	sess := store.NewSession("session-" + uuid.New().String())

	welcome, err := cs.engine.Step(ctx, sess, "")
	if err != nil {
		return nil, err
	}
	cs.sessionRepo.Save(sess)

	cs.logger.Info("CHATBOT", "Session created", map[string]interface{}{
		"session_id": sess.ID,
	})

	return &dto.NewSessionResponse{
		SessionId: sess.ID,
		Response:  welcome,
		CreatedAt: sess.CreatedAt,
	}, nil
}

func (cs *chatbotService) GetSession(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	sess, found := cs.sessionRepo.Get(sessionID)
	if !found {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}

	history := sess.History
	if len(history) > 10 {
		history = history[len(history)-10:]
	}

	return &dto.SessionStateResponse{
		SessionId:         sess.ID,
		CurrentState:      string(sess.State),
		ConversationEnded: sess.Ended,
		MessageCount:      len(sess.History),
		Order:             sess.Order,
		RecentHistory:     history,
		ContextData:       contextData(sess),
		CreatedAt:         sess.CreatedAt,
		UpdatedAt:         sess.UpdatedAt,
	}, nil
}

func (cs *chatbotService) DeleteSession(ctx context.Context, sessionID string) error {
	if _, found := cs.sessionRepo.Get(sessionID); !found {
		return fmt.Errorf("session %s not found", sessionID)
	}
	cs.sessionRepo.Delete(sessionID)

	cs.logger.Info("CHATBOT", "Session deleted", map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}

// UploadLogo stores a logo file and marks the logo step complete so the next
// Chat turn moves past it.
func (cs *chatbotService) UploadLogo(ctx context.Context, sessionID, filename string, file io.Reader) (*dto.UploadResponse, error) {
	sess, found := cs.sessionRepo.Get(sessionID)
	if !found {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	if !sess.Flags.AwaitingUpload {
		return nil, fmt.Errorf("session %s is not expecting a file upload", sessionID)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !constant.UploadExtensions[ext] {
		return nil, fmt.Errorf("file type %q is not accepted; please send an image or vector file", ext)
	}

	if cs.fileStore == nil {
		return nil, fmt.Errorf("file uploads are not configured")
	}

	result, err := cs.fileStore.Upload(ctx, file, filename)
	if err != nil {
		cs.logger.Error("CHATBOT", "Logo upload failed", map[string]interface{}{
			"session_id": sessionID,
			"filename":   filename,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to store logo: %w", err)
	}

	// A re-upload replaces the earlier file, so drop the old one. The new
	// logo is already stored, so a cleanup failure only leaks a file.
	if prev := sess.Flags.LogoFileID; prev != "" && prev != result.FileID {
		if err := cs.fileStore.Delete(ctx, prev); err != nil {
			cs.logger.Warn("CHATBOT", "Failed to remove replaced logo", map[string]interface{}{
				"session_id": sessionID,
				"file_id":    prev,
				"error":      err.Error(),
			})
		}
	}

	sess.Order.LogoURL = result.ViewLink
	sess.Flags.LogoFileID = result.FileID
	sess.Flags.LogoViewLink = result.ViewLink
	sess.Flags.LogoFilename = result.Filename
	sess.Flags.Logo.Complete = true
	sess.Flags.AwaitingUpload = false
	sess.Flags.UploadKey = ""
	sess.AddAssistantMessage(fmt.Sprintf("Upload complete: %s received.", result.Filename))
	cs.sessionRepo.Save(sess)

	cs.logger.Info("CHATBOT", "Logo uploaded", map[string]interface{}{
		"session_id": sessionID,
		"file_id":    result.FileID,
	})

	return &dto.UploadResponse{
		SessionId: sessionID,
		FileId:    result.FileID,
		Filename:  result.Filename,
		ViewLink:  result.ViewLink,
	}, nil
}

// contextData exposes the collected order fields the way clients render a
// progress panel.
func contextData(sess *store.Session) map[string]interface{} {
	data := map[string]interface{}{}
	if sess.Order.FirstName != "" {
		data["first_name"] = sess.Order.FirstName
	}
	if sess.Order.LastName != "" {
		data["last_name"] = sess.Order.LastName
	}
	if sess.Order.Email != "" {
		data["email"] = sess.Order.Email
	}
	if sess.Order.Apparel != "" {
		data["apparel"] = sess.Order.Apparel
	}
	if sess.Order.Quantity != "" {
		data["quantity"] = sess.Order.Quantity
	}
	if len(sess.Order.Sizes) > 0 {
		data["sizes"] = sess.Order.Sizes
	}
	if sess.Flags.LogoFilename != "" {
		data["logo_filename"] = sess.Flags.LogoFilename
	}
	if sess.Flags.OrderConfirmed {
		data["order_confirmed"] = true
	}
	if len(data) == 0 {
		return nil
	}
	return data
}
