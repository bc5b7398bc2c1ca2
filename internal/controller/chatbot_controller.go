package controller

import (
	"screenprint-chatbot-be/internal/dto"
	"screenprint-chatbot-be/internal/pkg/serverutils"
	"screenprint-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	NewSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	UploadLogo(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Post("chat", c.Chat)
	h.Post("session/new", c.NewSession)
	h.Get("session/:id", c.GetSession)
	h.Delete("session/:id", c.DeleteSession)
	h.Post("upload", c.UploadLogo)
	h.Get("health", c.Health)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatbotController) NewSession(ctx *fiber.Ctx) error {
	res, err := c.chatbotService.NewSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *chatbotController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.chatbotService.GetSession(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Session state", res))
}

func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.chatbotService.DeleteSession(ctx.Context(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Session deleted", nil))
}

func (c *chatbotController) UploadLogo(ctx *fiber.Ctx) error {
	sessionID := ctx.FormValue("session_id")
	if sessionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "session_id is required"))
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "A file field is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Could not read uploaded file"))
	}
	defer file.Close()

	res, err := c.chatbotService.UploadLogo(ctx.Context(), sessionID, fileHeader.Filename, file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Logo uploaded", res))
}

func (c *chatbotController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
