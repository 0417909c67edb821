package chatapi

import (
	"github.com/careerbuddy/compass/market/chat"
	"github.com/careerbuddy/compass/market/chat/chatsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides the chat proxy endpoint
type Handlers struct {
	service *chatsrv.ChatService
}

// NewHandlers creates a new chat handlers instance
func NewHandlers(service *chatsrv.ChatService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Chat forwards a user message to the generative model
// POST /chat
func (h *Handlers) Chat(c *fiber.Ctx) error {
	var req chat.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return chat.ErrMessageRequired().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Respond(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers the chat route. The path has no /api prefix:
// the web client posts to /chat directly.
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Post("/chat", handlers.Chat)
}
