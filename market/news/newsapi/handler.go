package newsapi

import (
	"github.com/careerbuddy/compass/market/news/newssrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides the headline feed endpoint
type Handlers struct {
	service *newssrv.NewsService
}

// NewHandlers creates a new news handlers instance
func NewHandlers(service *newssrv.NewsService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetHeadlines returns one page of career/tech headlines
// GET /api/news
func (h *Handlers) GetHeadlines(c *fiber.Ctx) error {
	articles := h.service.Headlines(
		c.Context(),
		c.Query("category"),
		c.QueryInt("page", 1),
	)

	return c.JSON(fiber.Map{
		"articles": articles,
	})
}

// RegisterRoutes registers all news routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Get("/api/news", handlers.GetHeadlines)
}
