package matchapi

import (
	"github.com/careerbuddy/compass/market/match"
	"github.com/careerbuddy/compass/market/match/matchsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for skill-based recommendations
type Handlers struct {
	service *matchsrv.RecommendationService
}

// NewHandlers creates a new match handlers instance
func NewHandlers(service *matchsrv.RecommendationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RecommendJobs ranks jobs against the caller's skill list
// POST /api/jobs/recommendations
func (h *Handlers) RecommendJobs(c *fiber.Ctx) error {
	var req match.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return match.ErrSkillsRequired().WithDetail("parse_error", err.Error())
	}

	result, err := h.service.Recommend(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// RegisterRoutes registers all match routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/jobs")

	api.Post("/recommendations", handlers.RecommendJobs)
}
