package insightapi

import (
	"github.com/careerbuddy/compass/market/insight/insightsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for the read-only market data endpoints
type Handlers struct {
	service *insightsrv.InsightService
}

// NewHandlers creates a new insight handlers instance
func NewHandlers(service *insightsrv.InsightService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetSalaryInsights looks up scaled salary bands
// GET /api/salaries
func (h *Handlers) GetSalaryInsights(c *fiber.Ctx) error {
	salaries := h.service.SalaryInsights(
		c.Query("title"),
		c.Query("location"),
		c.Query("experience"),
	)

	return c.JSON(fiber.Map{
		"salaries": salaries,
	})
}

// GetSkillTrends lists trending skills
// GET /api/skills/trends
func (h *Handlers) GetSkillTrends(c *fiber.Ctx) error {
	skills := h.service.SkillTrends(c.Query("category"))

	return c.JSON(fiber.Map{
		"skills": skills,
	})
}

// GetCompanies lists directory entries
// GET /api/companies
func (h *Handlers) GetCompanies(c *fiber.Ctx) error {
	companies := h.service.Companies(
		c.Query("name"),
		c.Query("industry"),
		c.Query("size"),
	)

	return c.JSON(fiber.Map{
		"companies": companies,
	})
}

// GetMarketStats returns the aggregate market snapshot
// GET /api/market/stats
func (h *Handlers) GetMarketStats(c *fiber.Ctx) error {
	return c.JSON(h.service.MarketStats())
}

// RegisterRoutes registers all insight routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Get("/api/salaries", handlers.GetSalaryInsights)
	app.Get("/api/skills/trends", handlers.GetSkillTrends)
	app.Get("/api/companies", handlers.GetCompanies)
	app.Get("/api/market/stats", handlers.GetMarketStats)
}
