package postingapi

import (
	"strings"

	"github.com/careerbuddy/compass/market/posting"
	"github.com/careerbuddy/compass/market/posting/postingsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job search
type Handlers struct {
	service *postingsrv.SearchService
}

// NewHandlers creates a new posting handlers instance
func NewHandlers(service *postingsrv.SearchService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SearchJobs searches postings with optional filters
// GET /api/jobs/search
func (h *Handlers) SearchJobs(c *fiber.Ctx) error {
	query, err := parseSearchQuery(c)
	if err != nil {
		return err
	}

	result, err := h.service.Search(c.Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// parseSearchQuery maps query-string parameters onto a SearchQuery.
// Defaults are applied later by Normalize.
func parseSearchQuery(c *fiber.Ctx) (posting.SearchQuery, error) {
	query := posting.SearchQuery{
		Query:    c.Query("query"),
		Location: c.Query("location"),
		Page:     c.QueryInt("page", 0),
		Limit:    c.QueryInt("limit", posting.DefaultLimit),
	}

	if query.Page < 0 {
		return query, posting.ErrInvalidQuery().WithDetail("page", "must be >= 0")
	}
	if query.Limit <= 0 {
		return query, posting.ErrInvalidQuery().WithDetail("limit", "must be > 0")
	}

	if raw := c.Query("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				query.Skills = append(query.Skills, skill)
			}
		}
	}

	if c.Query("salary_min") != "" {
		min := c.QueryInt("salary_min", 0)
		query.SalaryMin = &min
	}
	if c.Query("salary_max") != "" {
		max := c.QueryInt("salary_max", 0)
		query.SalaryMax = &max
	}

	if raw := c.Query("job_type"); raw != "" {
		jobType, ok := parseJobType(raw)
		if !ok {
			return query, posting.ErrInvalidQuery().WithDetail("job_type", raw)
		}
		query.JobType = &jobType
	}

	if raw := c.Query("remote"); raw != "" {
		remote := raw == "true" || raw == "1"
		query.Remote = &remote
	}

	return query, nil
}

func parseJobType(raw string) (posting.JobType, bool) {
	switch posting.JobType(strings.ToLower(raw)) {
	case posting.JobTypeFullTime, posting.JobTypePartTime, posting.JobTypeContract, posting.JobTypeInternship:
		return posting.JobType(strings.ToLower(raw)), true
	default:
		return "", false
	}
}

// RegisterRoutes registers all posting routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/jobs")

	api.Get("/search", handlers.SearchJobs)
}
