package news

import (
	"context"
	"time"
)

// Article is one headline as served to the client
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
}

// HeadlineProvider fetches headlines from an external news source.
// Failures are recoverable; the service substitutes fallback headlines.
type HeadlineProvider interface {
	Fetch(ctx context.Context, query string, page int) ([]Article, error)
	Configured() bool
}

// FallbackHeadlines returns the fixed articles served when the provider is
// unavailable. Links point at evergreen career resources.
func FallbackHeadlines() []Article {
	return []Article{
		{
			Title:       "Tech hiring rebounds as AI roles drive demand",
			Description: "Job boards report rising listings for machine learning and platform engineering positions.",
			URL:         "https://example.com/news/tech-hiring-rebounds",
			ImageURL:    "https://example.com/images/hiring.jpg",
			PublishedAt: time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC),
			Source:      "CareerBuddy",
		},
		{
			Title:       "Remote work settles into hybrid norms for engineering teams",
			Description: "Most software employers now advertise two to three office days per week.",
			URL:         "https://example.com/news/hybrid-norms",
			ImageURL:    "https://example.com/images/remote.jpg",
			PublishedAt: time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC),
			Source:      "CareerBuddy",
		},
		{
			Title:       "Cloud certifications remain top resume signal, survey finds",
			Description: "Recruiters rank cloud platform credentials above framework-specific experience.",
			URL:         "https://example.com/news/cloud-certifications",
			ImageURL:    "https://example.com/images/cloud.jpg",
			PublishedAt: time.Date(2025, 8, 15, 8, 30, 0, 0, time.UTC),
			Source:      "CareerBuddy",
		},
	}
}
