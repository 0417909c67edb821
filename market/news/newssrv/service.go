package newssrv

import (
	"context"
	"strings"

	"github.com/careerbuddy/compass/market/news"
	"github.com/careerbuddy/compass/pkg/logx"
)

const defaultCategory = "technology careers"

// NewsService serves headline pages with the same swallow-and-fallback
// semantics as the job search: a provider failure never reaches the caller.
type NewsService struct {
	provider news.HeadlineProvider
	fallback []news.Article
}

// NewNewsService creates a new headline service
func NewNewsService(provider news.HeadlineProvider, fallback []news.Article) *NewsService {
	return &NewsService{
		provider: provider,
		fallback: fallback,
	}
}

// Headlines fetches one page for the category, dropping image-less articles
// and duplicate titles. Provider failure substitutes the fallback list.
func (s *NewsService) Headlines(ctx context.Context, category string, page int) []news.Article {
	if category == "" {
		category = defaultCategory
	}
	if page < 1 {
		page = 1
	}

	if s.provider == nil || !s.provider.Configured() {
		return s.fallback
	}

	articles, err := s.provider.Fetch(ctx, category, page)
	if err != nil {
		logx.Warnf("News provider unavailable, using fallback headlines: %v", err)
		return s.fallback
	}

	cleaned := clean(articles)
	if len(cleaned) == 0 {
		return s.fallback
	}
	return cleaned
}

func clean(articles []news.Article) []news.Article {
	seen := make(map[string]bool, len(articles))
	kept := make([]news.Article, 0, len(articles))
	for _, a := range articles {
		if !strings.HasPrefix(a.ImageURL, "http") {
			continue
		}
		key := strings.ToLower(a.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, a)
	}
	return kept
}
