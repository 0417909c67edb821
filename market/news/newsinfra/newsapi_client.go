package newsinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/careerbuddy/compass/market/news"
	"github.com/careerbuddy/compass/pkg/errx"
)

const (
	defaultBaseURL = "https://newsapi.org/v2/everything"

	// sourceDomains keep the feed on technology outlets
	sourceDomains = "techcrunch.com,theverge.com,wired.com,engadget.com,thenextweb.com"

	pageSize = 15
)

// NewsAPIClient implements news.HeadlineProvider over newsapi.org
type NewsAPIClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewNewsAPIClient creates a new headline provider client
func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether an API key is present
func (c *NewsAPIClient) Configured() bool {
	return c.apiKey != ""
}

type newsAPIArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

// Fetch requests one page of headlines for the query over the last month
func (c *NewsAPIClient) Fetch(ctx context.Context, query string, page int) ([]news.Article, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, -1, 0)

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", now.Format("2006-01-02"))
	params.Set("domains", sourceDomains)
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(page))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errx.Wrap(err, "failed to build news request", errx.TypeInternal)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errx.Wrap(err, "news request failed", errx.TypeExternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errx.Wrap(
			fmt.Errorf("news provider returned status %d", resp.StatusCode),
			"news request failed", errx.TypeExternal)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.Wrap(err, "failed to read news response", errx.TypeExternal)
	}

	var parsed newsAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errx.Wrap(err, "failed to decode news response", errx.TypeExternal)
	}

	articles := make([]news.Article, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		published, _ := time.Parse(time.RFC3339, a.PublishedAt)
		articles = append(articles, news.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: published,
			Source:      a.Source.Name,
		})
	}
	return articles, nil
}
