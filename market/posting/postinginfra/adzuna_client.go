package postinginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/careerbuddy/compass/market/posting"
	"github.com/careerbuddy/compass/pkg/errx"
	"github.com/careerbuddy/compass/pkg/kernel"
	"github.com/careerbuddy/compass/pkg/logx"
	"github.com/google/uuid"
)

const (
	defaultBaseURL = "https://api.adzuna.com/v1/api/jobs"
	sourceLabel    = "Adzuna"
	cacheTTL       = 5 * time.Minute
)

// AdzunaConfig holds provider credentials and tuning
type AdzunaConfig struct {
	AppID   string
	AppKey  string
	BaseURL string
	Country string
	Timeout time.Duration
}

// AdzunaClient implements posting.Provider over the Adzuna REST API.
// Raw pages are cached briefly when a PageCache is supplied; postings are
// re-derived from the cached payload on every request.
type AdzunaClient struct {
	cfg      AdzunaConfig
	http     *http.Client
	enricher *posting.Enricher
	cache    posting.PageCache
}

// NewAdzunaClient creates a provider client. cache may be nil.
func NewAdzunaClient(cfg AdzunaConfig, enricher *posting.Enricher, cache posting.PageCache) *AdzunaClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Country == "" {
		cfg.Country = "us"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &AdzunaClient{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.Timeout},
		enricher: enricher,
		cache:    cache,
	}
}

// Configured reports whether both credentials are present
func (c *AdzunaClient) Configured() bool {
	return c.cfg.AppID != "" && c.cfg.AppKey != ""
}

// adzunaJob mirrors one record of the provider response
type adzunaJob struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Created     string      `json:"created"`
	Location    struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	SalaryMin *float64 `json:"salary_min"`
	SalaryMax *float64 `json:"salary_max"`
	Company   struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	RedirectURL string `json:"redirect_url"`
}

type adzunaResponse struct {
	Count   int         `json:"count"`
	Results []adzunaJob `json:"results"`
}

// Search issues a single page request and maps the records into enriched
// postings. One attempt only; the service layer handles fallback.
func (c *AdzunaClient) Search(ctx context.Context, query, location string, page, limit int) ([]posting.JobPosting, error) {
	body, err := c.fetchPage(ctx, query, location, page, limit)
	if err != nil {
		return nil, err
	}

	var resp adzunaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errx.Wrap(err, "failed to decode provider response", errx.TypeExternal)
	}

	jobs := make([]posting.JobPosting, 0, len(resp.Results))
	for _, record := range resp.Results {
		jobs = append(jobs, c.mapRecord(record))
	}
	return jobs, nil
}

func (c *AdzunaClient) fetchPage(ctx context.Context, query, location string, page, limit int) ([]byte, error) {
	key := fmt.Sprintf("adzuna:%s:%s:%d:%d", query, location, page, limit)
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, key); ok {
			logx.Debugf("Provider page served from cache: %s", key)
			return body, nil
		}
	}

	endpoint := fmt.Sprintf("%s/%s/search/1", c.cfg.BaseURL, c.cfg.Country)
	params := url.Values{}
	params.Set("app_id", c.cfg.AppID)
	params.Set("app_key", c.cfg.AppKey)
	params.Set("what", query)
	params.Set("where", location)
	params.Set("results_per_page", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errx.Wrap(err, "failed to build provider request", errx.TypeInternal)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errx.Wrap(err, "provider request failed", errx.TypeExternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, posting.ErrProviderFailure().WithDetail("status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.Wrap(err, "failed to read provider response", errx.TypeExternal)
	}

	if c.cache != nil {
		c.cache.Set(ctx, key, body, cacheTTL)
	}
	return body, nil
}

// mapRecord copies direct attributes and derives the rest from the text.
// Salary is built only when the provider supplies both bounds.
func (c *AdzunaClient) mapRecord(record adzunaJob) posting.JobPosting {
	id := record.ID.String()
	if id == "" {
		id = uuid.NewString()
	}

	job := posting.JobPosting{
		ID:          kernel.PostingID(id),
		Title:       kernel.JobTitle(record.Title),
		Company:     kernel.CompanyName(record.Company.DisplayName),
		Location:    record.Location.DisplayName,
		Description: record.Description,
		PostedDate:  parseCreated(record.Created),
		Source:      sourceLabel,
		URL:         record.RedirectURL,
	}

	if record.SalaryMin != nil && record.SalaryMax != nil {
		job.Salary = &posting.SalaryRange{
			Min:      int(*record.SalaryMin),
			Max:      int(*record.SalaryMax),
			Currency: "USD",
		}
	}

	c.enricher.Enrich(&job)
	return job
}

func parseCreated(created string) time.Time {
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		return t
	}
	return time.Time{}
}
