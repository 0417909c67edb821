package posting

// Search defaults mirror what the dashboard sends when the user has not
// narrowed anything down.
const (
	DefaultQuery    = "software developer"
	DefaultLocation = "USA"
	DefaultLimit    = 20
)

// SearchQuery - caller's search request after query-string parsing
type SearchQuery struct {
	Query     string   `json:"query"`
	Location  string   `json:"location"`
	Skills    []string `json:"skills,omitempty"`
	SalaryMin *int     `json:"salary_min,omitempty"`
	SalaryMax *int     `json:"salary_max,omitempty"`
	JobType   *JobType `json:"job_type,omitempty"`
	Remote    *bool    `json:"remote,omitempty"`
	Page      int      `json:"page"`
	Limit     int      `json:"limit"`
}

// Normalize fills defaults and clamps invalid paging values
func (q *SearchQuery) Normalize() {
	if q.Query == "" {
		q.Query = DefaultQuery
	}
	if q.Location == "" {
		q.Location = DefaultLocation
	}
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
}

// SearchJobsResponse - page of enriched postings
type SearchJobsResponse struct {
	Jobs    []JobPosting `json:"jobs"`
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	HasMore bool         `json:"hasMore"`
}
