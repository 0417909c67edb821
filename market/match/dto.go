package match

// RecommendRequest - DTO for requesting skill-based recommendations
type RecommendRequest struct {
	Skills    []string `json:"skills" validate:"required,min=1"`
	Location  string   `json:"location,omitempty"`
	SalaryMin *int     `json:"salary_min,omitempty"`
	SalaryMax *int     `json:"salary_max,omitempty"`
	Remote    *bool    `json:"remote,omitempty"`
	Limit     int      `json:"limit,omitempty"`
}

// RecommendResponse - ranked recommendations for the supplied skills
type RecommendResponse struct {
	Jobs  []ScoredPosting `json:"jobs"`
	Total int             `json:"total"`
}
