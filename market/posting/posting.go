package posting

import (
	"strings"
	"time"

	"github.com/careerbuddy/compass/pkg/kernel"
)

// JobType classifies the employment arrangement of a posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// SalaryRange is present only when both bounds are known
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// JobPosting is a single advertised position. Requirements, Skills, Type and
// Remote are derived from the free text and must be recomputable from it.
type JobPosting struct {
	ID           kernel.PostingID   `json:"id"`
	Title        kernel.JobTitle    `json:"title"`
	Company      kernel.CompanyName `json:"company"`
	Location     string             `json:"location"`
	Salary       *SalaryRange       `json:"salary,omitempty"`
	Description  string             `json:"description"`
	Requirements []string           `json:"requirements"`
	Skills       []string           `json:"skills"`
	Type         JobType            `json:"type"`
	Remote       bool               `json:"remote"`
	PostedDate   time.Time          `json:"postedDate"`
	Source       string             `json:"source"`
	URL          string             `json:"url"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// MatchesText reports whether the query text appears in the title,
// description or any declared skill. Used when narrowing the sample catalog.
func (p *JobPosting) MatchesText(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title.String()), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, skill := range p.Skills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

// HasAnySkill reports whether at least one of the wanted skills
// case-insensitively overlaps one of the posting's skills.
func (p *JobPosting) HasAnySkill(wanted []string) bool {
	for _, w := range wanted {
		lw := strings.ToLower(w)
		for _, s := range p.Skills {
			ls := strings.ToLower(s)
			if strings.Contains(ls, lw) || strings.Contains(lw, ls) {
				return true
			}
		}
	}
	return false
}
