package postingsrv

import (
	"context"

	"github.com/careerbuddy/compass/market/posting"
	"github.com/careerbuddy/compass/pkg/logx"
)

// SearchService aggregates postings from the external provider with a
// fixed sample catalog as fallback, then applies the caller's filters.
type SearchService struct {
	provider posting.Provider
	samples  []posting.JobPosting
}

// NewSearchService creates the aggregation service. The sample catalog is
// injected read-only configuration; the service never mutates it.
func NewSearchService(provider posting.Provider, samples []posting.JobPosting) *SearchService {
	return &SearchService{
		provider: provider,
		samples:  samples,
	}
}

// Search runs the full aggregation pipeline: provider fetch, fallback
// substitution, filtering, and pagination bookkeeping. Provider failures
// are logged and masked; only unexpected internal errors reach the caller.
func (s *SearchService) Search(ctx context.Context, query posting.SearchQuery) (*posting.SearchJobsResponse, error) {
	query.Normalize()

	jobs := s.fetchFromProvider(ctx, query)
	if len(jobs) == 0 {
		jobs = s.fallbackJobs(query)
	}

	filtered := applyFilters(jobs, query)

	total := len(filtered)
	hasMore := total > query.Limit
	page := filtered
	if hasMore {
		page = filtered[:query.Limit]
	}

	return &posting.SearchJobsResponse{
		Jobs:    page,
		Total:   total,
		Page:    query.Page,
		HasMore: hasMore,
	}, nil
}

// fetchFromProvider makes a single attempt against the external provider.
// Any failure degrades to an empty result so the fallback path kicks in.
func (s *SearchService) fetchFromProvider(ctx context.Context, query posting.SearchQuery) []posting.JobPosting {
	if s.provider == nil || !s.provider.Configured() {
		return nil
	}

	jobs, err := s.provider.Search(ctx, query.Query, query.Location, query.Page, query.Limit)
	if err != nil {
		logx.Warnf("Job provider unavailable, using fallback data: %v", err)
		return nil
	}

	return jobs
}

// fallbackJobs returns the sample catalog, narrowed by the query text when
// the caller searched for something other than the default.
func (s *SearchService) fallbackJobs(query posting.SearchQuery) []posting.JobPosting {
	if query.Query == posting.DefaultQuery {
		return append([]posting.JobPosting(nil), s.samples...)
	}

	matched := make([]posting.JobPosting, 0, len(s.samples))
	for _, job := range s.samples {
		if job.MatchesText(query.Query) {
			matched = append(matched, job)
		}
	}
	return matched
}

// applyFilters applies each present filter in order. The operation is
// idempotent: filtering an already-filtered list changes nothing.
func applyFilters(jobs []posting.JobPosting, query posting.SearchQuery) []posting.JobPosting {
	filtered := jobs

	if query.SalaryMin != nil {
		filtered = keep(filtered, func(j posting.JobPosting) bool {
			return j.Salary != nil && j.Salary.Min >= *query.SalaryMin
		})
	}

	if query.SalaryMax != nil {
		filtered = keep(filtered, func(j posting.JobPosting) bool {
			return j.Salary != nil && j.Salary.Max <= *query.SalaryMax
		})
	}

	if query.JobType != nil {
		filtered = keep(filtered, func(j posting.JobPosting) bool {
			return j.Type == *query.JobType
		})
	}

	if query.Remote != nil && *query.Remote {
		filtered = keep(filtered, func(j posting.JobPosting) bool {
			return j.Remote
		})
	}

	if len(query.Skills) > 0 {
		filtered = keep(filtered, func(j posting.JobPosting) bool {
			return j.HasAnySkill(query.Skills)
		})
	}

	return filtered
}

func keep(jobs []posting.JobPosting, pred func(posting.JobPosting) bool) []posting.JobPosting {
	kept := make([]posting.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if pred(j) {
			kept = append(kept, j)
		}
	}
	return kept
}
