package matchsrv

import (
	"context"

	"github.com/careerbuddy/compass/market/match"
	"github.com/careerbuddy/compass/market/posting"
	"github.com/careerbuddy/compass/market/posting/postingsrv"
)

// searchLimit widens the candidate pool before ranking trims it to TopN
const searchLimit = 20

// RecommendationService ranks search results against a user's skill list
type RecommendationService struct {
	search *postingsrv.SearchService
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(search *postingsrv.SearchService) *RecommendationService {
	return &RecommendationService{
		search: search,
	}
}

// Recommend runs a posting search seeded with the user's skills, scores the
// results, and returns the ranked shortlist.
func (s *RecommendationService) Recommend(ctx context.Context, req match.RecommendRequest) (*match.RecommendResponse, error) {
	if len(req.Skills) == 0 {
		return nil, match.ErrSkillsRequired()
	}

	limit := req.Limit
	if limit <= 0 {
		limit = searchLimit
	}

	// Query text is left to its default: the skills filter narrows the
	// candidate pool, and a joined-skills query would starve the fallback
	// catalog of matches.
	query := posting.SearchQuery{
		Location:  req.Location,
		Skills:    req.Skills,
		SalaryMin: req.SalaryMin,
		SalaryMax: req.SalaryMax,
		Remote:    req.Remote,
		Limit:     limit,
	}

	result, err := s.search.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	ranked := match.Rank(result.Jobs, req.Skills)
	return &match.RecommendResponse{
		Jobs:  ranked,
		Total: len(ranked),
	}, nil
}
