package matchsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/careerbuddy/compass/market/match"
	"github.com/careerbuddy/compass/market/posting"
	"github.com/careerbuddy/compass/market/posting/postingsrv"
	"github.com/careerbuddy/compass/pkg/errx"
)

func catalog() []posting.JobPosting {
	return []posting.JobPosting{
		{
			ID:          "cat-1",
			Title:       "React Developer",
			Company:     "Acme",
			Description: "frontend role",
			Skills:      []string{"React", "JavaScript", "TypeScript"},
		},
		{
			ID:          "cat-2",
			Title:       "Platform Engineer",
			Company:     "Acme",
			Description: "infra role",
			Skills:      []string{"Go", "Kubernetes", "AWS"},
			Remote:      true,
		},
		{
			ID:          "cat-3",
			Title:       "Data Scientist",
			Company:     "Initech",
			Description: "analytics role",
			Skills:      []string{"Python", "SQL", "Machine Learning"},
		},
		{
			ID:          "cat-4",
			Title:       "Rails Developer",
			Company:     "Initech",
			Description: "web role",
			Skills:      []string{"Ruby", "Rails", "MySQL", "Heroku", "Sidekiq"},
		},
	}
}

func newService() *RecommendationService {
	search := postingsrv.NewSearchService(nil, catalog())
	return NewRecommendationService(search)
}

func TestRecommend_RequiresSkills(t *testing.T) {
	svc := newService()

	_, err := svc.Recommend(context.Background(), match.RecommendRequest{})
	if err == nil {
		t.Fatal("expected error for empty skill list")
	}

	var appErr *errx.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *errx.Error, got %T", err)
	}
	if appErr.HTTPStatus != 400 {
		t.Errorf("HTTPStatus = %d, want 400", appErr.HTTPStatus)
	}
}

func TestRecommend_RanksMatchingJobs(t *testing.T) {
	svc := newService()

	resp, err := svc.Recommend(context.Background(), match.RecommendRequest{
		Skills: []string{"Go", "Kubernetes", "AWS"},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if resp.Total != 1 {
		t.Fatalf("Total = %d, want 1", resp.Total)
	}
	got := resp.Jobs[0]
	if got.Job.ID.String() != "cat-2" {
		t.Errorf("top job = %s, want cat-2", got.Job.ID)
	}
	if got.MatchPercentage != 100 {
		t.Errorf("MatchPercentage = %d, want 100", got.MatchPercentage)
	}
}

func TestRecommend_ExcludesLowScores(t *testing.T) {
	svc := newService()

	// One matched skill out of the five the Rails posting declares scores
	// exactly 20, which sits on the cutoff and is excluded.
	resp, err := svc.Recommend(context.Background(), match.RecommendRequest{
		Skills: []string{"Ruby"},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("Total = %d, want 0", resp.Total)
	}
}

func TestRecommend_AppliesSearchFilters(t *testing.T) {
	svc := newService()

	remote := true
	resp, err := svc.Recommend(context.Background(), match.RecommendRequest{
		Skills: []string{"React", "Go", "Python"},
		Remote: &remote,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	for _, scored := range resp.Jobs {
		if !scored.Job.Remote {
			t.Errorf("job %s is not remote", scored.Job.ID)
		}
	}
	if resp.Total != 1 {
		t.Errorf("Total = %d, want 1", resp.Total)
	}
}

func TestRecommend_ReportsMatchedSkills(t *testing.T) {
	svc := newService()

	resp, err := svc.Recommend(context.Background(), match.RecommendRequest{
		Skills: []string{"Python", "SQL"},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("Total = %d, want 1", resp.Total)
	}

	matched := resp.Jobs[0].MatchedSkills
	if len(matched) != 2 {
		t.Fatalf("MatchedSkills = %v, want two entries", matched)
	}
}
