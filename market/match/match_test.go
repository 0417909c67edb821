package match_test

import (
	"testing"

	"github.com/careerbuddy/compass/market/match"
	"github.com/careerbuddy/compass/market/posting"
)

// ── Score ──────────────────────────────────────────────────────────────────

func TestScore_EmptyJobSkillsIsZero(t *testing.T) {
	if got := match.Score(nil, []string{"Python", "Go"}); got != 0 {
		t.Errorf("Score(∅, skills) = %d, want 0", got)
	}
}

func TestScore_SelfMatchIsHundred(t *testing.T) {
	sets := [][]string{
		{"Python"},
		{"React", "TypeScript", "AWS"},
		{"SQL", "Docker", "Kubernetes", "Linux", "Git"},
	}
	for _, s := range sets {
		if got := match.Score(s, s); got != 100 {
			t.Errorf("Score(%v, %v) = %d, want 100", s, s, got)
		}
	}
}

func TestScore_WithinBounds(t *testing.T) {
	cases := []struct {
		job, user []string
	}{
		{[]string{"React", "Vue.js"}, []string{"React"}},
		{[]string{"Go"}, nil},
		{[]string{"A", "B", "C"}, []string{"Z"}},
		{[]string{"Python", "SQL", "AWS"}, []string{"python", "sql", "aws", "extra"}},
	}
	for _, tc := range cases {
		got := match.Score(tc.job, tc.user)
		if got < 0 || got > 100 {
			t.Errorf("Score(%v, %v) = %d, out of [0,100]", tc.job, tc.user, got)
		}
	}
}

func TestScore_Rounding(t *testing.T) {
	// 2 of 3 matched → round(66.67) = 67
	got := match.Score([]string{"React", "Node.js", "Rust"}, []string{"react", "node.js"})
	if got != 67 {
		t.Errorf("Score = %d, want 67", got)
	}
}

// ── Predicate ──────────────────────────────────────────────────────────────

func TestMatches_CaseInsensitiveBothDirections(t *testing.T) {
	if !match.Matches("JavaScript", "java") {
		t.Error(`"java" should match "JavaScript" (substring heuristic)`)
	}
	if !match.Matches("SQL", "PostgreSQL") {
		t.Error(`"PostgreSQL" should match "SQL"`)
	}
	if match.Matches("Go", "Rust") {
		t.Error(`"Rust" should not match "Go"`)
	}
}

func TestMatchingSkills_SubsetAndOrder(t *testing.T) {
	got := match.MatchingSkills(
		[]string{"React", "Node.js", "AWS", "Terraform"},
		[]string{"aws", "react"},
	)

	if len(got) != 2 || got[0] != "React" || got[1] != "AWS" {
		t.Errorf("MatchingSkills = %v, want [React AWS] in job-skill order", got)
	}
}

// ── Rank ───────────────────────────────────────────────────────────────────

func TestRank_DropsScoresAtOrBelowThreshold(t *testing.T) {
	jobs := []posting.JobPosting{
		{ID: "strong", Skills: []string{"Python"}},
		{ID: "weak", Skills: []string{"A", "B", "C", "D", "E"}}, // 1/5 = 20, excluded
		{ID: "zero", Skills: []string{"Rust"}},
	}

	ranked := match.Rank(jobs, []string{"Python", "A"})

	if len(ranked) != 1 {
		t.Fatalf("ranked = %d entries, want only the strong match", len(ranked))
	}
	if ranked[0].Job.ID != "strong" {
		t.Errorf("top match = %s", ranked[0].Job.ID)
	}
	for _, r := range ranked {
		if r.MatchPercentage <= match.ScoreThreshold {
			t.Errorf("job %s with score %d leaked past the threshold", r.Job.ID, r.MatchPercentage)
		}
	}
}

func TestRank_SortedNonIncreasing(t *testing.T) {
	jobs := []posting.JobPosting{
		{ID: "half", Skills: []string{"Python", "Rust"}},
		{ID: "full", Skills: []string{"Python"}},
		{ID: "third", Skills: []string{"Python", "Rust", "Haskell"}},
	}

	ranked := match.Rank(jobs, []string{"Python"})

	for i := 1; i < len(ranked); i++ {
		if ranked[i].MatchPercentage > ranked[i-1].MatchPercentage {
			t.Errorf("ranking not sorted: %d before %d",
				ranked[i-1].MatchPercentage, ranked[i].MatchPercentage)
		}
	}
	if ranked[0].Job.ID != "full" {
		t.Errorf("top = %s, want the 100%% match", ranked[0].Job.ID)
	}
}

func TestRank_CapsAtTopN(t *testing.T) {
	jobs := make([]posting.JobPosting, 0, match.TopN+3)
	for i := 0; i < match.TopN+3; i++ {
		jobs = append(jobs, posting.JobPosting{ID: "j", Skills: []string{"Go"}})
	}

	ranked := match.Rank(jobs, []string{"Go"})

	if len(ranked) != match.TopN {
		t.Errorf("ranked = %d entries, want cap of %d", len(ranked), match.TopN)
	}
}

func TestRank_StableForTies(t *testing.T) {
	jobs := []posting.JobPosting{
		{ID: "first", Skills: []string{"Go"}},
		{ID: "second", Skills: []string{"Go"}},
		{ID: "third", Skills: []string{"Go"}},
	}

	ranked := match.Rank(jobs, []string{"Go"})

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if ranked[i].Job.ID.String() != w {
			t.Errorf("tie order broken at %d: got %s, want %s", i, ranked[i].Job.ID, w)
		}
	}
}
