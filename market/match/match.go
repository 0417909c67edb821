package match

import (
	"math"
	"sort"
	"strings"

	"github.com/careerbuddy/compass/market/posting"
)

// Ranking cutoffs shared by every surface that recommends jobs
const (
	// ScoreThreshold excludes weak matches from recommendations
	ScoreThreshold = 20

	// TopN caps how many recommendations are returned
	TopN = 5
)

// Matches reports whether a job skill and a user skill overlap: either one
// case-insensitively contains the other. This deliberately conflates terms
// sharing substrings ("Java" matches "JavaScript") — a known limitation of
// the heuristic, kept as documented behavior.
func Matches(jobSkill, userSkill string) bool {
	j := strings.ToLower(jobSkill)
	u := strings.ToLower(userSkill)
	return strings.Contains(u, j) || strings.Contains(j, u)
}

// MatchingSkills returns the subset of job skills matched by at least one
// user skill, preserving job-skill order.
func MatchingSkills(jobSkills, userSkills []string) []string {
	matched := make([]string, 0, len(jobSkills))
	for _, js := range jobSkills {
		for _, us := range userSkills {
			if Matches(js, us) {
				matched = append(matched, js)
				break
			}
		}
	}
	return matched
}

// Score computes the percentage of job skills covered by the user's skills,
// rounded to the nearest integer. A job declaring no skills scores 0.
func Score(jobSkills, userSkills []string) int {
	if len(jobSkills) == 0 {
		return 0
	}
	matched := len(MatchingSkills(jobSkills, userSkills))
	return int(math.Round(float64(matched) / float64(len(jobSkills)) * 100))
}

// ScoredPosting pairs a posting with its match result
type ScoredPosting struct {
	Job             posting.JobPosting `json:"job"`
	MatchPercentage int                `json:"match_percentage"`
	MatchedSkills   []string           `json:"matched_skills"`
}

// Rank scores every posting against the user's skills, drops scores at or
// below the threshold, and returns the top entries sorted by descending
// score. The sort is stable so equal scores keep their input order.
func Rank(jobs []posting.JobPosting, userSkills []string) []ScoredPosting {
	scored := make([]ScoredPosting, 0, len(jobs))
	for _, job := range jobs {
		score := Score(job.Skills, userSkills)
		if score <= ScoreThreshold {
			continue
		}
		scored = append(scored, ScoredPosting{
			Job:             job,
			MatchPercentage: score,
			MatchedSkills:   MatchingSkills(job.Skills, userSkills),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchPercentage > scored[j].MatchPercentage
	})

	if len(scored) > TopN {
		scored = scored[:TopN]
	}
	return scored
}
