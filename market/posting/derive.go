package posting

import (
	"strings"
)

// remoteKeywords mark a posting as remote when found in the description
var remoteKeywords = []string{"remote", "work from home", "distributed", "anywhere", "telecommute"}

// requirementMarkers select description lines that read like requirements
var requirementMarkers = []string{"require", "must have", "experience"}

const maxRequirements = 5

// Enricher derives structured attributes from posting free text. The skill
// vocabulary is injected so tests can run against alternate tables.
type Enricher struct {
	vocabulary []string
}

// NewEnricher creates an enricher over the given skill vocabulary
func NewEnricher(vocabulary []string) *Enricher {
	return &Enricher{vocabulary: vocabulary}
}

// Enrich populates all derived fields of the posting in place
func (e *Enricher) Enrich(p *JobPosting) {
	p.Skills = e.DeriveSkills(p.Description)
	p.Requirements = DeriveRequirements(p.Description)
	p.Type = DeriveJobType(p.Title.String(), p.Description)
	p.Remote = DeriveRemote(p.Description)
}

// DeriveSkills returns every vocabulary entry appearing as a case-insensitive
// substring of the description, in vocabulary order.
func (e *Enricher) DeriveSkills(description string) []string {
	lower := strings.ToLower(description)
	skills := make([]string, 0)
	for _, skill := range e.vocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// DeriveRequirements keeps description lines that mention a requirement
// marker, preserving source order, capped at five.
func DeriveRequirements(description string) []string {
	requirements := make([]string, 0, maxRequirements)
	for _, line := range splitLines(description) {
		lower := strings.ToLower(line)
		for _, marker := range requirementMarkers {
			if strings.Contains(lower, marker) {
				requirements = append(requirements, line)
				break
			}
		}
		if len(requirements) == maxRequirements {
			break
		}
	}
	return requirements
}

// splitLines breaks a description into candidate requirement lines on
// newlines and sentence boundaries. Splitting only on ". " keeps tokens
// like "Node.js" intact.
func splitLines(description string) []string {
	lines := make([]string, 0)
	for _, raw := range strings.Split(description, "\n") {
		for _, sentence := range strings.Split(raw, ". ") {
			sentence = strings.TrimSpace(sentence)
			sentence = strings.TrimSuffix(sentence, ".")
			if sentence != "" {
				lines = append(lines, sentence)
			}
		}
	}
	return lines
}

// DeriveJobType inspects title and description. Checks run in priority
// order; the first match wins, full-time is the default.
func DeriveJobType(title, description string) JobType {
	full := strings.ToLower(title + " " + description)

	switch {
	case strings.Contains(full, "intern"):
		return JobTypeInternship
	case strings.Contains(full, "contract") || strings.Contains(full, "freelance"):
		return JobTypeContract
	case strings.Contains(full, "part-time") || strings.Contains(full, "part time"):
		return JobTypePartTime
	default:
		return JobTypeFullTime
	}
}

// DeriveRemote reports whether the description mentions any remote keyword
func DeriveRemote(description string) bool {
	lower := strings.ToLower(description)
	for _, keyword := range remoteKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
