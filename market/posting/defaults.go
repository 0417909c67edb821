package posting

import "time"

// DefaultSkillVocabulary lists the technology names the enricher scans for.
// Kept as a constructor so tests and alternate deployments can swap tables.
func DefaultSkillVocabulary() []string {
	return []string{
		"JavaScript", "Python", "Java", "React", "Node.js", "AWS", "Docker",
		"Kubernetes", "SQL", "MongoDB", "TypeScript", "Angular", "Vue.js",
		"Express", "Django", "Flask", "Spring", "Git", "Jenkins", "Linux",
		"PostgreSQL", "Redis", "GraphQL", "Terraform", "Azure", "Go",
		"Machine Learning", "TensorFlow", "Pandas", "CSS",
	}
}

// SampleCatalog returns the five hand-authored postings substituted when the
// live provider yields nothing. Derived fields are declared, not computed,
// so the catalog stays stable regardless of vocabulary changes.
func SampleCatalog() []JobPosting {
	return []JobPosting{
		{
			ID:          "sample-1",
			Title:       "Senior React Developer",
			Company:     "TechCorp Inc.",
			Location:    "San Francisco, CA",
			Salary:      &SalaryRange{Min: 120000, Max: 160000, Currency: "USD"},
			Description: "We are looking for an experienced React developer to join our team. Requires 5+ years of React experience and TypeScript proficiency.",
			Requirements: []string{
				"5+ years React experience",
				"TypeScript proficiency",
				"Team leadership",
			},
			Skills:     []string{"React", "TypeScript", "JavaScript", "Node.js", "AWS"},
			Type:       JobTypeFullTime,
			Remote:     false,
			PostedDate: time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC),
			Source:     "CareerBuddy",
			URL:        "#",
		},
		{
			ID:          "sample-2",
			Title:       "Python Data Scientist",
			Company:     "DataFlow Analytics",
			Location:    "Remote",
			Salary:      &SalaryRange{Min: 110000, Max: 150000, Currency: "USD"},
			Description: "Join our remote data science team to analyze complex datasets. Must have machine learning experience and a statistics background.",
			Requirements: []string{
				"3+ years Python",
				"Machine Learning experience",
				"Statistics background",
			},
			Skills:     []string{"Python", "Machine Learning", "SQL", "Pandas", "TensorFlow"},
			Type:       JobTypeFullTime,
			Remote:     true,
			PostedDate: time.Date(2025, 8, 27, 14, 30, 0, 0, time.UTC),
			Source:     "CareerBuddy",
			URL:        "#",
		},
		{
			ID:          "sample-3",
			Title:       "Frontend Developer",
			Company:     "StartupXYZ",
			Location:    "New York, NY",
			Salary:      &SalaryRange{Min: 70000, Max: 95000, Currency: "USD"},
			Description: "Create beautiful and responsive user interfaces. Requires strong JavaScript and CSS fundamentals.",
			Requirements: []string{
				"1-3 years frontend experience",
				"Strong JavaScript and CSS fundamentals",
			},
			Skills:     []string{"React", "JavaScript", "CSS", "Vue.js"},
			Type:       JobTypeFullTime,
			Remote:     false,
			PostedDate: time.Date(2025, 8, 26, 9, 0, 0, 0, time.UTC),
			Source:     "CareerBuddy",
			URL:        "#",
		},
		{
			ID:          "sample-4",
			Title:       "DevOps Engineer",
			Company:     "CloudTech",
			Location:    "Seattle, WA",
			Salary:      &SalaryRange{Min: 90000, Max: 130000, Currency: "USD"},
			Description: "Manage cloud infrastructure and deployment pipelines. Must have AWS and Kubernetes experience. Work from home friendly.",
			Requirements: []string{
				"3-6 years infrastructure experience",
				"AWS and Kubernetes in production",
			},
			Skills:     []string{"AWS", "Docker", "Kubernetes", "Terraform", "Jenkins"},
			Type:       JobTypeFullTime,
			Remote:     true,
			PostedDate: time.Date(2025, 8, 25, 16, 45, 0, 0, time.UTC),
			Source:     "CareerBuddy",
			URL:        "#",
		},
		{
			ID:          "sample-5",
			Title:       "Backend Engineering Intern",
			Company:     "AI Innovations",
			Location:    "Boston, MA",
			Salary:      &SalaryRange{Min: 45000, Max: 60000, Currency: "USD"},
			Description: "Internship on our platform team building data processing pipelines. Requires coursework in Python and SQL.",
			Requirements: []string{
				"Coursework in Python and SQL",
				"Interest in distributed systems",
			},
			Skills:     []string{"Python", "SQL", "Django", "Redis"},
			Type:       JobTypeInternship,
			Remote:     false,
			PostedDate: time.Date(2025, 8, 24, 11, 15, 0, 0, time.UTC),
			Source:     "CareerBuddy",
			URL:        "#",
		},
	}
}
