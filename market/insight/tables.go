package insight

// RoleSalary is the unscaled salary profile of one role
type RoleSalary struct {
	Title           string
	Base            SalaryBand
	Trend           TrendLabel
	TrendPercentage float64
	SampleSize      int
}

// Tables holds every fixed dataset the insight service reads. Injected at
// construction so tests can supply alternate data.
type Tables struct {
	Roles                 []RoleSalary
	LocationMultipliers   map[string]float64
	ExperienceMultipliers map[string]float64
	SkillTrends           []SkillTrend
	Companies             []CompanyInfo
	Stats                 MarketStats
}

// DefaultTables returns the shipped market dataset
func DefaultTables() Tables {
	return Tables{
		Roles: []RoleSalary{
			{Title: "Software Engineer", Base: SalaryBand{Min: 100000, Max: 180000}, Trend: TrendUp, TrendPercentage: 8.5, SampleSize: 1250},
			{Title: "Data Scientist", Base: SalaryBand{Min: 95000, Max: 170000}, Trend: TrendUp, TrendPercentage: 12.3, SampleSize: 890},
			{Title: "Frontend Developer", Base: SalaryBand{Min: 80000, Max: 140000}, Trend: TrendUp, TrendPercentage: 6.1, SampleSize: 1020},
			{Title: "DevOps Engineer", Base: SalaryBand{Min: 105000, Max: 175000}, Trend: TrendUp, TrendPercentage: 10.4, SampleSize: 640},
			{Title: "Product Manager", Base: SalaryBand{Min: 110000, Max: 185000}, Trend: TrendStable, TrendPercentage: 2.0, SampleSize: 480},
		},
		LocationMultipliers: map[string]float64{
			"San Francisco, CA": 1.30,
			"New York, NY":      1.25,
			"Seattle, WA":       1.15,
			"Austin, TX":        1.00,
			"Boston, MA":        1.10,
			"Remote":            1.05,
		},
		ExperienceMultipliers: map[string]float64{
			"Entry-Level": 0.70,
			"Mid-Level":   1.00,
			"Senior":      1.35,
			"Lead":        1.60,
		},
		SkillTrends: []SkillTrend{
			{Name: "React", Demand: 95, Growth: 35, AverageSalary: 125000, JobCount: 15420, Category: "Frontend"},
			{Name: "Python", Demand: 92, Growth: 28, AverageSalary: 135000, JobCount: 18950, Category: "Backend"},
			{Name: "TypeScript", Demand: 88, Growth: 40, AverageSalary: 128000, JobCount: 11240, Category: "Frontend"},
			{Name: "AWS", Demand: 90, Growth: 25, AverageSalary: 140000, JobCount: 16730, Category: "Cloud"},
			{Name: "Kubernetes", Demand: 84, Growth: 32, AverageSalary: 145000, JobCount: 8460, Category: "Cloud"},
			{Name: "Machine Learning", Demand: 86, Growth: 45, AverageSalary: 150000, JobCount: 9320, Category: "Data"},
			{Name: "SQL", Demand: 89, Growth: 12, AverageSalary: 115000, JobCount: 21050, Category: "Data"},
			{Name: "Go", Demand: 78, Growth: 38, AverageSalary: 142000, JobCount: 5890, Category: "Backend"},
		},
		Companies: []CompanyInfo{
			{
				Name:          "Google",
				Rating:        4.6,
				ReviewCount:   12543,
				Industry:      "Technology",
				Size:          "100,000+ employees",
				Headquarters:  "Mountain View, CA",
				OpenPositions: 1250,
				AverageSalary: 165000,
				Benefits:      []string{"Health Insurance", "Stock Options", "Free Meals", "20% Time"},
				Description:   "Leading technology company focused on search, cloud computing, and AI.",
			},
			{
				Name:          "Microsoft",
				Rating:        4.5,
				ReviewCount:   9870,
				Industry:      "Technology",
				Size:          "100,000+ employees",
				Headquarters:  "Redmond, WA",
				OpenPositions: 980,
				AverageSalary: 158000,
				Benefits:      []string{"Health Insurance", "Stock Options", "Flexible Hours", "Parental Leave"},
				Description:   "Global software company behind Windows, Azure, and Office.",
			},
			{
				Name:          "TechCorp Inc.",
				Rating:        4.1,
				ReviewCount:   830,
				Industry:      "Software",
				Size:          "1,000-5,000 employees",
				Headquarters:  "San Francisco, CA",
				OpenPositions: 85,
				AverageSalary: 132000,
				Benefits:      []string{"Health Insurance", "Remote Work", "Learning Budget"},
				Description:   "Product studio building developer tooling and web platforms.",
			},
			{
				Name:          "DataFlow Analytics",
				Rating:        4.3,
				ReviewCount:   410,
				Industry:      "Analytics",
				Size:          "500-1,000 employees",
				Headquarters:  "Austin, TX",
				OpenPositions: 42,
				AverageSalary: 127000,
				Benefits:      []string{"Health Insurance", "Unlimited PTO", "Home Office Stipend"},
				Description:   "Analytics platform for data teams, fully remote friendly.",
			},
		},
		Stats: MarketStats{
			TotalJobs:      2456789,
			TotalCompanies: 89432,
			AverageSalary:  127500,
			GrowthRate:     8.2,
			TopSkills:      []string{"JavaScript", "Python", "React", "Node.js", "AWS"},
			TopLocations:   []string{"San Francisco", "New York", "Seattle", "Austin", "Remote"},
		},
	}
}
