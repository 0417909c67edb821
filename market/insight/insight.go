package insight

// SalaryInsight is a scaled salary band for one role in one location
type SalaryInsight struct {
	Title           string      `json:"title"`
	Location        string      `json:"location"`
	AverageSalary   int         `json:"averageSalary"`
	SalaryRange     SalaryBand  `json:"salaryRange"`
	Experience      string      `json:"experience"`
	Trend           TrendLabel  `json:"trend"`
	TrendPercentage float64     `json:"trendPercentage"`
	SampleSize      int         `json:"sampleSize"`
}

// SalaryBand bounds a salary range in USD
type SalaryBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TrendLabel describes the direction of a metric
type TrendLabel string

const (
	TrendUp     TrendLabel = "up"
	TrendDown   TrendLabel = "down"
	TrendStable TrendLabel = "stable"
)

// SkillTrend describes market demand for one skill
type SkillTrend struct {
	Name          string `json:"name"`
	Demand        int    `json:"demand"`
	Growth        int    `json:"growth"`
	AverageSalary int    `json:"averageSalary"`
	JobCount      int    `json:"jobCount"`
	Category      string `json:"category"`
}

// CompanyInfo is one entry of the company directory
type CompanyInfo struct {
	Name          string   `json:"name"`
	Rating        float64  `json:"rating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
	Industry      string   `json:"industry"`
	Size          string   `json:"size"`
	Headquarters  string   `json:"headquarters"`
	OpenPositions int      `json:"openPositions"`
	AverageSalary int      `json:"averageSalary,omitempty"`
	Benefits      []string `json:"benefits"`
	Description   string   `json:"description"`
}

// MarketStats aggregates the whole market snapshot
type MarketStats struct {
	TotalJobs      int      `json:"totalJobs"`
	TotalCompanies int      `json:"totalCompanies"`
	AverageSalary  int      `json:"averageSalary"`
	GrowthRate     float64  `json:"growthRate"`
	TopSkills      []string `json:"topSkills"`
	TopLocations   []string `json:"topLocations"`
}
