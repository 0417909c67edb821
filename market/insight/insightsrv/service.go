package insightsrv

import (
	"math"
	"strings"

	"github.com/careerbuddy/compass/market/insight"
)

// Fallbacks when the caller does not narrow the lookup
const (
	defaultExperience = "Mid-Level"
	defaultLocation   = "United States"
)

// InsightService serves read-only market data from fixed tables. Every
// lookup is a pure function of the tables and the request.
type InsightService struct {
	tables insight.Tables
}

// NewInsightService creates a service over the given dataset
func NewInsightService(tables insight.Tables) *InsightService {
	return &InsightService{
		tables: tables,
	}
}

// SalaryInsights returns the scaled band for every role matching the title
// filter. Bands scale by location and experience multipliers; unknown
// locations fall back to a neutral multiplier.
func (s *InsightService) SalaryInsights(title, location, experience string) []insight.SalaryInsight {
	if experience == "" {
		experience = defaultExperience
	}

	locMult := 1.0
	locLabel := defaultLocation
	if location != "" {
		locLabel = location
		if m, ok := s.tables.LocationMultipliers[location]; ok {
			locMult = m
		}
	}

	expMult := 1.0
	if m, ok := s.tables.ExperienceMultipliers[experience]; ok {
		expMult = m
	}

	insights := make([]insight.SalaryInsight, 0, len(s.tables.Roles))
	for _, role := range s.tables.Roles {
		if title != "" && !strings.Contains(strings.ToLower(role.Title), strings.ToLower(title)) {
			continue
		}

		min := scale(role.Base.Min, locMult*expMult)
		max := scale(role.Base.Max, locMult*expMult)

		insights = append(insights, insight.SalaryInsight{
			Title:           role.Title,
			Location:        locLabel,
			AverageSalary:   (min + max) / 2,
			SalaryRange:     insight.SalaryBand{Min: min, Max: max},
			Experience:      experience,
			Trend:           role.Trend,
			TrendPercentage: role.TrendPercentage,
			SampleSize:      role.SampleSize,
		})
	}
	return insights
}

// SkillTrends returns the trend table, optionally narrowed to one category
func (s *InsightService) SkillTrends(category string) []insight.SkillTrend {
	if category == "" {
		return append([]insight.SkillTrend(nil), s.tables.SkillTrends...)
	}

	trends := make([]insight.SkillTrend, 0, len(s.tables.SkillTrends))
	for _, trend := range s.tables.SkillTrends {
		if strings.EqualFold(trend.Category, category) {
			trends = append(trends, trend)
		}
	}
	return trends
}

// Companies returns directory entries matching every supplied filter
func (s *InsightService) Companies(name, industry, size string) []insight.CompanyInfo {
	companies := make([]insight.CompanyInfo, 0, len(s.tables.Companies))
	for _, company := range s.tables.Companies {
		if name != "" && !strings.Contains(strings.ToLower(company.Name), strings.ToLower(name)) {
			continue
		}
		if industry != "" && !strings.EqualFold(company.Industry, industry) {
			continue
		}
		if size != "" && !strings.EqualFold(company.Size, size) {
			continue
		}
		companies = append(companies, company)
	}
	return companies
}

// MarketStats returns the aggregate snapshot
func (s *InsightService) MarketStats() insight.MarketStats {
	return s.tables.Stats
}

func scale(base int, multiplier float64) int {
	return int(math.Round(float64(base) * multiplier))
}
