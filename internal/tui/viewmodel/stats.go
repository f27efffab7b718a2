package viewmodel

import (
	"math"

	"github.com/Veraticus/ecoscan/internal/common"
	"github.com/Veraticus/ecoscan/internal/model"
)

// StatsDetailView represents the statistics tab.
type StatsDetailView struct {
	AvgConfidence     *float64
	RecyclabilityRate *float64
	AvgEcoScore       *float64
	EmptyMessage      string
	CategoryStats     []CategoryStat
	Impact            model.Impact
	Total             int
	Loaded            bool
}

// CategoryStat represents statistics for a single category.
type CategoryStat struct {
	Name       string
	Category   model.Category
	Count      int
	Percentage float64
}

// HasCategories returns true if there are category statistics to display.
func (sv StatsDetailView) HasCategories() bool {
	return len(sv.CategoryStats) > 0
}

// NewStatsBar builds the counter strip.
func NewStatsBar(s model.Stats) StatsBarView {
	return StatsBarView{
		Total:        s.Total,
		ThisWeek:     s.ThisWeek,
		Achievements: s.AchievementsCount,
	}
}

// BuildStatsDetail builds the statistics tab. Percentages are over total,
// or over 1 when total is zero, rounded to one decimal.
func BuildStatsDetail(s model.Stats) StatsDetailView {
	denominator := s.Total
	if denominator == 0 {
		denominator = 1
	}

	view := StatsDetailView{
		Total:             s.Total,
		Impact:            model.ImpactFor(s.Total),
		AvgConfidence:     s.AvgConfidence,
		RecyclabilityRate: s.RecyclabilityRate,
		AvgEcoScore:       s.AvgEcoScore,
		Loaded:            true,
	}

	for _, c := range s.ByCategory {
		pct := float64(c.Count) / float64(denominator) * 100
		view.CategoryStats = append(view.CategoryStats, CategoryStat{
			Name:       c.Category.DisplayName(),
			Category:   c.Category,
			Count:      c.Count,
			Percentage: math.Round(pct*10) / 10,
		})
	}

	if len(view.CategoryStats) == 0 {
		view.EmptyMessage = common.MsgCategoryStatsEmpty
	}

	return view
}
