package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/ecoscan/internal/tui/themes"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// StatsPanel renders the statistics tab and the counter strip.
type StatsPanel struct {
	theme themes.Theme
	width int
}

// NewStatsPanel creates a stats panel.
func NewStatsPanel(theme themes.Theme) StatsPanel {
	return StatsPanel{theme: theme, width: 60}
}

// Resize sets the available width.
func (p *StatsPanel) Resize(width int) {
	p.width = width
}

// Bar renders the always-visible counter strip.
func (p StatsPanel) Bar(b viewmodel.StatsBarView) string {
	item := func(icon, label string, n int) string {
		return p.theme.Bold.Render(fmt.Sprintf("%s %d", icon, n)) + p.theme.Subtitle.Render(" "+label)
	}
	return strings.Join([]string{
		item("📊", "total scans", b.Total),
		item("📅", "this week", b.ThisWeek),
		item("🏆", "achievements", b.Achievements),
	}, p.theme.Subtitle.Render("  │  "))
}

// View renders the statistics tab.
func (p StatsPanel) View(sv viewmodel.StatsDetailView) string {
	if !sv.Loaded {
		return p.theme.StatusPending.Render("Loading statistics...")
	}

	sections := []string{p.renderSummary(sv)}
	if sv.HasCategories() {
		sections = append(sections, p.renderCategories(sv.CategoryStats))
	} else {
		sections = append(sections, p.theme.StatusPending.Render(sv.EmptyMessage))
	}
	sections = append(sections, p.renderImpact(sv))

	return lipgloss.JoinVertical(lipgloss.Left, withGaps(sections)...)
}

func (p StatsPanel) renderSummary(sv viewmodel.StatsDetailView) string {
	lines := []string{
		p.theme.Title.Render("📈 Your statistics"),
		fmt.Sprintf("Total scans:         %d", sv.Total),
	}
	if sv.AvgConfidence != nil {
		lines = append(lines, "Average confidence:  "+viewmodel.FormatPercent(*sv.AvgConfidence))
	}
	if sv.RecyclabilityRate != nil {
		lines = append(lines, "Recyclability rate:  "+viewmodel.FormatPercent(*sv.RecyclabilityRate))
	}
	if sv.AvgEcoScore != nil {
		lines = append(lines, "Average eco score:   "+viewmodel.FormatNumber(*sv.AvgEcoScore))
	}
	return strings.Join(lines, "\n")
}

func (p StatsPanel) renderCategories(stats []viewmodel.CategoryStat) string {
	nameWidth := 0
	for _, s := range stats {
		nameWidth = max(nameWidth, lipgloss.Width(s.Name))
	}

	lines := []string{p.theme.Subtitle.Render("By category")}
	for _, s := range stats {
		name := p.theme.Normal.Width(nameWidth + 1).Render(s.Name)
		bar := SolidMeter(s.Percentage, string(p.theme.Primary), meterWidth(p.width)-nameWidth/2)
		lines = append(lines, fmt.Sprintf("%s %s %d (%s)", name, bar, s.Count, viewmodel.FormatPercent(s.Percentage)))
	}
	return strings.Join(lines, "\n")
}

func (p StatsPanel) renderImpact(sv viewmodel.StatsDetailView) string {
	impact := sv.Impact
	return p.theme.RoundedBox.Render(strings.Join([]string{
		p.theme.Bold.Render("🌍 Environmental impact"),
		fmt.Sprintf("🌳 %d trees saved", impact.Trees),
		fmt.Sprintf("💧 %dL water saved", impact.WaterL),
		fmt.Sprintf("⚡ %d kWh energy saved", impact.EnergyKWh),
		fmt.Sprintf("🌫️ %d kg CO₂ reduced", impact.CO2Kg),
	}, "\n"))
}
