package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/ecoscan/internal/tui/themes"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// ResultPanel renders a classification result.
type ResultPanel struct {
	theme themes.Theme
	width int
}

// NewResultPanel creates a result panel.
func NewResultPanel(theme themes.Theme) ResultPanel {
	return ResultPanel{theme: theme, width: 60}
}

// Resize sets the available width.
func (p *ResultPanel) Resize(width int) {
	p.width = width
}

// View renders r.
func (p ResultPanel) View(r viewmodel.ResultView) string {
	sections := []string{
		p.renderHeader(r),
		p.renderConfidence(r.Confidence),
	}
	if r.Recyclability != nil {
		sections = append(sections, p.renderRecyclability(*r.Recyclability))
	}
	if r.EcoScore != nil {
		sections = append(sections, p.renderEcoScore(*r.EcoScore))
	}
	if r.ShowQuality && len(r.QualityFeedback) > 0 {
		sections = append(sections, p.renderQuality(r.QualityFeedback))
	}
	if len(r.Predictions) > 0 {
		sections = append(sections, p.renderPredictions(r.Predictions))
	}
	sections = append(sections, p.renderDisposal(r))

	return lipgloss.JoinVertical(lipgloss.Left, withGaps(sections)...)
}

func (p ResultPanel) renderHeader(r viewmodel.ResultView) string {
	icon := themes.GetCategoryIcon(r.Category)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		p.theme.Title.Render("Result "),
		p.theme.Badge.Render(icon+" "+r.CategoryBadge),
	)
}

func (p ResultPanel) renderConfidence(c viewmodel.ConfidenceView) string {
	label := fmt.Sprintf("Confidence %s · %s", viewmodel.FormatPercent(c.Value), c.Level)
	return lipgloss.JoinVertical(lipgloss.Left,
		p.theme.Bold.Render(label),
		Meter(c.Value, c.Band, meterWidth(p.width)),
	)
}

func (p ResultPanel) renderRecyclability(rv viewmodel.RecyclabilityView) string {
	style := p.theme.StatusError
	if rv.Recyclable {
		style = p.theme.StatusSuccess
	}
	line := style.Render(rv.Icon + " " + rv.Status)
	if rv.Confidence != nil {
		line += p.theme.Subtitle.Render(fmt.Sprintf(" (%s confident)", viewmodel.FormatPercent(*rv.Confidence)))
	}
	if rv.Reason == "" {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		line,
		p.theme.Normal.Width(p.width).Render(rv.Reason),
	)
}

func (p ResultPanel) renderEcoScore(e viewmodel.EcoScoreView) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.theme.Bold.Render(fmt.Sprintf("🌱 Eco Score %s/100", viewmodel.FormatNumber(e.Score))),
		Meter(e.Score, e.Band, meterWidth(p.width)),
	)
}

func (p ResultPanel) renderQuality(feedback []string) string {
	lines := []string{p.theme.StatusWarning.Render("📷 Photo tips")}
	for _, f := range feedback {
		lines = append(lines, p.theme.Normal.Render("  • "+f))
	}
	return strings.Join(lines, "\n")
}

func (p ResultPanel) renderPredictions(preds []viewmodel.PredictionBar) string {
	labelWidth := 0
	for _, pr := range preds {
		labelWidth = max(labelWidth, lipgloss.Width(pr.Label))
	}

	lines := []string{p.theme.Subtitle.Render("Top predictions")}
	for _, pr := range preds {
		label := p.theme.Normal.Width(labelWidth + 1).Render(pr.Label)
		bar := SolidMeter(pr.Confidence, string(p.theme.Secondary), meterWidth(p.width)-labelWidth/2)
		lines = append(lines, label+" "+bar+" "+viewmodel.FormatPercent(pr.Confidence))
	}
	return strings.Join(lines, "\n")
}

func (p ResultPanel) renderDisposal(r viewmodel.ResultView) string {
	guide := p.theme.RoundedBox.Width(min(p.width, 80)).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			p.theme.Bold.Render("♻️  How to dispose"),
			r.DisposalGuide,
		),
	)
	if r.FunFact == "" {
		return guide
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		guide,
		p.theme.Italic.Render("💡 "+r.FunFact),
	)
}

func withGaps(sections []string) []string {
	out := make([]string, 0, len(sections)*2)
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, s)
	}
	return out
}
