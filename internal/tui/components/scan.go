package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/ecoscan/internal/tui/themes"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// ScanPanel renders the upload, preview, loading and result states.
type ScanPanel struct {
	result ResultPanel
	theme  themes.Theme
	width  int
}

// NewScanPanel creates a scan panel.
func NewScanPanel(theme themes.Theme) ScanPanel {
	return ScanPanel{
		theme:  theme,
		result: NewResultPanel(theme),
		width:  60,
	}
}

// Resize sets the available width.
func (p *ScanPanel) Resize(width int) {
	p.width = width
	p.result.Resize(width)
}

// View renders sv. spinner is the current spinner frame, shown while a
// classification is in flight.
func (p ScanPanel) View(sv viewmodel.ScanView, spinner string) string {
	var sections []string

	if sv.Notice != nil {
		sections = append(sections, p.renderNotice(*sv.Notice))
	}
	if sv.Warning != "" {
		sections = append(sections, p.theme.StatusWarning.Render("⚠️  "+sv.Warning))
	}
	if sv.Error != "" {
		sections = append(sections, p.theme.StatusError.Render("✗ "+sv.Error))
	}

	if sv.UploadVisible || !sv.HasPreview() {
		sections = append(sections, p.renderUpload())
	} else {
		sections = append(sections, p.renderPreview(*sv.Preview, sv.ClassifyEnabled && !sv.Loading))
	}

	if sv.Loading {
		sections = append(sections, p.theme.StatusInfo.Render(spinner+" Analyzing your waste..."))
	}

	if sv.HasResult() {
		sections = append(sections, p.result.View(*sv.Result))
	}

	return lipgloss.JoinVertical(lipgloss.Left, withGaps(sections)...)
}

func (p ScanPanel) renderUpload() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		p.theme.Title.Render("📸 Scan an item"),
		p.theme.Subtitle.Render("Press o and type or paste an image path."),
		p.theme.Subtitle.Render("Dropping a file onto the terminal works too."),
	)
	return p.theme.RoundedBox.
		BorderForeground(p.theme.Primary).
		Width(min(p.width, 70)).
		Align(lipgloss.Center).
		Render(body)
}

func (p ScanPanel) renderPreview(pv viewmodel.PreviewView, canClassify bool) string {
	details := []string{
		p.theme.Bold.Render("🖼️  " + pv.Name),
		p.theme.Subtitle.Render(fmt.Sprintf("%s · %s", pv.MediaType, viewmodel.FormatSize(pv.Size))),
	}
	if pv.Width > 0 && pv.Height > 0 {
		details = append(details, p.theme.Subtitle.Render(fmt.Sprintf("%d×%d px", pv.Width, pv.Height)))
	}
	if canClassify {
		details = append(details, p.theme.StatusSuccess.Render("Enter classify · r choose another"))
	}
	return p.theme.RoundedBox.Width(min(p.width, 70)).Render(strings.Join(details, "\n"))
}

func (p ScanPanel) renderNotice(n viewmodel.AchievementNotice) string {
	lines := []string{"🏆 Achievement Unlocked!"}
	for _, a := range n.Achievements {
		line := a.Name
		if a.Description != "" {
			line += " · " + a.Description
		}
		lines = append(lines, line)
	}
	return p.theme.Notice.Render(strings.Join(lines, "\n"))
}
