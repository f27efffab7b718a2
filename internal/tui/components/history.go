package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/ecoscan/internal/tui/themes"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// HistoryPanel renders recent scans.
type HistoryPanel struct {
	theme themes.Theme
	width int
}

// NewHistoryPanel creates a history panel.
func NewHistoryPanel(theme themes.Theme) HistoryPanel {
	return HistoryPanel{theme: theme, width: 60}
}

// Resize sets the available width.
func (p *HistoryPanel) Resize(width int) {
	p.width = width
}

// View renders hv.
func (p HistoryPanel) View(hv viewmodel.HistoryView) string {
	if !hv.Loaded {
		return p.theme.StatusPending.Render("Loading history...")
	}

	lines := []string{p.theme.Title.Render("🕘 Recent scans"), ""}
	if hv.IsEmpty() {
		return strings.Join(append(lines, p.theme.StatusPending.Render(hv.EmptyMessage)), "\n")
	}

	for _, c := range hv.Cards {
		head := fmt.Sprintf("%s %s", themes.GetCategoryIcon(c.Category), p.theme.Bold.Render(c.Label))
		meta := p.theme.Subtitle.Render(fmt.Sprintf("%s · %s", viewmodel.FormatPercent(c.Confidence), c.When))
		lines = append(lines, head+"  "+meta)
		if c.ImageURL != "" {
			lines = append(lines, "   "+p.theme.StatusPending.Render(viewmodel.TruncateString(c.ImageURL, max(p.width-4, 20))))
		}
	}
	return strings.Join(lines, "\n")
}
