package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/ecoscan/internal/tui/themes"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

const achievementCardWidth = 26

// AchievementsPanel renders the achievement board.
type AchievementsPanel struct {
	theme themes.Theme
	width int
}

// NewAchievementsPanel creates an achievements panel.
func NewAchievementsPanel(theme themes.Theme) AchievementsPanel {
	return AchievementsPanel{theme: theme, width: 60}
}

// Resize sets the available width.
func (p *AchievementsPanel) Resize(width int) {
	p.width = width
}

// View renders the board as a grid of cards.
func (p AchievementsPanel) View(b viewmodel.AchievementBoard) string {
	if !b.Loaded {
		return p.theme.StatusPending.Render("Loading achievements...")
	}

	title := p.theme.Title.Render(fmt.Sprintf("🏆 Achievements %d/%d", b.UnlockedCount(), len(b.Cards)))

	perRow := max(1, p.width/(achievementCardWidth+2))
	var rows []string
	for i := 0; i < len(b.Cards); i += perRow {
		end := min(i+perRow, len(b.Cards))
		cards := make([]string, 0, end-i)
		for _, c := range b.Cards[i:end] {
			cards = append(cards, p.renderCard(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(rows, "\n"))
}

func (p AchievementsPanel) renderCard(c viewmodel.AchievementCardView) string {
	status := p.theme.StatusPending.Render("🔒 " + c.Status)
	border := p.theme.Border
	if c.Unlocked {
		status = p.theme.StatusSuccess.Render("✓ " + c.Status)
		border = p.theme.Success
	}
	return p.theme.RoundedBox.
		BorderForeground(border).
		Width(achievementCardWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			p.theme.Bold.Render(c.Icon+" "+c.Title),
			p.theme.Subtitle.Render(c.Description),
			status,
		))
}
