package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/tui/themes"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// CoachPanel renders the coach overlay and its launcher. The transcript
// lives in a viewport that follows the newest message until the user
// scrolls back.
type CoachPanel struct {
	theme    themes.Theme
	width    int
	height   int
	viewport viewport.Model
	seen     int
}

// NewCoachPanel creates a coach panel.
func NewCoachPanel(theme themes.Theme) CoachPanel {
	return CoachPanel{theme: theme, width: 40, height: 20, viewport: viewport.New(36, 10)}
}

// Resize sets the panel size.
func (p *CoachPanel) Resize(width, height int) {
	p.width = width
	p.height = height
}

// Sync lays the transcript out for the current size. It jumps to the
// bottom when a message arrived or the view was already at the bottom.
func (p *CoachPanel) Sync(cv viewmodel.CoachView) {
	inner := p.innerWidth()
	follow := p.viewport.AtBottom() || len(cv.Messages) != p.seen

	p.viewport.Width = inner
	p.viewport.Height = p.transcriptHeight(cv)
	p.viewport.SetContent(p.renderTranscript(cv.Messages, inner))
	if follow {
		p.viewport.GotoBottom()
	}
	p.seen = len(cv.Messages)
}

// ScrollUp moves the transcript back by half a page.
func (p *CoachPanel) ScrollUp() {
	p.viewport.HalfPageUp()
}

// ScrollDown moves the transcript forward by half a page.
func (p *CoachPanel) ScrollDown() {
	p.viewport.HalfPageDown()
}

// AtBottom reports whether the newest message is in view.
func (p CoachPanel) AtBottom() bool {
	return p.viewport.AtBottom()
}

// Launcher renders the closed-state button.
func (p CoachPanel) Launcher() string {
	return p.theme.Badge.Render("💬 c Recycling Coach")
}

// View renders the open overlay. input is the rendered text input and
// spinner the current spinner frame.
func (p CoachPanel) View(cv viewmodel.CoachView, input, spinner string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, p.header(), "", p.viewport.View(), p.footer(cv, input, spinner))
	return p.theme.RoundedBox.
		BorderForeground(p.theme.Primary).
		Width(p.width - 2).
		Render(body)
}

func (p CoachPanel) innerWidth() int {
	return max(p.width-4, 10)
}

func (p CoachPanel) header() string {
	return p.theme.Title.Render("🌍 Recycling Coach") + p.theme.Subtitle.Render("  esc close")
}

func (p CoachPanel) footer(cv viewmodel.CoachView, input, spinner string) string {
	var footer []string
	if cv.Typing {
		footer = append(footer, p.theme.StatusPending.Render(spinner+" Coach is typing..."))
	}
	if cv.HasQuickActions() {
		footer = append(footer, p.theme.Subtitle.Render(cv.QuickPrompt))
		var buttons []string
		for _, qa := range cv.QuickActions {
			buttons = append(buttons, p.theme.Bold.Render("["+qa.Key+"]")+" "+qa.Label)
		}
		footer = append(footer, lipgloss.NewStyle().Width(p.innerWidth()).Render(strings.Join(buttons, "  ")))
	}
	if !cv.SendEnabled {
		input = p.theme.StatusPending.Render("sending...")
	}
	footer = append(footer, input)
	return strings.Join(footer, "\n")
}

func (p CoachPanel) transcriptHeight(cv viewmodel.CoachView) int {
	h := p.height - 4 - lipgloss.Height(p.header()) - lipgloss.Height(p.footer(cv, "", ""))
	return max(h, 1)
}

func (p CoachPanel) renderTranscript(messages []viewmodel.ChatBubble, width int) string {
	bubbleWidth := max(width*4/5, 8)
	rendered := make([]string, 0, len(messages))
	for _, m := range messages {
		rendered = append(rendered, p.renderBubble(m, bubbleWidth, width))
	}
	return strings.Join(rendered, "\n\n")
}

func (p CoachPanel) renderBubble(b viewmodel.ChatBubble, bubbleWidth, width int) string {
	style := p.theme.BotBubble
	align := lipgloss.Left
	if b.Role == model.RoleUser {
		style = p.theme.UserBubble
		align = lipgloss.Right
	}
	text := style.Width(min(bubbleWidth, longestLine(b.Lines)+4)).Render(b.Text())
	return lipgloss.PlaceHorizontal(width, align, text)
}

func longestLine(lines []string) int {
	n := 0
	for _, l := range lines {
		n = max(n, lipgloss.Width(l))
	}
	return n
}
