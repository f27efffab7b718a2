package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/Veraticus/ecoscan/internal/coach"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/scan"
	"github.com/Veraticus/ecoscan/internal/tui/components"
	"github.com/Veraticus/ecoscan/internal/tui/themes"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// ScanPrinter renders scan controller output as a plain scrolling log for
// the one-shot commands.
type ScanPrinter struct {
	w            io.Writer
	result       components.ResultPanel
	stats        components.StatsPanel
	history      components.HistoryPanel
	achievements components.AchievementsPanel
	mu           sync.Mutex
	quiet        bool
}

var _ scan.View = (*ScanPrinter)(nil)

// NewScanPrinter creates a printer writing to w with panels sized to width.
// A quiet printer prints only warnings and errors.
func NewScanPrinter(w io.Writer, width int, quiet bool) *ScanPrinter {
	theme := themes.Default
	p := &ScanPrinter{
		w:            w,
		quiet:        quiet,
		result:       components.NewResultPanel(theme),
		stats:        components.NewStatsPanel(theme),
		history:      components.NewHistoryPanel(theme),
		achievements: components.NewAchievementsPanel(theme),
	}
	p.result.Resize(width)
	p.stats.Resize(width)
	p.history.Resize(width)
	p.achievements.Resize(width)
	return p
}

func (p *ScanPrinter) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *ScanPrinter) info(s string) {
	if !p.quiet {
		p.println(s)
	}
}

// ShowWarning implements scan.View.
func (p *ScanPrinter) ShowWarning(msg string) { p.println(FormatWarning(msg)) }

// ShowError implements scan.View.
func (p *ScanPrinter) ShowError(msg string) { p.println(FormatError(msg)) }

// ShowPreview implements scan.View.
func (p *ScanPrinter) ShowPreview(pv viewmodel.PreviewView) {
	details := []string{pv.MediaType, viewmodel.FormatSize(pv.Size)}
	if pv.Width > 0 && pv.Height > 0 {
		details = append(details, fmt.Sprintf("%d×%d px", pv.Width, pv.Height))
	}
	p.info(FormatInfo(fmt.Sprintf("Selected %s (%s)", pv.Name, strings.Join(details, ", "))))
}

// HideResults implements scan.View.
func (p *ScanPrinter) HideResults() {}

// SetLoading implements scan.View.
func (p *ScanPrinter) SetLoading(loading bool) {
	if loading {
		p.info(SubtleStyle.Render("Analyzing your waste..."))
	}
}

// SetClassifyEnabled implements scan.View.
func (p *ScanPrinter) SetClassifyEnabled(bool) {}

// RenderResult implements scan.View.
func (p *ScanPrinter) RenderResult(r viewmodel.ResultView) {
	p.info(p.result.View(r))
}

// UpdateStatsBar implements scan.View.
func (p *ScanPrinter) UpdateStatsBar(bar viewmodel.StatsBarView) {
	p.info(p.stats.Bar(bar))
}

// ShowAchievementNotice implements scan.View.
func (p *ScanPrinter) ShowAchievementNotice(n viewmodel.AchievementNotice) {
	names := make([]string, 0, len(n.Achievements))
	for _, a := range n.Achievements {
		names = append(names, a.Name)
	}
	p.info(FormatSuccess(TrophyIcon + " Achievement Unlocked! " + strings.Join(names, ", ")))
}

// DismissAchievementNotice implements scan.View.
func (p *ScanPrinter) DismissAchievementNotice() {}

// ResetUpload implements scan.View.
func (p *ScanPrinter) ResetUpload() {}

// RenderStatsDetail implements scan.View.
func (p *ScanPrinter) RenderStatsDetail(stats viewmodel.StatsDetailView) {
	p.info(p.stats.View(stats))
}

// RenderHistory implements scan.View.
func (p *ScanPrinter) RenderHistory(h viewmodel.HistoryView) {
	p.info(p.history.View(h))
}

// RenderAchievements implements scan.View.
func (p *ScanPrinter) RenderAchievements(b viewmodel.AchievementBoard) {
	p.info(p.achievements.View(b))
}

// CoachPrinter renders a coach session as a chat log.
type CoachPrinter struct {
	w      io.Writer
	mu     sync.Mutex
	typing bool
	tty    bool
}

var _ coach.View = (*CoachPrinter)(nil)

// NewCoachPrinter creates a printer writing to w. On a terminal the typing
// indicator is erased once the reply arrives.
func NewCoachPrinter(w io.Writer, tty bool) *CoachPrinter {
	return &CoachPrinter{w: w, tty: tty}
}

func (p *CoachPrinter) print(s string) {
	_, _ = fmt.Fprint(p.w, s)
}

// SetOpen implements coach.View.
func (p *CoachPrinter) SetOpen(open bool) {
	if !open {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.print(FormatTitle(CoachIcon+" Recycling Coach") + "\n")
}

// AppendMessage implements coach.View.
func (p *CoachPrinter) AppendMessage(role model.Role, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearTyping()
	bubble := viewmodel.NewChatBubble(role, text)
	label := PromptStyle.Render("You: ")
	if role == model.RoleBot {
		label = CoachStyle.Render(CoachIcon + " Coach: ")
	}
	p.print(label + strings.Join(bubble.Lines, "\n") + "\n\n")
}

// ShowQuickActions implements coach.View.
func (p *CoachPrinter) ShowQuickActions(prompt string, actions []coach.QuickAction) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	b.WriteString(SubtleStyle.Render(prompt) + "\n")
	for i, a := range actions {
		fmt.Fprintf(&b, "  %s %s\n", BoldStyle.Render(fmt.Sprintf("/%d", i+1)), a.Label())
	}
	p.print(b.String() + "\n")
}

// ShowTypingIndicator implements coach.View.
func (p *CoachPrinter) ShowTypingIndicator() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.typing = true
	line := SubtleStyle.Render("Coach is typing...")
	if p.tty {
		p.print(line)
	} else {
		p.print(line + "\n")
	}
}

// RemoveTypingIndicator implements coach.View.
func (p *CoachPrinter) RemoveTypingIndicator() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clearTyping()
}

// clearTyping erases the indicator line. Callers hold mu.
func (p *CoachPrinter) clearTyping() {
	if !p.typing {
		return
	}
	p.typing = false
	if p.tty {
		p.print("\r" + ansi.EraseEntireLine)
	}
}

// SetSendEnabled implements coach.View.
func (p *CoachPrinter) SetSendEnabled(bool) {}
