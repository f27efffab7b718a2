package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/ecoscan/internal/coach"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/testutil"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

func TestScanPrinter(t *testing.T) {
	var out bytes.Buffer
	p := NewScanPrinter(&out, 80, false)

	p.ShowPreview(viewmodel.PreviewView{Name: "can.jpg", MediaType: "image/jpeg", Size: 2048, Width: 640, Height: 480})
	p.SetLoading(true)
	p.RenderResult(viewmodel.BuildResultView(testutil.NewResult("metal", 88).Recyclable(true).Build(), func(int) int { return 0 }))
	p.ShowAchievementNotice(viewmodel.AchievementNotice{Achievements: []model.Achievement{{Name: "First Scan"}}})

	text := stripANSI(out.String())
	assert.Contains(t, text, "Selected can.jpg (image/jpeg")
	assert.Contains(t, text, "640×480 px")
	assert.Contains(t, text, "Analyzing your waste...")
	assert.Contains(t, text, "METAL")
	assert.Contains(t, text, "Achievement Unlocked! First Scan")
}

func TestScanPrinterQuiet(t *testing.T) {
	var out bytes.Buffer
	p := NewScanPrinter(&out, 80, true)

	p.SetLoading(true)
	p.UpdateStatsBar(viewmodel.StatsBarView{Total: 3})
	assert.Empty(t, out.String())

	p.ShowError("Classification failed")
	assert.Contains(t, stripANSI(out.String()), "Classification failed")
}

func TestCoachPrinter(t *testing.T) {
	var out bytes.Buffer
	p := NewCoachPrinter(&out, false)

	p.SetOpen(true)
	p.AppendMessage(model.RoleUser, "Where does foil go?")
	p.ShowTypingIndicator()
	p.RemoveTypingIndicator()
	p.AppendMessage(model.RoleBot, "Clean foil goes with metals.\x1b[31m")
	p.ShowQuickActions(coach.QuickActionsPrompt, coach.QuickActions())

	text := stripANSI(out.String())
	assert.Contains(t, text, "Recycling Coach")
	assert.Contains(t, text, "You: Where does foil go?")
	assert.Contains(t, text, "Coach is typing...")
	assert.Contains(t, text, "Coach: Clean foil goes with metals.")
	assert.Contains(t, text, "/1 "+coach.ActionDisposal.Label())
	assert.NotContains(t, out.String(), "\x1b[2K", "no line erasing off a terminal")
}

func TestCoachPrinterErasesTypingOnTerminal(t *testing.T) {
	var out bytes.Buffer
	p := NewCoachPrinter(&out, true)

	p.ShowTypingIndicator()
	p.AppendMessage(model.RoleBot, "Done")

	assert.Contains(t, out.String(), "\r\x1b[2K")
}
