package coach

import (
	"fmt"
	"html"
	"math/rand/v2"
	"strings"

	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// Scripted coach messages.
const (
	WelcomeMessage      = "Hi! I'm your Recycling Coach! 🌍 I'm here to help you make eco-friendly choices. How can I assist you today?"
	QuickActionsPrompt  = "What would you like to know?"
	ScanFirstMessage    = "Please scan an item first so I can help you! 📸"
	ConnectionErrorText = "Oops! I'm having trouble connecting. Please try again! 😅"
	StatsErrorText      = "I couldn't fetch your stats right now. Try again later! 📊"
	CO2ImpactMessage    = "By properly sorting this waste, you've saved:\n\n⚡ 0.3 kWh of energy\n💧 2.5 liters of water\n🌫️ 0.5 kg of CO₂\n\nThat's like charging your phone 30 times! 📱\n\nKeep up the great work! 💪"
)

var recyclingTips = []string{
	"💡 Always rinse containers before recycling - contaminated items can ruin entire batches!",
	"💡 Flatten cardboard boxes to save space in recycling bins and trucks!",
	"💡 Remove caps from plastic bottles - they're often made of different plastic types!",
	"💡 Pizza boxes with grease can't be recycled, but clean parts can be composted!",
	"💡 Aluminum foil can be recycled if you ball it up to at least golf ball size!",
	"💡 Glass can be recycled endlessly without losing quality - it's infinitely recyclable!",
	"💡 Shredded paper is harder to recycle - try to keep paper whole when possible!",
	"💡 Check the recycling number on plastics - 1, 2, and 5 are most commonly accepted!",
}

// Tips returns the fixed recycling tips.
func Tips() []string {
	return append([]string(nil), recyclingTips...)
}

// RandomTip picks a tip uniformly. A nil pick uses math/rand.
func RandomTip(pick func(n int) int) string {
	if pick == nil {
		pick = rand.IntN
	}
	return recyclingTips[pick(len(recyclingTips))]
}

// Greeting builds the post-scan greeting. An explicit false verdict gets
// its own line; an absent verdict adds nothing.
func Greeting(r model.ClassificationResult) string {
	msg := fmt.Sprintf("Great job scanning! 🎉 That's %s with %s confidence.",
		model.Category(r.Label).DisplayName(), viewmodel.FormatPercent(r.Confidence))
	switch {
	case r.IsRecyclable():
		msg += " It's recyclable! ♻️"
	case r.IsNonRecyclable():
		msg += " Heads up: it isn't recyclable. 🚫"
	}
	return msg
}

// DisposalMessage wraps the disposal guide for the scanned category.
func DisposalMessage(r model.ClassificationResult) string {
	category := r.Category()
	return fmt.Sprintf("Here's how to dispose of your %s:\n\n%s\n\nYou're making a difference! 🌱",
		model.Category(r.Label).Spaced(), category.DisposalGuide())
}

// ImpactMessage summarises the environmental impact of total scans.
func ImpactMessage(stats model.Stats) string {
	impact := model.ImpactFor(stats.Total)
	return fmt.Sprintf("🌟 Your Environmental Impact:\n\n📊 Total scans: %d\n🌳 Trees saved: %d\n💧 Water saved: %dL\n⚡ Energy saved: %d kWh\n🌫️ CO₂ reduced: %d kg\n\nYou're a recycling hero! 🦸",
		stats.Total, impact.Trees, impact.WaterL, impact.EnergyKWh, impact.CO2Kg)
}

// FormatHTML escapes text for markup hosts and turns newlines into <br>.
func FormatHTML(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}
