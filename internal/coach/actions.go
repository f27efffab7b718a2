package coach

import "fmt"

// QuickAction is a predefined coach shortcut.
type QuickAction string

// Quick actions offered after a scan.
const (
	ActionDisposal QuickAction = "disposal"
	ActionCO2      QuickAction = "co2"
	ActionTip      QuickAction = "tip"
	ActionImpact   QuickAction = "impact"
)

// QuickActions returns the actions offered after a scan, in display order.
func QuickActions() []QuickAction {
	return []QuickAction{ActionDisposal, ActionCO2, ActionTip, ActionImpact}
}

// Label returns the button text.
func (a QuickAction) Label() string {
	switch a {
	case ActionDisposal:
		return "🗑️ How to dispose?"
	case ActionCO2:
		return "🌍 CO₂ saved?"
	case ActionTip:
		return "💡 Recycling tip"
	case ActionImpact:
		return "📊 My impact"
	default:
		return string(a)
	}
}

// Prompt returns the user message echoed when the action is chosen.
func (a QuickAction) Prompt() string {
	switch a {
	case ActionDisposal:
		return "How do I dispose of this?"
	case ActionCO2:
		return "How much CO₂ did I save?"
	case ActionTip:
		return "Give me a recycling tip"
	case ActionImpact:
		return "Show me my environmental impact"
	default:
		return ""
	}
}

// ParseQuickAction validates a quick-action key.
func ParseQuickAction(s string) (QuickAction, error) {
	a := QuickAction(s)
	switch a {
	case ActionDisposal, ActionCO2, ActionTip, ActionImpact:
		return a, nil
	default:
		return "", fmt.Errorf("unknown quick action %q", s)
	}
}
