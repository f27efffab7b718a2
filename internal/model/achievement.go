package model

// Achievement is an unlocked milestone.
type Achievement struct {
	UnlockedAt  *Timestamp `json:"unlocked_at,omitempty"`
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// AchievementCard is a statically declared achievement tile. Cards are
// matched against unlocked achievements by Title.
type AchievementCard struct {
	Title       string
	Description string
	Icon        string
	Required    int
}

// AchievementCards returns the card catalogue in display order.
func AchievementCards() []AchievementCard {
	return []AchievementCard{
		{Title: "First Scan", Description: "Classified your first item!", Icon: "🌱", Required: 1},
		{Title: "Eco Newbie", Description: "Classified 10 items", Icon: "🌿", Required: 10},
		{Title: "Recycling Hero", Description: "Classified 50 items", Icon: "🦸", Required: 50},
		{Title: "Planet Protector", Description: "Classified 100 items", Icon: "🌍", Required: 100},
		{Title: "Waste Wizard", Description: "Classified 500 items", Icon: "🧙", Required: 500},
	}
}
