package viewmodel

import (
	"time"

	"github.com/Veraticus/ecoscan/internal/model"
)

// AchievementBoard represents the achievements tab.
type AchievementBoard struct {
	Cards  []AchievementCardView
	Loaded bool
}

// AchievementCardView is one card and its lock state.
type AchievementCardView struct {
	Title       string
	Description string
	Icon        string
	Status      string
	Unlocked    bool
}

// UnlockedCount returns how many cards are unlocked.
func (b AchievementBoard) UnlockedCount() int {
	n := 0
	for _, c := range b.Cards {
		if c.Unlocked {
			n++
		}
	}
	return n
}

// BuildAchievementBoard recomputes every card from scratch: all cards start
// locked and a card unlocks only when an achievement's name equals its title.
func BuildAchievementBoard(cards []model.AchievementCard, unlocked []model.Achievement, now time.Time) AchievementBoard {
	board := AchievementBoard{Loaded: true}
	for _, card := range cards {
		view := AchievementCardView{
			Title:       card.Title,
			Description: card.Description,
			Icon:        card.Icon,
			Status:      "Locked",
		}
		for _, ach := range unlocked {
			if ach.Name != card.Title {
				continue
			}
			view.Unlocked = true
			view.Status = "Unlocked"
			if ach.UnlockedAt != nil && !ach.UnlockedAt.IsZero() {
				view.Status = "Unlocked " + FormatRelativeTime(ach.UnlockedAt.Time, now)
			}
			break
		}
		board.Cards = append(board.Cards, view)
	}
	return board
}
