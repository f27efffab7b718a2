package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ecoscan/internal/model"
)

func TestBuildStatsDetail(t *testing.T) {
	s := model.Stats{
		Total:         3,
		AvgConfidence: floatPtr(88.4),
		ByCategory: model.CategoryCounts{
			{Category: model.CategoryPlastic, Count: 2},
			{Category: model.CategoryGlass, Count: 1},
		},
	}

	view := BuildStatsDetail(s)

	assert.True(t, view.Loaded)
	assert.True(t, view.HasCategories())
	assert.Empty(t, view.EmptyMessage)
	require.Len(t, view.CategoryStats, 2)
	assert.Equal(t, "PLASTIC", view.CategoryStats[0].Name)
	assert.InDelta(t, 66.7, view.CategoryStats[0].Percentage, 0.0001)
	assert.InDelta(t, 33.3, view.CategoryStats[1].Percentage, 0.0001)
	assert.Equal(t, model.ImpactFor(3), view.Impact)
	assert.Equal(t, s.AvgConfidence, view.AvgConfidence)
}

func TestBuildStatsDetail_ZeroTotal(t *testing.T) {
	view := BuildStatsDetail(model.Stats{
		ByCategory: model.CategoryCounts{{Category: model.CategoryMetal, Count: 2}},
	})

	require.Len(t, view.CategoryStats, 1)
	assert.InDelta(t, 200, view.CategoryStats[0].Percentage, 0.0001)
}

func TestBuildStatsDetail_Empty(t *testing.T) {
	view := BuildStatsDetail(model.Stats{})

	assert.False(t, view.HasCategories())
	assert.Equal(t, "No data yet", view.EmptyMessage)
	assert.Equal(t, model.Impact{}, view.Impact)
}

func TestNewStatsBar(t *testing.T) {
	bar := NewStatsBar(model.Stats{Total: 12, ThisWeek: 4, AchievementsCount: 2})
	assert.Equal(t, StatsBarView{Total: 12, ThisWeek: 4, Achievements: 2}, bar)
}

func TestBuildHistory(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	items := []model.HistoryItem{
		{
			PredictedClass: "Food_Waste",
			ImagePath:      "uploads/apple.jpg",
			Confidence:     77.5,
			Timestamp:      model.Timestamp{Time: now.Add(-2 * time.Hour)},
		},
		{
			PredictedClass: "glass",
			ImagePath:      "uploads/jar.jpg",
			Confidence:     93,
			Timestamp:      model.Timestamp{Time: now.Add(-20 * time.Second)},
		},
	}

	t.Run("with resolver", func(t *testing.T) {
		view := BuildHistory(items, now, func(p string) string { return "http://localhost:5000/" + p })

		assert.False(t, view.IsEmpty())
		require.Len(t, view.Cards, 2)
		assert.Equal(t, HistoryCard{
			ImageURL:   "http://localhost:5000/uploads/apple.jpg",
			Label:      "FOOD WASTE",
			When:       "2h ago",
			Category:   model.CategoryFoodWaste,
			Confidence: 77.5,
		}, view.Cards[0])
		assert.Equal(t, "Just now", view.Cards[1].When)
	})

	t.Run("without resolver", func(t *testing.T) {
		view := BuildHistory(items, now, nil)
		assert.Equal(t, "uploads/jar.jpg", view.Cards[1].ImageURL)
	})

	t.Run("empty", func(t *testing.T) {
		view := BuildHistory(nil, now, nil)
		assert.True(t, view.Loaded)
		assert.True(t, view.IsEmpty())
		assert.Equal(t, "No classifications yet. Start by uploading an image!", view.EmptyMessage)
	})
}

func TestBuildAchievementBoard(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	cards := model.AchievementCards()
	unlocked := []model.Achievement{
		{Name: "First Scan", UnlockedAt: &model.Timestamp{Time: now.Add(-3 * 24 * time.Hour)}},
		{Name: "Eco Newbie"},
		{Name: "Not A Card"},
	}

	board := BuildAchievementBoard(cards, unlocked, now)

	require.Len(t, board.Cards, len(cards))
	assert.True(t, board.Loaded)
	assert.Equal(t, 2, board.UnlockedCount())
	assert.Equal(t, "Unlocked 3d ago", board.Cards[0].Status)
	assert.Equal(t, "Unlocked", board.Cards[1].Status)
	for _, c := range board.Cards[2:] {
		assert.False(t, c.Unlocked, c.Title)
		assert.Equal(t, "Locked", c.Status)
	}
}

func TestBuildAchievementBoard_RecomputesFromScratch(t *testing.T) {
	now := time.Now()
	cards := model.AchievementCards()

	first := BuildAchievementBoard(cards, []model.Achievement{{Name: "Recycling Hero"}}, now)
	again := BuildAchievementBoard(cards, []model.Achievement{{Name: "Recycling Hero"}}, now)
	assert.Equal(t, first, again)

	relocked := BuildAchievementBoard(cards, nil, now)
	assert.Equal(t, 0, relocked.UnlockedCount())
}

func TestNewChatBubble(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "plain", text: "Rinse it first.", want: []string{"Rinse it first."}},
		{name: "multi line", text: "Step 1\r\nStep 2\nStep 3", want: []string{"Step 1", "Step 2", "Step 3"}},
		{name: "escape sequences", text: "\x1b[31mred\x1b[0m alert\x07", want: []string{"red alert"}},
		{name: "keeps tabs", text: "a\tb", want: []string{"a\tb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewChatBubble(model.RoleBot, tt.text)
			assert.Equal(t, model.RoleBot, b.Role)
			assert.Equal(t, tt.want, b.Lines)
		})
	}
}

func TestChatBubble_Text(t *testing.T) {
	b := NewChatBubble(model.RoleUser, "one\ntwo")
	assert.Equal(t, "one\ntwo", b.Text())

	var cv CoachView
	assert.False(t, cv.HasQuickActions())
	cv.QuickActions = []QuickActionView{{Key: "1", Label: "Recycling tips"}}
	assert.True(t, cv.HasQuickActions())
}
