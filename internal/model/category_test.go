package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "FOOD WASTE", CategoryFoodWaste.DisplayName())
	assert.Equal(t, "e waste", CategoryEWaste.Spaced())
	assert.Equal(t, Category("metal"), ParseCategory("METAL"))
	assert.False(t, Category("banana").IsKnown())
}

func TestEveryCategoryHasGuideAndFacts(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsKnown(), c)
		assert.NotEqual(t, NoDisposalGuide, c.DisposalGuide(), c)
		assert.NotEmpty(t, c.FunFacts(), c)
	}
}

func TestUnknownCategoryFallbacks(t *testing.T) {
	unknown := Category("banana")

	assert.Equal(t, NoDisposalGuide, unknown.DisposalGuide())
	assert.Equal(t, CategoryTrash.FunFacts(), unknown.FunFacts())
}

func TestRandomFunFactUsesPick(t *testing.T) {
	facts := CategoryGlass.FunFacts()

	var asked int
	fact := CategoryGlass.RandomFunFact(func(n int) int {
		asked = n
		return n - 1
	})

	assert.Equal(t, len(facts), asked)
	assert.Equal(t, facts[len(facts)-1], fact)
	assert.Contains(t, facts, CategoryGlass.RandomFunFact(nil))
}

func TestAchievementCards(t *testing.T) {
	cards := AchievementCards()

	thresholds := make([]int, 0, len(cards))
	for _, c := range cards {
		thresholds = append(thresholds, c.Required)
	}
	assert.Equal(t, []int{1, 10, 50, 100, 500}, thresholds)
	assert.Equal(t, "First Scan", cards[0].Title)
}
