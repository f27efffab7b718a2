package viewmodel

import (
	"time"

	"github.com/Veraticus/ecoscan/internal/common"
	"github.com/Veraticus/ecoscan/internal/model"
)

// HistoryView represents the history tab.
type HistoryView struct {
	EmptyMessage string
	Cards        []HistoryCard
	Loaded       bool
}

// HistoryCard is one past scan.
type HistoryCard struct {
	ImageURL   string
	Label      string
	When       string
	Category   model.Category
	Confidence float64
}

// IsEmpty returns true if there is nothing to show.
func (hv HistoryView) IsEmpty() bool {
	return len(hv.Cards) == 0
}

// BuildHistory builds the history tab. resolve maps a backend image path to
// a displayable locator; nil keeps the path as given.
func BuildHistory(items []model.HistoryItem, now time.Time, resolve func(string) string) HistoryView {
	view := HistoryView{Loaded: true}
	if len(items) == 0 {
		view.EmptyMessage = common.MsgHistoryEmpty
		return view
	}

	for _, item := range items {
		url := item.ImagePath
		if resolve != nil {
			url = resolve(item.ImagePath)
		}
		view.Cards = append(view.Cards, HistoryCard{
			ImageURL:   url,
			Label:      item.Category().DisplayName(),
			Category:   item.Category(),
			Confidence: item.Confidence,
			When:       FormatRelativeTime(item.Timestamp.Time, now),
		})
	}
	return view
}
