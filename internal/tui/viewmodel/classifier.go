// Package viewmodel defines the data structures for TUI rendering.
package viewmodel

import (
	"github.com/Veraticus/ecoscan/internal/model"
)

// ScanView is the upload/preview/results area.
type ScanView struct {
	Preview         *PreviewView
	Result          *ResultView
	Notice          *AchievementNotice
	Warning         string
	Error           string
	UploadVisible   bool
	Loading         bool
	ClassifyEnabled bool
	ScrollTop       bool
}

// PreviewView describes the held image.
type PreviewView struct {
	Name      string
	Path      string
	MediaType string
	Size      int64
	Width     int
	Height    int
}

// ResultView is every rendered facet of a classification.
type ResultView struct {
	Recyclability   *RecyclabilityView
	EcoScore        *EcoScoreView
	Category        model.Category
	CategoryBadge   string
	DisposalGuide   string
	FunFact         string
	QualityFeedback []string
	Predictions     []PredictionBar
	Confidence      ConfidenceView
	ShowQuality     bool
}

// RecyclabilityView is the recyclability badge. It is nil when the
// backend gave no verdict; Confidence is nil when the verdict came
// without one.
type RecyclabilityView struct {
	Confidence *float64
	Status     string
	Icon       string
	Reason     string
	Recyclable bool
}

// EcoScoreView is the eco-score bar.
type EcoScoreView struct {
	Band  Band
	Score float64
}

// ConfidenceView is the confidence meter.
type ConfidenceView struct {
	Level string
	Band  Band
	Value float64
}

// PredictionBar is one row of the top-predictions list.
type PredictionBar struct {
	Label      string
	Category   model.Category
	Confidence float64
}

// AchievementNotice is the transient unlock banner.
type AchievementNotice struct {
	Achievements []model.Achievement
}

// HasResult returns true if a classification is on screen.
func (sv ScanView) HasResult() bool {
	return sv.Result != nil
}

// HasPreview returns true if a file is being previewed.
func (sv ScanView) HasPreview() bool {
	return sv.Preview != nil
}

// BuildResultView interprets a classification payload. pick chooses the
// fun fact index; nil uses math/rand.
func BuildResultView(r model.ClassificationResult, pick func(n int) int) ResultView {
	category := r.Category()

	view := ResultView{
		Category:      category,
		CategoryBadge: category.DisplayName(),
		DisposalGuide: category.DisposalGuide(),
		FunFact:       category.RandomFunFact(pick),
		Confidence: ConfidenceView{
			Value: r.Confidence,
			Band:  BandFor(r.Confidence),
			Level: ConfidenceLevel(r.Confidence),
		},
	}

	if r.Recyclable != nil {
		rv := &RecyclabilityView{
			Recyclable: *r.Recyclable,
			Reason:     r.RecyclabilityReason,
		}
		if r.RecyclableConfidence != nil {
			c := *r.RecyclableConfidence
			rv.Confidence = &c
		}
		if rv.Recyclable {
			rv.Status = "RECYCLABLE"
			rv.Icon = "♻️"
		} else {
			rv.Status = "NON-RECYCLABLE"
			rv.Icon = "🚫"
		}
		view.Recyclability = rv
	}

	if r.EcoScore != nil {
		view.EcoScore = &EcoScoreView{
			Score: *r.EcoScore,
			Band:  BandFor(*r.EcoScore),
		}
	}

	if r.QualityCheck.NeedsFeedback() {
		view.ShowQuality = true
		view.QualityFeedback = append([]string(nil), r.QualityCheck.Feedback...)
	}

	for _, p := range r.AllPredictions.Top(3) {
		view.Predictions = append(view.Predictions, PredictionBar{
			Label:      p.Category.DisplayName(),
			Category:   p.Category,
			Confidence: p.Confidence,
		})
	}

	return view
}
