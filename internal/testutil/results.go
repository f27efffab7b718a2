package testutil

import (
	"strconv"

	"github.com/Veraticus/ecoscan/internal/model"
)

// ResultBuilder builds classification results for tests.
//
// Example:
//
//	result := testutil.NewResult("plastic", 92).
//		Recyclable(true).
//		WithPrediction("metal", 5).
//		Build()
type ResultBuilder struct {
	result model.ClassificationResult
}

// NewResult starts a result with its top label and confidence. The label
// is also recorded as the first prediction.
func NewResult(label string, confidence float64) *ResultBuilder {
	return &ResultBuilder{result: model.ClassificationResult{
		Label:          label,
		Confidence:     confidence,
		AllPredictions: model.Predictions{{Category: model.Category(label), Confidence: confidence}},
		ImagePath:      "uploads/" + label + ".jpg",
	}}
}

// Recyclable sets an explicit recyclability verdict.
func (b *ResultBuilder) Recyclable(v bool) *ResultBuilder {
	b.result.Recyclable = &v
	return b
}

// WithReason sets the recyclability reason and its confidence.
func (b *ResultBuilder) WithReason(reason string, confidence float64) *ResultBuilder {
	b.result.RecyclabilityReason = reason
	b.result.RecyclableConfidence = &confidence
	return b
}

// WithEcoScore sets the eco score.
func (b *ResultBuilder) WithEcoScore(score float64) *ResultBuilder {
	b.result.EcoScore = &score
	return b
}

// WithQuality sets the quality check.
func (b *ResultBuilder) WithQuality(score float64, feedback ...string) *ResultBuilder {
	b.result.QualityCheck = &model.QualityCheck{Score: score, Feedback: feedback}
	return b
}

// WithPrediction appends a secondary prediction.
func (b *ResultBuilder) WithPrediction(label string, confidence float64) *ResultBuilder {
	b.result.AllPredictions = append(b.result.AllPredictions, model.Prediction{Category: model.Category(label), Confidence: confidence})
	return b
}

// WithAchievements sets newly unlocked achievements by name.
func (b *ResultBuilder) WithAchievements(names ...string) *ResultBuilder {
	for i, name := range names {
		b.result.NewAchievements = append(b.result.NewAchievements, model.Achievement{
			ID:          strconv.Itoa(i + 1),
			Name:        name,
			Description: name + " unlocked",
		})
	}
	return b
}

// WithStats sets the embedded stats snapshot.
func (b *ResultBuilder) WithStats(stats model.Stats) *ResultBuilder {
	b.result.Stats = stats
	return b
}

// Build returns the result.
func (b *ResultBuilder) Build() model.ClassificationResult {
	return b.result
}
